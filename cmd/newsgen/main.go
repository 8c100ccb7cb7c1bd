package main

import (
	"newsgen/cmd/cmd"
	"newsgen/internal/logger"
)

func main() {
	logger.Init()
	cmd.Execute()
}
