package core

import (
	"time"

	"github.com/google/uuid"
)

// TitleRequest is the request body for title generation.
type TitleRequest struct {
	Topic    string `json:"topic"`    // Main topic of the article (required)
	Model    string `json:"model"`    // Gemini model id; invalid/missing falls back to the default
	Category string `json:"category"` // Optional category id from the catalog
	Count    int    `json:"count"`    // Number of titles to generate (default 5)
}

// NewsRequest is the request body for news article generation.
type NewsRequest struct {
	Title    string `json:"title"`    // Article title to write the news for (required)
	Model    string `json:"model"`    // Gemini model id; invalid/missing falls back to the default
	Category string `json:"category"` // Optional category id from the catalog
	Style    string `json:"style"`    // Optional writing style (e.g., "Lugas")
	Audience string `json:"audience"` // Optional target audience (e.g., "Umum")
	Tone     string `json:"tone"`     // Optional tone (e.g., "Netral")
}

// PromptBuild is the immutable result of prompt construction. It is produced
// once per request and never mutated afterwards.
type PromptBuild struct {
	Prompt            string            `json:"prompt"`             // User-facing prompt text
	SystemInstruction string            `json:"system_instruction"` // Persona/constraints preamble
	Meta              map[string]string `json:"meta,omitempty"`     // Inputs the build was derived from
}

// History record discriminants.
const (
	RecordTypeTitle = "title"
	RecordTypeNews  = "news"
)

// HistoryRecord is a persisted summary of one past generation.
type HistoryRecord struct {
	ID        string    `json:"id"`                 // Unique identifier (UUID)
	Type      string    `json:"type"`               // "title" or "news"
	Content   string    `json:"content"`            // Generated content (joined titles or article text)
	Topic     string    `json:"topic,omitempty"`    // Topic, for title records
	Title     string    `json:"title,omitempty"`    // Title, for news records
	Category  string    `json:"category,omitempty"` // Category id used for generation
	Model     string    `json:"model"`              // Model id used for generation
	CreatedAt time.Time `json:"createdAt"`          // Timestamp when the record was created
}

// NewHistoryRecord creates a history record with a fresh id and timestamp.
func NewHistoryRecord(recordType, content string) HistoryRecord {
	return HistoryRecord{
		ID:        uuid.NewString(),
		Type:      recordType,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
