package catalog

// DefaultModelID is substituted when a request carries no usable model id.
const DefaultModelID = "gemini-2.5-pro-exp-03-25"

// Model describes a selectable Gemini model.
type Model struct {
	ID            string `json:"id"`                      // Gemini model identifier
	Name          string `json:"name"`                    // Display name
	Description   string `json:"description"`             // Short description for the UI
	MaxTokens     int32  `json:"maxTokens"`               // Maximum output tokens the model supports
	IsRecommended bool   `json:"isRecommended,omitempty"` // Whether the UI should mark it as recommended
}

// Models returns the selectable model set.
func Models() []Model {
	return geminiModels
}

var geminiModels = []Model{
	{
		ID:            "gemini-2.5-pro-exp-03-25",
		Name:          "Gemini 2.5 Pro (Eksperimental)",
		Description:   "Model terbaik untuk tugas kompleks dan analisis konteks panjang.",
		MaxTokens:     65536,
		IsRecommended: true,
	},
	{
		ID:          "gemini-2.5-flash-preview-04-17",
		Name:        "Gemini 2.5 Flash (Preview)",
		Description: "Model terbaik kami dalam hal performa harga, yang menawarkan kemampuan yang lengkap.",
		MaxTokens:   65536,
	},
}

// ResolveModelID returns the given id when it names a known model, and
// DefaultModelID otherwise. Ids shorter than three characters are treated as
// missing.
func ResolveModelID(id string) string {
	if len(id) < 3 {
		return DefaultModelID
	}
	for _, m := range geminiModels {
		if m.ID == id {
			return id
		}
	}
	return DefaultModelID
}
