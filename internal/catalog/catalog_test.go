package catalog

import "testing"

func TestCategoryByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantOK   bool
		wantName string
	}{
		{name: "known id", id: "technology", wantOK: true, wantName: "Teknologi"},
		{name: "unknown id", id: "astrology", wantOK: false},
		{name: "empty id", id: "", wantOK: false},
		{name: "lookup is case-sensitive", id: "Technology", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := CategoryByID(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("CategoryByID(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if !ok {
				if cat.Prompt != "" || cat.Name != "" {
					t.Errorf("unknown category carries data: %+v", cat)
				}
				return
			}
			if cat.Name != tt.wantName {
				t.Errorf("CategoryByID(%q).Name = %q, want %q", tt.id, cat.Name, tt.wantName)
			}
			if cat.Prompt == "" {
				t.Errorf("category %q has no prompt fragment", tt.id)
			}
		})
	}
}

func TestCategoriesCatalogIsComplete(t *testing.T) {
	cats := Categories()
	if len(cats) != 13 {
		t.Fatalf("Categories() = %d entries, want 13", len(cats))
	}

	seen := make(map[string]bool)
	for _, cat := range cats {
		if cat.ID == "" || cat.Name == "" || cat.Prompt == "" {
			t.Errorf("incomplete category: %+v", cat)
		}
		if seen[cat.ID] {
			t.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true
	}
}

func TestResolveModelID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "known model kept", id: "gemini-2.5-flash-preview-04-17", want: "gemini-2.5-flash-preview-04-17"},
		{name: "default model kept", id: DefaultModelID, want: DefaultModelID},
		{name: "empty falls back", id: "", want: DefaultModelID},
		{name: "too short falls back", id: "ab", want: DefaultModelID},
		{name: "unknown falls back", id: "gpt-4o", want: DefaultModelID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveModelID(tt.id); got != tt.want {
				t.Errorf("ResolveModelID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestModelsCatalog(t *testing.T) {
	models := Models()
	if len(models) == 0 {
		t.Fatal("Models() is empty")
	}

	foundDefault := false
	for _, m := range models {
		if m.ID == DefaultModelID {
			foundDefault = true
		}
		if m.ID == "" || m.Name == "" {
			t.Errorf("incomplete model: %+v", m)
		}
	}
	if !foundDefault {
		t.Errorf("default model %q is missing from the catalog", DefaultModelID)
	}
}
