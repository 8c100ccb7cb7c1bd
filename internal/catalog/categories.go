// Package catalog holds the static category and model catalogs. Both are
// read-only lookup tables, immutable after load, shared safely across
// requests.
package catalog

// Category represents a news category with its prompt fragment and display
// metadata.
type Category struct {
	ID          string `json:"id"`          // Stable identifier used in requests
	Name        string `json:"name"`        // Human-readable name (Indonesian)
	Description string `json:"description"` // Short description for the UI
	Icon        string `json:"icon"`        // Icon reference for the UI
	Prompt      string `json:"prompt"`      // Prompt fragment prepended to topic instructions
}

// Categories returns the standard news category set.
func Categories() []Category {
	return newsCategories
}

var newsCategories = []Category{
	{
		ID:          "general",
		Name:        "Berita Umum",
		Description: "Berita terkini dan peristiwa utama",
		Icon:        "globe",
		Prompt:      "Tulis artikel berita umum tentang",
	},
	{
		ID:          "business",
		Name:        "Bisnis",
		Description: "Update pasar dan ekonomi",
		Icon:        "briefcase",
		Prompt:      "Tulis artikel berita bisnis tentang",
	},
	{
		ID:          "technology",
		Name:        "Teknologi",
		Description: "Inovasi dan perkembangan teknologi",
		Icon:        "cpu",
		Prompt:      "Tulis artikel berita teknologi tentang",
	},
	{
		ID:          "science",
		Name:        "Sains",
		Description: "Penemuan ilmiah dan riset",
		Icon:        "activity",
		Prompt:      "Tulis artikel berita sains tentang",
	},
	{
		ID:          "health",
		Name:        "Kesehatan",
		Description: "Berita kesehatan dan medis",
		Icon:        "heart",
		Prompt:      "Tulis artikel berita kesehatan tentang",
	},
	{
		ID:          "government",
		Name:        "Pemerintahan",
		Description: "Berita politik, kebijakan, dan pemerintahan",
		Icon:        "flag",
		Prompt:      "Tulis artikel berita pemerintahan tentang",
	},
	{
		ID:          "sports",
		Name:        "Olahraga",
		Description: "Berita dan hasil olahraga",
		Icon:        "award",
		Prompt:      "Tulis artikel berita olahraga tentang",
	},
	{
		ID:          "entertainment",
		Name:        "Hiburan",
		Description: "Film, musik, dan selebriti",
		Icon:        "film",
		Prompt:      "Tulis artikel berita hiburan tentang",
	},
	{
		ID:          "education",
		Name:        "Pendidikan",
		Description: "Info dan perkembangan pendidikan",
		Icon:        "book-open",
		Prompt:      "Tulis artikel berita pendidikan tentang",
	},
	{
		ID:          "lifestyle",
		Name:        "Gaya Hidup",
		Description: "Tren, tips, dan inspirasi hidup",
		Icon:        "smile",
		Prompt:      "Tulis artikel gaya hidup tentang",
	},
	{
		ID:          "international",
		Name:        "Internasional",
		Description: "Berita dunia dan mancanegara",
		Icon:        "flag",
		Prompt:      "Tulis artikel berita internasional tentang",
	},
	{
		ID:          "travel",
		Name:        "Travel & Pariwisata",
		Description: "Destinasi wisata dan berita pariwisata",
		Icon:        "globe",
		Prompt:      "Tulis artikel berita travel atau pariwisata tentang",
	},
	{
		ID:          "environment",
		Name:        "Lingkungan",
		Description: "Perubahan iklim dan berita lingkungan",
		Icon:        "globe",
		Prompt:      "Tulis artikel berita lingkungan tentang",
	},
}

// CategoryByID returns the category with the given id. An unknown or empty id
// yields a zero-value Category and ok=false; callers proceed with an empty
// category context rather than failing.
func CategoryByID(id string) (Category, bool) {
	for _, cat := range newsCategories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}
