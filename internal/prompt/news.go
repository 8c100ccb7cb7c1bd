package prompt

import (
	"fmt"
	"strings"
	"unicode"

	"newsgen/internal/core"
)

const newsSystemInstruction = `Anda adalah seorang Jurnalis Profesional dengan keahlian dalam menulis berita akurat, menarik, dan sesuai kaidah jurnalistik.
Tugas Anda adalah menyusun berita berdasarkan topik, kategori, dan gaya penulisan yang diberikan.

Pastikan berita memenuhi kriteria berikut:
- Menggunakan bahasa Indonesia yang baik, benar, dan sesuai PUEBI.
- Menyertakan fakta, data, atau kutipan jika relevan.
- Struktur artikel: Pembuka (2 paragraf), 6-10 subjudul berurutan logis (umum ke spesifik), kesimpulan, dan FAQ relevan.
- Setiap subjudul fokus pada satu ide dan mengandung kata kunci/topik utama atau variasi long-tail keyword.
- Menyesuaikan gaya penulisan, audiens, dan tone sesuai instruksi.
- Hindari clickbait, hoaks, dan bahasa provokatif.
- Ikuti instruksi jumlah kata dan struktur dari prompt utama.
- Tulisan harus benar-benar orisinal, bukan hasil parafrase atau penyalinan dari sumber manapun di internet.
- Gunakan gaya penulisan manusia yang natural, bervariasi, dan tidak kaku seperti AI. Sertakan opini, sudut pandang, atau analisis ringan jika relevan.
- Hindari pola kalimat yang generik, repetitif, atau terlalu sempurna seperti hasil AI.
- Pastikan seluruh isi adalah karya asli, tidak menjiplak atau mengambil kalimat langsung dari sumber lain.
- Jika memungkinkan, tambahkan insight atau sudut pandang unik yang belum banyak ditemukan di internet.`

// BuildNewsPrompt builds the prompt pair for news article generation. Style,
// audience, and tone appear as labeled trailing lines only when supplied; an
// absent parameter leaves no trace in the prompt. An empty or whitespace-only
// title is a ValidationError.
func BuildNewsPrompt(title, category, style, audience, tone string) (core.PromptBuild, error) {
	if strings.TrimSpace(title) == "" {
		return core.PromptBuild{}, core.NewValidationError("title", "is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Buatlah artikel berita dengan judul %q dalam kategori %q secara terstruktur dan mendalam, dengan panjang 2.000-2.500 kata, serta memenuhi ketentuan berikut:\n\n", title, category)
	b.WriteString("1. Pembuka: 2 paragraf (180-250 kata) yang memperkenalkan topik secara menarik dan informatif. Pastikan kedua paragraf ini mengandung kata kunci utama/judul.\n")
	b.WriteString("2. Subjudul: 6-10 subjudul, masing-masing 200-250 kata, disusun secara logis dari pembahasan umum ke spesifik. Setiap subjudul fokus pada satu ide dan mengandung kata kunci atau variasi long-tail keyword yang relevan.\n")
	b.WriteString("3. Kesimpulan: Paragraf penutup (100-150 kata) yang merangkum inti artikel dan memberikan insight atau ajakan kepada pembaca.\n")
	b.WriteString("4. FAQ: Sertakan 5 pertanyaan dan jawaban singkat (total 250-400 kata), relevan dengan judul dan isi artikel.\n\n")
	b.WriteString("Gunakan bahasa Indonesia yang baik, benar, dan sesuai PUEBI. Hindari clickbait, hoaks, dan gaya penulisan yang terkesan dibuat oleh AI.")

	if style != "" {
		fmt.Fprintf(&b, "\nGaya penulisan: %s.", lowerFirst(style))
	}
	if audience != "" {
		fmt.Fprintf(&b, "\nAudiens target: %s.", lowerFirst(audience))
	}
	if tone != "" {
		fmt.Fprintf(&b, "\nTone penulisan: %s.", lowerFirst(tone))
	}

	meta := map[string]string{
		"title":    title,
		"category": category,
	}
	if style != "" {
		meta["style"] = style
	}
	if audience != "" {
		meta["audience"] = audience
	}
	if tone != "" {
		meta["tone"] = tone
	}

	return core.PromptBuild{
		Prompt:            b.String(),
		SystemInstruction: newsSystemInstruction,
		Meta:              meta,
	}, nil
}

// lowerFirst lowercases the first rune so labeled values read naturally
// mid-sentence ("Pelajar" -> "pelajar").
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
