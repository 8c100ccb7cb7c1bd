// Package prompt builds the prompt and system-instruction pair sent to the
// generation backend. Builders are pure: deterministic for a given input and
// free of side effects.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"newsgen/internal/core"
)

// DefaultTitleCount is used when the request does not carry a positive count.
const DefaultTitleCount = 5

const titleSystemInstructionTemplate = `Anda adalah seorang Content Strategist dan SEO Specialist tingkat ahli di industri media digital.
Tugas Anda adalah merancang dan menyusun judul artikel yang:

- Sangat menarik,
- Relevan dengan tren pencarian,
- Dioptimalkan untuk SEO dengan keyword utama dan long-tail keyword,
- Memastikan kalimat utuh dan tidak terpotong ide,
- Bebas typo serta sesuai kaidah EYD (atau PUEBI) dan KBBI,
- Mematuhi etika jurnalistik, dan
- Meningkatkan CTR (Click-Through Rate) di mesin pencari maupun media sosial.

Sebagai seorang profesional:
Anda menghindari clickbait murahan namun tetap mampu memicu rasa ingin tahu pembaca.
Setiap judul harus berdiri sendiri dan mampu memikat hanya dengan sekali baca.
Pastikan setiap kata tersusun presisi, tanpa kesalahan spasi atau penggabungan kata.

Hasilkan tepat %d judul artikel yang unik dan berbeda satu sama lain.`

const titlePromptTemplate = `Hasilkan tepat %d judul artikel yang unik dan berbeda satu sama lain tentang "%s" dalam kategori "%s".

Petunjuk format output:
- Tulis hanya daftar judul, satu judul per baris.
- Jangan sertakan nomor, deskripsi, atau kalimat tambahan apa pun.
- Judul harus dalam Bahasa Indonesia yang baik, menarik, dan mudah dipahami.
- Setiap judul harus unik dan tidak boleh ada duplikat.

Contoh format output:
Judul artikel pertama
Judul artikel kedua
Judul artikel ketiga
... hingga %d`

// BuildTitlePrompt builds the prompt pair for title generation. An empty
// category is substituted with the "-" placeholder; a non-positive count
// falls back to DefaultTitleCount. An empty or whitespace-only topic is a
// ValidationError.
func BuildTitlePrompt(topic, category string, count int) (core.PromptBuild, error) {
	if strings.TrimSpace(topic) == "" {
		return core.PromptBuild{}, core.NewValidationError("topic", "is required")
	}
	if category == "" {
		category = "-"
	}
	if count <= 0 {
		count = DefaultTitleCount
	}

	return core.PromptBuild{
		Prompt:            fmt.Sprintf(titlePromptTemplate, count, topic, category, count),
		SystemInstruction: fmt.Sprintf(titleSystemInstructionTemplate, count),
		Meta: map[string]string{
			"topic":    topic,
			"category": category,
			"count":    strconv.Itoa(count),
		},
	}, nil
}

// BuildTitleFallbackPrompt builds the deliberately simplified prompt used for
// the one-shot retry after title parsing yields nothing: a plain instruction
// with no structural constraints.
func BuildTitleFallbackPrompt(topic string, count int) core.PromptBuild {
	if count <= 0 {
		count = DefaultTitleCount
	}
	return core.PromptBuild{
		Prompt: fmt.Sprintf(
			`Buatkan %d judul artikel dalam Bahasa Indonesia untuk topik: "%s". Daftar judul saja, satu per baris, tanpa penjelasan.`,
			count, topic),
		SystemInstruction: "Buat daftar judul saja.",
		Meta: map[string]string{
			"topic": topic,
			"count": strconv.Itoa(count),
		},
	}
}
