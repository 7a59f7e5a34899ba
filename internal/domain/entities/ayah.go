// Package entities contains domain entities used across the application.
package entities

import "strconv"

// Ayah represents a single verse of the Quran in one edition.
// Translation is nil until the ayah has been paired with a translation edition.
type Ayah struct {
	Number         int        `json:"number"`                   // global number of the ayah (from 1 to 6236)
	NumberInSurah  int        `json:"numberInSurah"`            // number of the ayah within its surah
	Text           string     `json:"text"`                     // text in the requested edition
	Surah          *SurahMeta `json:"surah,omitempty"`          // containing surah
	Edition        *Edition   `json:"edition,omitempty"`        // edition the text belongs to, when returned on its own
	Juz            int        `json:"juz"`                      // juz number (from 1 to 30)
	Manzil         int        `json:"manzil"`                   // manzil number (from 1 to 7)
	Page           int        `json:"page"`                     // mushaf page number (from 1 to 604)
	Ruku           int        `json:"ruku"`                     // ruku number
	HizbQuarter    int        `json:"hizbQuarter"`              // hizb quarter number
	Sajda          Sajda      `json:"sajda"`                    // prostration marker
	Audio          string     `json:"audio,omitempty"`          // recitation URL, audio editions only
	AudioSecondary []string   `json:"audioSecondary,omitempty"` // alternative recitation URLs
	Translation    *string    `json:"translation,omitempty"`    // paired translation text
}

// SurahNumber returns the number of the containing surah, or 0 when the
// payload did not say.
func (a Ayah) SurahNumber() int {
	if a.Surah == nil {
		return 0
	}
	return a.Surah.Number
}

// Ref returns the "surah:ayah" form of the reference, falling back to the
// global number when the containing surah is unknown.
func (a Ayah) Ref() string {
	if a.Surah == nil {
		return strconv.Itoa(a.Number)
	}
	return strconv.Itoa(a.Surah.Number) + ":" + strconv.Itoa(a.NumberInSurah)
}

// TranslationText returns the paired translation or an empty string.
func (a Ayah) TranslationText() string {
	if a.Translation == nil {
		return ""
	}
	return *a.Translation
}
