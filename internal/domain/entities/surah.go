package entities

// RevelationType classifies a surah by the period it was revealed in.
type RevelationType string

const (
	RevelationMeccan  RevelationType = "Meccan"
	RevelationMedinan RevelationType = "Medinan"
)

// SurahMeta holds descriptive data about a surah without its ayahs.
type SurahMeta struct {
	Number                 int            `json:"number"`                 // number of the surah (from 1 to 114)
	Name                   string         `json:"name"`                   // Arabic name
	EnglishName            string         `json:"englishName"`            // transliterated name
	EnglishNameTranslation string         `json:"englishNameTranslation"` // meaning of the name in English
	NumberOfAyahs          int            `json:"numberOfAyahs"`          // ayah count
	RevelationType         RevelationType `json:"revelationType"`         // Meccan or Medinan
}

// Surah is a surah together with its ayahs in one edition.
type Surah struct {
	SurahMeta
	Ayahs   []Ayah   `json:"ayahs"`
	Edition *Edition `json:"edition,omitempty"`
}

// Meta returns a copy of the descriptive part of the surah.
func (s *Surah) Meta() SurahMeta {
	return s.SurahMeta
}
