package entities

// Edition describes a rendering of the Quran as returned by the remote service:
// a source text, a translation or a recitation.
type Edition struct {
	Identifier  string `json:"identifier"`  // e.g. "quran-uthmani", "en.asad", "ar.alafasy"
	Language    string `json:"language"`    // ISO language code
	Name        string `json:"name"`        // native name
	EnglishName string `json:"englishName"` // English name
	Format      string `json:"format"`      // "text" or "audio"
	Type        string `json:"type"`        // "quran", "translation", "versebyverse" etc
	Direction   string `json:"direction"`   // "rtl" or "ltr", text editions only
}
