package entities

// SearchResult is the outcome of a keyword search.
type SearchResult struct {
	Count   int    `json:"count"`
	Matches []Ayah `json:"matches"`
}

// Count wraps a bare total in the meta payload.
type Count struct {
	Count int `json:"count"`
}

// SajdaRef locates one prostration ayah.
type SajdaRef struct {
	Surah       int  `json:"surah"`
	Ayah        int  `json:"ayah"`
	Recommended bool `json:"recommended"`
	Obligatory  bool `json:"obligatory"`
}

// Meta holds aggregate counts of the corpus.
type Meta struct {
	Ayahs  Count `json:"ayahs"`
	Surahs struct {
		Count      int         `json:"count"`
		References []SurahMeta `json:"references"`
	} `json:"surahs"`
	Pages        Count `json:"pages"`
	Juzs         Count `json:"juzs"`
	Manzils      Count `json:"manzils"`
	Rukus        Count `json:"rukus"`
	HizbQuarters Count `json:"hizbQuarters"`
	Sajdas       struct {
		Count      int        `json:"count"`
		References []SajdaRef `json:"references"`
	} `json:"sajdas"`
}
