package entities

import "sort"

// Section is a contiguous run of ayahs retrieved by page or by juz.
// Surahs lists every surah contributing at least one ayah to the run.
type Section struct {
	Number  int               `json:"number"` // page (1-604) or juz (1-30) number
	Ayahs   []Ayah            `json:"ayahs"`
	Surahs  map[int]SurahMeta `json:"surahs"`
	Edition *Edition          `json:"edition,omitempty"`
}

// SurahNames maps each contributing surah number to its Arabic name.
func (s *Section) SurahNames() map[int]string {
	names := make(map[int]string, len(s.Surahs))
	for number, meta := range s.Surahs {
		names[number] = meta.Name
	}
	return names
}

// SurahNumbers returns the contributing surah numbers in ascending order.
func (s *Section) SurahNumbers() []int {
	numbers := make([]int, 0, len(s.Surahs))
	for number := range s.Surahs {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	return numbers
}
