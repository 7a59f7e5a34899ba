package quran

import (
	"fmt"
	"strconv"
	"strings"
)

// Published bounds of the corpus.
const (
	SurahCount = 114
	PageCount  = 604
	JuzCount   = 30
	AyahCount  = 6236
)

// ValidateSurah checks that n is a surah number.
func ValidateSurah(n int) error {
	return checkRange("surah", n, SurahCount)
}

// ValidatePage checks that n is a mushaf page number.
func ValidatePage(n int) error {
	return checkRange("page", n, PageCount)
}

// ValidateJuz checks that n is a juz number.
func ValidateJuz(n int) error {
	return checkRange("juz", n, JuzCount)
}

func checkRange(kind string, n, upper int) error {
	if n < 1 || n > upper {
		return fmt.Errorf("%w: %s %d not in 1..%d", ErrOutOfRange, kind, n, upper)
	}
	return nil
}

// AyahRef is a validated ayah reference: either a global ayah number or a
// surah and an ayah number within it.
type AyahRef struct {
	Number int // global number (1-6236), 0 when the reference is a pair
	Surah  int
	Ayah   int
}

// IsPair reports whether the reference was given as "surah:ayah".
func (r AyahRef) IsPair() bool {
	return r.Number == 0
}

// String renders the reference the way the remote service expects it.
func (r AyahRef) String() string {
	if r.IsPair() {
		return strconv.Itoa(r.Surah) + ":" + strconv.Itoa(r.Ayah)
	}
	return strconv.Itoa(r.Number)
}

// ResolveAyahReference parses "262" or "2:255" style references. Whether the
// ayah number exists within the surah is left to the remote service.
func ResolveAyahReference(ref string) (AyahRef, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return AyahRef{}, fmt.Errorf("%w: empty reference", ErrInvalidReference)
	}

	surahPart, ayahPart, isPair := strings.Cut(ref, ":")
	if !isPair {
		n, err := strconv.Atoi(ref)
		if err != nil {
			return AyahRef{}, fmt.Errorf("%w: %q is not a number", ErrInvalidReference, ref)
		}
		if err := checkRange("ayah", n, AyahCount); err != nil {
			return AyahRef{}, fmt.Errorf("%w: %w", ErrInvalidReference, err)
		}
		return AyahRef{Number: n}, nil
	}

	surah, err := strconv.Atoi(strings.TrimSpace(surahPart))
	if err != nil {
		return AyahRef{}, fmt.Errorf("%w: surah %q is not a number", ErrInvalidReference, surahPart)
	}
	if err := ValidateSurah(surah); err != nil {
		return AyahRef{}, fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}

	ayah, err := strconv.Atoi(strings.TrimSpace(ayahPart))
	if err != nil {
		return AyahRef{}, fmt.Errorf("%w: ayah %q is not a number", ErrInvalidReference, ayahPart)
	}
	if ayah < 1 {
		return AyahRef{}, fmt.Errorf("%w: ayah number must be positive, got %d", ErrInvalidReference, ayah)
	}

	return AyahRef{Surah: surah, Ayah: ayah}, nil
}

// SearchScope restricts a search to one surah or the whole corpus.
type SearchScope int

// SearchAll searches every surah.
const SearchAll SearchScope = 0

// SearchInSurah limits a search to surah n.
func SearchInSurah(n int) SearchScope {
	return SearchScope(n)
}

func (s SearchScope) String() string {
	if s == SearchAll {
		return "all"
	}
	return strconv.Itoa(int(s))
}

func (s SearchScope) validate() error {
	if s == SearchAll {
		return nil
	}
	return ValidateSurah(int(s))
}

// ParseSearchScope accepts "", "all" or a surah number.
func ParseSearchScope(s string) (SearchScope, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return SearchAll, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return SearchAll, fmt.Errorf("%w: search scope %q", ErrInvalidReference, s)
	}
	scope := SearchInSurah(n)
	if err := scope.validate(); err != nil {
		return SearchAll, err
	}
	return scope, nil
}
