package quran

import (
	"context"
	"fmt"
	"strconv"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
)

// Surahs returns descriptive data about all 114 surahs in order.
func (c *Client) Surahs(ctx context.Context) ([]entities.SurahMeta, error) {
	return get[[]entities.SurahMeta](ctx, c, "surah")
}

// Surah returns a complete surah in the given edition, or in the source
// edition when edition is empty.
func (c *Client) Surah(ctx context.Context, number int, edition string) (*entities.Surah, error) {
	if err := ValidateSurah(number); err != nil {
		return nil, err
	}
	return c.surah(ctx, number, c.sourceOr(edition))
}

// SurahWithAudio returns a surah in an audio edition, so every ayah carries
// its recitation URLs.
func (c *Client) SurahWithAudio(ctx context.Context, number int, reciter string) (*entities.Surah, error) {
	if err := ValidateSurah(number); err != nil {
		return nil, err
	}
	return c.surah(ctx, number, c.reciterOr(reciter))
}

// SurahWithTranslation returns the surah in the source edition with each ayah
// paired with the translation edition.
func (c *Client) SurahWithTranslation(ctx context.Context, number int, translation string) (*entities.Surah, error) {
	if err := ValidateSurah(number); err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, edition string) (*entities.Surah, error) {
		return c.surah(ctx, number, edition)
	}
	source, tr, err := fetchPair(ctx, fetch, c.editions.Source, c.translationOr(translation))
	if err != nil {
		return nil, err
	}

	source.Ayahs = CombineWithTranslation(source.Ayahs, tr.Ayahs)
	return source, nil
}

func (c *Client) surah(ctx context.Context, number int, edition string) (*entities.Surah, error) {
	segments := []string{"surah", strconv.Itoa(number), edition}
	s, err := get[entities.Surah](ctx, c, segments...)
	if err != nil {
		return nil, err
	}

	if s.NumberOfAyahs != len(s.Ayahs) {
		return nil, &MalformedResponseError{
			Path: buildPath(segments...),
			Err:  fmt.Errorf("numberOfAyahs %d but %d ayahs", s.NumberOfAyahs, len(s.Ayahs)),
		}
	}

	// Surah payloads omit the surah on each ayah.
	meta := s.SurahMeta
	for i := range s.Ayahs {
		if s.Ayahs[i].Surah == nil {
			s.Ayahs[i].Surah = &meta
		}
	}

	return &s, nil
}
