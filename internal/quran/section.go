package quran

import (
	"context"
	"strconv"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
)

const (
	sectionPage = "page"
	sectionJuz  = "juz"
)

// Page returns the ayahs of mushaf page number in the given edition.
func (c *Client) Page(ctx context.Context, number int, edition string) (*entities.Section, error) {
	if err := ValidatePage(number); err != nil {
		return nil, err
	}
	return c.section(ctx, sectionPage, number, c.sourceOr(edition))
}

// PageWithTranslation returns a page in the source edition paired with the
// translation edition.
func (c *Client) PageWithTranslation(ctx context.Context, number int, translation string) (*entities.Section, error) {
	if err := ValidatePage(number); err != nil {
		return nil, err
	}
	return c.sectionWithTranslation(ctx, sectionPage, number, translation)
}

// Juz returns the ayahs of juz number in the given edition.
func (c *Client) Juz(ctx context.Context, number int, edition string) (*entities.Section, error) {
	if err := ValidateJuz(number); err != nil {
		return nil, err
	}
	return c.section(ctx, sectionJuz, number, c.sourceOr(edition))
}

// JuzWithTranslation returns a juz in the source edition paired with the
// translation edition.
func (c *Client) JuzWithTranslation(ctx context.Context, number int, translation string) (*entities.Section, error) {
	if err := ValidateJuz(number); err != nil {
		return nil, err
	}
	return c.sectionWithTranslation(ctx, sectionJuz, number, translation)
}

func (c *Client) sectionWithTranslation(ctx context.Context, kind string, number int, translation string) (*entities.Section, error) {
	fetch := func(ctx context.Context, edition string) (*entities.Section, error) {
		return c.section(ctx, kind, number, edition)
	}
	source, tr, err := fetchPair(ctx, fetch, c.editions.Source, c.translationOr(translation))
	if err != nil {
		return nil, err
	}

	source.Ayahs = CombineWithTranslation(source.Ayahs, tr.Ayahs)
	return source, nil
}

func (c *Client) section(ctx context.Context, kind string, number int, edition string) (*entities.Section, error) {
	s, err := get[entities.Section](ctx, c, kind, strconv.Itoa(number), edition)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
