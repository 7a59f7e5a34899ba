package quran

import (
	"context"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
)

// Ayah returns one ayah. ref is a global number ("262") or "surah:ayah".
func (c *Client) Ayah(ctx context.Context, ref string, edition string) (*entities.Ayah, error) {
	r, err := ResolveAyahReference(ref)
	if err != nil {
		return nil, err
	}
	return c.ayah(ctx, r, c.sourceOr(edition))
}

// AyahWithTranslation returns one ayah in the source edition paired with the
// translation edition.
func (c *Client) AyahWithTranslation(ctx context.Context, ref string, translation string) (*entities.Ayah, error) {
	r, err := ResolveAyahReference(ref)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, edition string) (*entities.Ayah, error) {
		return c.ayah(ctx, r, edition)
	}
	source, tr, err := fetchPair(ctx, fetch, c.editions.Source, c.translationOr(translation))
	if err != nil {
		return nil, err
	}

	combined := CombineWithTranslation([]entities.Ayah{*source}, []entities.Ayah{*tr})
	return &combined[0], nil
}

func (c *Client) ayah(ctx context.Context, ref AyahRef, edition string) (*entities.Ayah, error) {
	a, err := get[entities.Ayah](ctx, c, "ayah", ref.String(), edition)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
