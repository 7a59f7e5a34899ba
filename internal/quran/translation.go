package quran

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
)

// CombineWithTranslation pairs source[i] with translation[i] by position only.
// Both editions of one reference are assumed to come back in identical ayah
// order; surah and ayah numbers are not compared. Positions missing from
// translation get an empty translation, surplus translation entries are
// dropped. Neither input is modified.
func CombineWithTranslation(source, translation []entities.Ayah) []entities.Ayah {
	combined := make([]entities.Ayah, len(source))
	for i, ayah := range source {
		text := ""
		if i < len(translation) {
			text = translation[i].Text
		}
		ayah.Translation = &text
		combined[i] = ayah
	}
	return combined
}

// fetchPair runs fetch for the source and the translation edition
// concurrently. The first failure cancels the other request and is returned
// alone.
func fetchPair[T any](
	ctx context.Context,
	fetch func(ctx context.Context, edition string) (T, error),
	sourceEdition, translationEdition string,
) (T, T, error) {
	var source, translation T

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := fetch(gctx, sourceEdition)
		if err != nil {
			return err
		}
		source = v
		return nil
	})
	g.Go(func() error {
		v, err := fetch(gctx, translationEdition)
		if err != nil {
			return err
		}
		translation = v
		return nil
	})

	if err := g.Wait(); err != nil {
		var zero T
		return zero, zero, err
	}

	return source, translation, nil
}
