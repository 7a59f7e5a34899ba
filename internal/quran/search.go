package quran

import (
	"context"
	"fmt"
	"strings"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
)

// Search looks keyword up in the given edition, or in the translation
// edition when edition is empty.
func (c *Client) Search(ctx context.Context, keyword string, scope SearchScope, edition string) (*entities.SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: empty search keyword", ErrInvalidReference)
	}
	if err := scope.validate(); err != nil {
		return nil, err
	}

	segments := []string{"search", keyword, scope.String(), c.translationOr(edition)}
	result, err := get[entities.SearchResult](ctx, c, segments...)
	if err != nil {
		return nil, err
	}

	if result.Count != len(result.Matches) {
		return nil, &MalformedResponseError{
			Path: buildPath(segments...),
			Err:  fmt.Errorf("count %d does not match %d matches", result.Count, len(result.Matches)),
		}
	}

	return &result, nil
}

// Meta returns aggregate counts of the corpus.
func (c *Client) Meta(ctx context.Context) (*entities.Meta, error) {
	m, err := get[entities.Meta](ctx, c, "meta")
	if err != nil {
		return nil, err
	}
	return &m, nil
}
