package adapter

import (
	"context"

	"github.com/dkrylov/animereview/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_mock.go -package=mock

// AnimeCatalog is the read-only client for the remote anime metadata API.
// Implementations cache successful responses; failures are reported, never
// silently mapped to empty results.
type AnimeCatalog interface {
	// Top returns the highest ranked titles, at most limit entries.
	Top(ctx context.Context, limit int) ([]models.Anime, error)

	// ByID returns the full record for one title. Returns ErrNotFound
	// when the id is unknown to the remote API.
	ByID(ctx context.Context, id int64) (models.Anime, error)

	// Search returns titles matching the query. A trimmed query shorter
	// than 3 runes yields an empty result without touching the network.
	Search(ctx context.Context, query string, limit int) ([]models.Anime, error)

	// LeastPopular returns titles with the fewest members, ascending.
	// Entries without a member count are dropped.
	LeastPopular(ctx context.Context, limit int) ([]models.Anime, error)
}
