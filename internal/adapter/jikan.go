package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dkrylov/animereview/internal/config"
	"github.com/dkrylov/animereview/internal/logger"
	"github.com/dkrylov/animereview/internal/utils"
	"github.com/dkrylov/animereview/models"
)

// minSearchRunes is the shortest query that triggers a network request.
// Shorter queries answer empty immediately, matching the incremental
// search box behavior.
const minSearchRunes = 3

// dataEnvelope is the response wrapper used by every Jikan v4 endpoint.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// JikanCatalog is the resty-backed [AnimeCatalog] implementation for the
// Jikan v4 API. Successful responses are cached per endpoint+parameters
// for the configured TTL; PruneExpired drops entries the cache would
// otherwise keep until the next read.
type JikanCatalog struct {
	client *utils.HTTPClient
	cache  *ttlCache
	logger *logger.Logger
}

func NewJikanCatalog(cfg config.Catalog, logger *logger.Logger) (*JikanCatalog, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &JikanCatalog{
		client: client,
		cache:  newTTLCache(cfg.CacheTTL),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Top implements [AnimeCatalog]. It fetches GET /top/anime limited to
// limit entries.
func (j *JikanCatalog) Top(ctx context.Context, limit int) ([]models.Anime, error) {
	return j.fetchList(ctx, "/top/anime", map[string]string{
		"limit": strconv.Itoa(limit),
	})
}

// ByID implements [AnimeCatalog]. It fetches GET /anime/{id}/full and
// returns ErrNotFound for an unknown id.
func (j *JikanCatalog) ByID(ctx context.Context, id int64) (models.Anime, error) {
	log := logger.FromContext(ctx)

	path := fmt.Sprintf("/anime/%d/full", id)
	if cached, ok := j.cache.get(path); ok {
		return cached.(models.Anime), nil
	}

	resp, err := j.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		log.Err(err).Str("func", "*JikanCatalog.ByID").Int64("anime_id", id).Msg("catalog request failed")
		return models.Anime{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if resp.StatusCode() == 404 {
		return models.Anime{}, ErrNotFound
	}
	if resp.IsError() {
		log.Error().Str("func", "*JikanCatalog.ByID").Int("status", resp.StatusCode()).Msg("catalog answered with error status")
		return models.Anime{}, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode())
	}

	var envelope dataEnvelope[models.Anime]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		log.Err(err).Str("func", "*JikanCatalog.ByID").Msg("failed to decode catalog response")
		return models.Anime{}, fmt.Errorf("%w: decoding response: %w", ErrFetchFailed, err)
	}

	j.cache.set(path, envelope.Data)
	return envelope.Data, nil
}

// Search implements [AnimeCatalog]. A trimmed query shorter than three
// runes answers empty without a request.
func (j *JikanCatalog) Search(ctx context.Context, query string, limit int) ([]models.Anime, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minSearchRunes {
		return []models.Anime{}, nil
	}

	return j.fetchList(ctx, "/anime", map[string]string{
		"q":     trimmed,
		"limit": strconv.Itoa(limit),
	})
}

// LeastPopular implements [AnimeCatalog]. The API cannot filter out
// entries with no audience data, so twice the requested amount is fetched
// and zero member counts are dropped before truncating.
func (j *JikanCatalog) LeastPopular(ctx context.Context, limit int) ([]models.Anime, error) {
	list, err := j.fetchList(ctx, "/anime", map[string]string{
		"order_by": "members",
		"sort":     "asc",
		"limit":    strconv.Itoa(limit * 2),
	})
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Anime, 0, limit)
	for _, anime := range list {
		if anime.Members <= 0 {
			continue
		}
		filtered = append(filtered, anime)
		if len(filtered) == limit {
			break
		}
	}

	return filtered, nil
}

// PruneExpired drops expired cache entries and reports how many were
// removed. Called periodically by the cache janitor worker.
func (j *JikanCatalog) PruneExpired() int {
	pruned := j.cache.pruneExpired()
	if pruned > 0 {
		j.logger.Debug().Str("func", "*JikanCatalog.PruneExpired").Int("pruned", pruned).Msg("dropped expired catalog cache entries")
	}
	return pruned
}

func (j *JikanCatalog) fetchList(ctx context.Context, path string, params map[string]string) ([]models.Anime, error) {
	log := logger.FromContext(ctx)

	key := cacheKey(path, params)
	if cached, ok := j.cache.get(key); ok {
		return cached.([]models.Anime), nil
	}

	resp, err := j.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		log.Err(err).Str("func", "*JikanCatalog.fetchList").Str("path", path).Msg("catalog request failed")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*JikanCatalog.fetchList").Str("path", path).Int("status", resp.StatusCode()).Msg("catalog answered with error status")
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode())
	}

	var envelope dataEnvelope[[]models.Anime]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		log.Err(err).Str("func", "*JikanCatalog.fetchList").Str("path", path).Msg("failed to decode catalog response")
		return nil, fmt.Errorf("%w: decoding response: %w", ErrFetchFailed, err)
	}

	if envelope.Data == nil {
		envelope.Data = []models.Anime{}
	}

	j.cache.set(key, envelope.Data)
	return envelope.Data, nil
}

// cacheKey builds a deterministic key from the endpoint and its encoded
// query parameters.
func cacheKey(path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return path + "?" + values.Encode()
}
