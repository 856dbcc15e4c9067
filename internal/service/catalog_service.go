package service

import (
	"context"
	"fmt"
	"math/rand"
	"showtracker/configs"
	"showtracker/pkg/catalog"
	"strings"
	"sync"
	"time"
)

type ICatalogClient interface {
	FetchPage(ctx context.Context, page int) ([]catalog.Show, error)
	Search(ctx context.Context, query string) ([]catalog.Show, error)
	Show(ctx context.Context, id int64) (*catalog.ShowDetail, error)
}

type ICatalogService interface {
	Discover(ctx context.Context, page *int, genres []string) catalog.Batch
	Search(ctx context.Context, query string) ([]catalog.Show, error)
	GetShowDetail(ctx context.Context, showId int64) (*catalog.ShowDetail, error)
}

const (
	defaultShowCacheTtl   = time.Hour
	defaultSearchCacheTtl = 10 * time.Minute
)

type CatalogService struct {
	client       ICatalogClient
	cacheService ICacheService
	rndMux       sync.Mutex
	rnd          *rand.Rand
}

func NewCatalogService(client ICatalogClient, cacheService ICacheService) *CatalogService {
	return &CatalogService{
		client:       client,
		cacheService: cacheService,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

//------------------------------------------
//------------------------------------------

// discoverOptions builds the browse settings from the dynamic configs,
// keeping the defaults for anything left unset.
func discoverOptions(genres []string) (catalog.DiscoverOptions, int) {
	dbConf := configs.GetDbConfigs()
	filter := catalog.DefaultFilter()
	if len(dbConf.CatalogTypes) > 0 {
		filter.Types = dbConf.CatalogTypes
	}
	if len(dbConf.CatalogLanguages) > 0 {
		filter.Languages = dbConf.CatalogLanguages
	}
	if dbConf.CatalogMinYear > 0 {
		filter.MinYear = dbConf.CatalogMinYear
	}
	if dbConf.CatalogMinRating > 0 {
		filter.MinRating = dbConf.CatalogMinRating
	}
	if dbConf.CatalogMinWeight > 0 {
		filter.MinWeight = dbConf.CatalogMinWeight
	}
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			filter.Genres = append(filter.Genres, g)
		}
	}

	randomPages := dbConf.CatalogRandomPages
	if randomPages <= 0 {
		randomPages = catalog.DefaultRandomPages
	}
	return catalog.DiscoverOptions{
		BatchSize: dbConf.CatalogBatchSize,
		MaxPages:  dbConf.CatalogMaxPages,
		Filter:    filter,
	}, randomPages
}

// Discover returns the next browse batch. A nil page starts from a random
// page, the behaviour of a pull-to-refresh.
func (c *CatalogService) Discover(ctx context.Context, page *int, genres []string) catalog.Batch {
	opts, randomPages := discoverOptions(genres)

	c.rndMux.Lock()
	seed := c.rnd.Int63()
	startPage := c.rnd.Intn(randomPages)
	c.rndMux.Unlock()

	if page != nil {
		startPage = *page
	}
	return catalog.Discover(ctx, c.client, startPage, opts, rand.New(rand.NewSource(seed)))
}

func (c *CatalogService) Search(ctx context.Context, query string) ([]catalog.Show, error) {
	if strings.TrimSpace(query) == "" {
		return []catalog.Show{}, nil
	}

	if cached, err := c.cacheService.GetCachedSearch(ctx, query); err == nil && cached != nil {
		return cached, nil
	}

	shows, err := c.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}

	ttl := time.Duration(configs.GetDbConfigs().SearchCacheTtlMinutes) * time.Minute
	if ttl <= 0 {
		ttl = defaultSearchCacheTtl
	}
	_ = c.cacheService.SetSearchCache(ctx, query, shows, ttl)
	return shows, nil
}

func (c *CatalogService) GetShowDetail(ctx context.Context, showId int64) (*catalog.ShowDetail, error) {
	if showId <= 0 {
		return nil, catalog.ErrShowNotFound
	}

	if cached, err := c.cacheService.GetCachedShow(ctx, showId); err == nil && cached != nil {
		return cached, nil
	}

	show, err := c.client.Show(ctx, showId)
	if err != nil {
		return nil, fmt.Errorf("catalog show %d: %w", showId, err)
	}

	ttl := time.Duration(configs.GetDbConfigs().ShowCacheTtlMinutes) * time.Minute
	if ttl <= 0 {
		ttl = defaultShowCacheTtl
	}
	_ = c.cacheService.SetShowCache(ctx, showId, show, ttl)
	return show, nil
}
