package service

import (
	"context"
	"encoding/json"
	"fmt"
	"showtracker/db/redis"
	"showtracker/pkg/catalog"
	errorHandler "showtracker/pkg/error"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type ICacheService interface {
	IsSessionRevoked(ctx context.Context, sessionId string) (bool, error)
	RevokeSession(ctx context.Context, sessionId string, duration time.Duration) error
	GetCachedShow(ctx context.Context, showId int64) (*catalog.ShowDetail, error)
	SetShowCache(ctx context.Context, showId int64, show *catalog.ShowDetail, duration time.Duration) error
	DeleteShowCache(ctx context.Context, showId int64) error
	GetCachedSearch(ctx context.Context, query string) ([]catalog.Show, error)
	SetSearchCache(ctx context.Context, query string, shows []catalog.Show, duration time.Duration) error
}

const (
	revokedSessionCachePrefix = "revokedSession:"
	showDataCachePrefix       = "show:"
	searchDataCachePrefix     = "search:"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

//------------------------------------------
//------------------------------------------

func (c *CacheService) IsSessionRevoked(ctx context.Context, sessionId string) (bool, error) {
	return redis.ExistsRedis(ctx, revokedSessionCachePrefix+sessionId)
}

func (c *CacheService) RevokeSession(ctx context.Context, sessionId string, duration time.Duration) error {
	err := redis.SetRedis(ctx, revokedSessionCachePrefix+sessionId, "1", duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on revoking session: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

// GetCachedShow returns nil, nil on a cache miss.
func (c *CacheService) GetCachedShow(ctx context.Context, showId int64) (*catalog.ShowDetail, error) {
	var show catalog.ShowDetail
	found, err := getJson(ctx, showDataCachePrefix+strconv.FormatInt(showId, 10), &show)
	if err != nil || !found {
		return nil, err
	}
	return &show, nil
}

func (c *CacheService) SetShowCache(ctx context.Context, showId int64, show *catalog.ShowDetail, duration time.Duration) error {
	return setJson(ctx, showDataCachePrefix+strconv.FormatInt(showId, 10), show, duration)
}

func (c *CacheService) DeleteShowCache(ctx context.Context, showId int64) error {
	return redis.DelRedis(ctx, showDataCachePrefix+strconv.FormatInt(showId, 10))
}

// GetCachedSearch returns nil, nil on a cache miss.
func (c *CacheService) GetCachedSearch(ctx context.Context, query string) ([]catalog.Show, error) {
	var shows []catalog.Show
	found, err := getJson(ctx, searchDataCachePrefix+normalizeQuery(query), &shows)
	if err != nil || !found {
		return nil, err
	}
	return shows, nil
}

func (c *CacheService) SetSearchCache(ctx context.Context, query string, shows []catalog.Show, duration time.Duration) error {
	return setJson(ctx, searchDataCachePrefix+normalizeQuery(query), shows, duration)
}

//------------------------------------------
//------------------------------------------

func getJson(ctx context.Context, key string, out interface{}) (bool, error) {
	result, err := redis.GetRedis(ctx, key)
	if err != nil {
		if redis.IsNil(err) {
			return false, nil
		}
		return false, err
	}
	if result == "" {
		return false, nil
	}
	if err = json.Unmarshal([]byte(result), out); err != nil {
		return false, err
	}
	return true, nil
}

func setJson(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving %s: %v", key, err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}
	err = redis.SetRedis(ctx, key, jsonData, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving %s: %v", key, err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

// normalizeQuery folds case and collapses whitespace so equivalent queries
// share one cache entry.
func normalizeQuery(query string) string {
	return cases.Fold().String(strings.Join(strings.Fields(query), " "))
}
