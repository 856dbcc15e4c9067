package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"showtracker/model"
	"showtracker/pkg/catalog"
	"showtracker/pkg/response"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("showtracker: status %d: %s", e.StatusCode, e.Message)
}

// Client is a typed client for the showtracker REST API.
type Client struct {
	baseUrl    string
	timeout    time.Duration
	httpClient *fasthttp.Client
	tokenMux   sync.RWMutex
	token      string
}

func New(baseUrl string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		timeout: timeout,
		httpClient: &fasthttp.Client{
			Name:                "showtracker-client",
			MaxIdleConnDuration: 30 * time.Second,
		},
	}
}

func (c *Client) SetToken(accessToken string) {
	c.tokenMux.Lock()
	defer c.tokenMux.Unlock()
	c.token = accessToken
}

func (c *Client) Token() string {
	c.tokenMux.RLock()
	defer c.tokenMux.RUnlock()
	return c.token
}

//------------------------------------------
//------------------------------------------

func (c *Client) Register(ctx context.Context, req model.RegisterReq) (*model.TokenRes, error) {
	return c.authenticate(ctx, "/v1/auth/register", req)
}

func (c *Client) Login(ctx context.Context, req model.LoginReq) (*model.TokenRes, error) {
	return c.authenticate(ctx, "/v1/auth/login", req)
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*model.TokenRes, error) {
	return c.authenticate(ctx, "/v1/auth/refresh", model.RefreshReq{RefreshToken: refreshToken})
}

// authenticate stores the access token of a successful answer.
func (c *Client) authenticate(ctx context.Context, path string, body interface{}) (*model.TokenRes, error) {
	var res model.TokenRes
	if err := c.do(ctx, fasthttp.MethodPost, path, body, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.AccessToken)
	return &res, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, fasthttp.MethodPut, "/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *Client) Me(ctx context.Context) (*model.Identity, error) {
	var res model.Identity
	if err := c.do(ctx, fasthttp.MethodGet, "/v1/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ChangePassword(ctx context.Context, req model.ChangePasswordReq) error {
	return c.do(ctx, fasthttp.MethodPut, "/v1/auth/password", req, nil)
}

//------------------------------------------
//------------------------------------------

func (c *Client) Watchlist(ctx context.Context) ([]model.WatchlistEntry, error) {
	var res []model.WatchlistEntry
	err := c.do(ctx, fasthttp.MethodGet, "/v1/watchlist", nil, &res)
	return res, err
}

func (c *Client) AddToWatchlist(ctx context.Context, show model.Show) error {
	return c.do(ctx, fasthttp.MethodPut, "/v1/watchlist", show, nil)
}

func (c *Client) RemoveFromWatchlist(ctx context.Context, showId int64) error {
	return c.do(ctx, fasthttp.MethodDelete, "/v1/watchlist/"+strconv.FormatInt(showId, 10), nil, nil)
}

func (c *Client) SaveReview(ctx context.Context, show model.Show, input model.ReviewInput) error {
	return c.do(ctx, fasthttp.MethodPut, "/v1/reviews", model.SaveReviewReq{Show: show, Review: input}, nil)
}

func (c *Client) MyReviews(ctx context.Context) ([]model.ReviewEntry, error) {
	var res []model.ReviewEntry
	err := c.do(ctx, fasthttp.MethodGet, "/v1/reviews", nil, &res)
	return res, err
}

func (c *Client) Favorites(ctx context.Context) ([]model.ReviewEntry, error) {
	var res []model.ReviewEntry
	err := c.do(ctx, fasthttp.MethodGet, "/v1/favorites", nil, &res)
	return res, err
}

func (c *Client) DeleteReview(ctx context.Context, showId int64) error {
	return c.do(ctx, fasthttp.MethodDelete, "/v1/reviews/"+strconv.FormatInt(showId, 10), nil, nil)
}

func (c *Client) ShowReviews(ctx context.Context, showId int64) ([]model.ReviewEntry, error) {
	var res []model.ReviewEntry
	err := c.do(ctx, fasthttp.MethodGet, "/v1/shows/"+strconv.FormatInt(showId, 10)+"/reviews", nil, &res)
	return res, err
}

func (c *Client) ShowStatus(ctx context.Context, showId int64) (model.ShowStatus, error) {
	var res model.ShowStatus
	err := c.do(ctx, fasthttp.MethodGet, "/v1/shows/"+strconv.FormatInt(showId, 10)+"/status", nil, &res)
	return res, err
}

//------------------------------------------
//------------------------------------------

func (c *Client) Playlists(ctx context.Context) ([]model.Playlist, error) {
	var res []model.Playlist
	err := c.do(ctx, fasthttp.MethodGet, "/v1/playlists", nil, &res)
	return res, err
}

func (c *Client) CreatePlaylist(ctx context.Context, name string) (*model.Playlist, error) {
	var res model.Playlist
	if err := c.do(ctx, fasthttp.MethodPost, "/v1/playlists", model.CreatePlaylistReq{Name: name}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeletePlaylist(ctx context.Context, playlistId string) error {
	return c.do(ctx, fasthttp.MethodDelete, "/v1/playlists/"+url.PathEscape(playlistId), nil, nil)
}

func (c *Client) PlaylistItems(ctx context.Context, playlistId string) ([]model.PlaylistItem, error) {
	var res []model.PlaylistItem
	err := c.do(ctx, fasthttp.MethodGet, "/v1/playlists/"+url.PathEscape(playlistId)+"/items", nil, &res)
	return res, err
}

func (c *Client) AddToPlaylist(ctx context.Context, playlistId string, show model.Show) error {
	return c.do(ctx, fasthttp.MethodPut, "/v1/playlists/"+url.PathEscape(playlistId)+"/items", show, nil)
}

func (c *Client) RemoveFromPlaylist(ctx context.Context, playlistId string, showId int64) error {
	path := "/v1/playlists/" + url.PathEscape(playlistId) + "/items/" + strconv.FormatInt(showId, 10)
	return c.do(ctx, fasthttp.MethodDelete, path, nil, nil)
}

func (c *Client) RecountPlaylist(ctx context.Context, playlistId string) (*model.Playlist, error) {
	var res model.Playlist
	if err := c.do(ctx, fasthttp.MethodPut, "/v1/playlists/"+url.PathEscape(playlistId)+"/recount", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

//------------------------------------------
//------------------------------------------

func (c *Client) Profile(ctx context.Context) (*model.ProfileRes, error) {
	var res model.ProfileRes
	if err := c.do(ctx, fasthttp.MethodGet, "/v1/profile", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.ProfileRes, error) {
	var res model.ProfileRes
	if err := c.do(ctx, fasthttp.MethodPut, "/v1/profile", update, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Discover fetches a browse batch. A negative page asks the server for a
// random one.
func (c *Client) Discover(ctx context.Context, page int, genres []string) (*catalog.Batch, error) {
	query := url.Values{}
	if page >= 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if len(genres) > 0 {
		query.Set("genres", strings.Join(genres, ","))
	}
	path := "/v1/catalog/discover"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var res catalog.Batch
	if err := c.do(ctx, fasthttp.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Search(ctx context.Context, query string) ([]catalog.Show, error) {
	if strings.TrimSpace(query) == "" {
		return []catalog.Show{}, nil
	}
	var res []catalog.Show
	err := c.do(ctx, fasthttp.MethodGet, "/v1/catalog/search?q="+url.QueryEscape(query), nil, &res)
	return res, err
}

func (c *Client) ShowDetail(ctx context.Context, showId int64) (*catalog.ShowDetail, error) {
	var res catalog.ShowDetail
	if err := c.do(ctx, fasthttp.MethodGet, "/v1/catalog/shows/"+strconv.FormatInt(showId, 10), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

//------------------------------------------
//------------------------------------------

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseUrl + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("showtracker: %s %s: %w", method, path, err)
	}

	var envelope response.Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return &APIError{StatusCode: resp.StatusCode(), Message: string(resp.Body())}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &APIError{StatusCode: resp.StatusCode(), Message: envelope.ErrorMessage}
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
