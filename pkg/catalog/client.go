package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

var (
	ErrEndOfCatalog = errors.New("catalog: no more pages")
	ErrShowNotFound = errors.New("catalog: show not found")
)

// StatusError is returned for any non-2xx answer not covered by a sentinel.
type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog: %s returned status %d", e.Url, e.StatusCode)
}

// Client is a read-only client for the TVMaze REST API.
type Client struct {
	baseUrl    string
	timeout    time.Duration
	httpClient *fasthttp.Client
}

func NewClient(baseUrl string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		timeout: timeout,
		httpClient: &fasthttp.Client{
			Name:                "showtracker",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 30 * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

// FetchPage returns one page of the show index. Past the last page the
// catalog answers 404, reported as ErrEndOfCatalog.
func (c *Client) FetchPage(ctx context.Context, page int) ([]Show, error) {
	var shows []Show
	err := c.getJSON(ctx, "/shows?page="+strconv.Itoa(page), &shows)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == fasthttp.StatusNotFound {
			return nil, ErrEndOfCatalog
		}
		return nil, err
	}
	return shows, nil
}

// Search looks shows up by free text. A blank query never reaches the network.
func (c *Client) Search(ctx context.Context, query string) ([]Show, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Show{}, nil
	}

	var results []searchResult
	if err := c.getJSON(ctx, "/search/shows?q="+url.QueryEscape(query), &results); err != nil {
		return nil, err
	}
	shows := make([]Show, 0, len(results))
	for _, r := range results {
		shows = append(shows, r.Show)
	}
	return shows, nil
}

// Show fetches one show with its episodes and cast embedded.
func (c *Client) Show(ctx context.Context, id int64) (*ShowDetail, error) {
	var show Show
	path := fmt.Sprintf("/shows/%d?embed[]=episodes&embed[]=cast", id)
	if err := c.getJSON(ctx, path, &show); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == fasthttp.StatusNotFound {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return NewShowDetail(show), nil
}

//------------------------------------------
//------------------------------------------

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	fullUrl := c.baseUrl + path
	req.SetRequestURI(fullUrl)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("catalog: GET %s: %w", fullUrl, err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return &StatusError{Url: fullUrl, StatusCode: code}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", fullUrl, err)
	}
	return nil
}
