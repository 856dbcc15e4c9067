package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"showtracker/model"
	"showtracker/pkg/catalog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          []byte
}

type fakeServer struct {
	mux      sync.Mutex
	requests []recordedRequest
	server   *httptest.Server
}

func writeEnvelope(w http.ResponseWriter, code int, data interface{}, errorMessage string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":         code,
		"data":         data,
		"errorMessage": errorMessage,
	})
}

func newFakeServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fs.mux.Lock()
		fs.requests = append(fs.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})
		fs.mux.Unlock()
		handler(w, r)
	}))
	t.Cleanup(fs.server.Close)
	return fs
}

func (fs *fakeServer) last() recordedRequest {
	fs.mux.Lock()
	defer fs.mux.Unlock()
	return fs.requests[len(fs.requests)-1]
}

func (fs *fakeServer) count() int {
	fs.mux.Lock()
	defer fs.mux.Unlock()
	return len(fs.requests)
}

func TestLoginStoresTokenForLaterCalls(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/login":
			writeEnvelope(w, http.StatusOK, model.TokenRes{AccessToken: "access-1", RefreshToken: "refresh-1"}, "")
		case "/v1/watchlist":
			writeEnvelope(w, http.StatusOK, []model.WatchlistEntry{{Show: model.Show{ShowId: 82, Name: "Lost"}}}, "")
		case "/v1/auth/logout":
			writeEnvelope(w, http.StatusOK, nil, "")
		}
	})
	c := New(fs.server.URL, time.Second)

	res, err := c.Login(context.Background(), model.LoginReq{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "refresh-1", res.RefreshToken)
	require.Equal(t, "access-1", c.Token())

	var sent model.LoginReq
	require.NoError(t, json.Unmarshal(fs.last().Body, &sent))
	require.Equal(t, "a@b.com", sent.Email)

	entries, err := c.Watchlist(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int64(82), entries[0].ShowId)
	require.Equal(t, "Bearer access-1", fs.last().Authorization)

	require.NoError(t, c.Logout(context.Background()))
	require.Equal(t, "", c.Token())
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "Playlist not found")
	})
	c := New(fs.server.URL, time.Second)

	_, err := c.PlaylistItems(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "Playlist not found", apiErr.Message)
	require.Equal(t, "/v1/playlists/missing/items", fs.last().Path)
}

func TestDiscoverQuery(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, catalog.Batch{Shows: []catalog.Show{{Id: 1}}, NextPage: 8}, "")
	})
	c := New(fs.server.URL, time.Second)

	batch, err := c.Discover(context.Background(), 7, []string{"Drama", "Comedy"})
	require.NoError(t, err)
	require.Equal(t, 8, batch.NextPage)
	require.Equal(t, "genres=Drama%2CComedy&page=7", fs.last().RawQuery)

	_, err = c.Discover(context.Background(), -1, nil)
	require.NoError(t, err)
	require.Equal(t, "", fs.last().RawQuery)
}

func TestBlankSearchSkipsNetwork(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []catalog.Show{{Id: 5, Name: "Dark"}}, "")
	})
	c := New(fs.server.URL, time.Second)

	shows, err := c.Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Empty(t, shows)
	require.Equal(t, 0, fs.count())

	shows, err = c.Search(context.Background(), "dark")
	require.NoError(t, err)
	require.Len(t, shows, 1)
	require.Equal(t, "q=dark", fs.last().RawQuery)
}

func TestCanceledContext(t *testing.T) {
	fs := newFakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, nil, "")
	})
	c := New(fs.server.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ShowStatus(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, fs.count())
}
