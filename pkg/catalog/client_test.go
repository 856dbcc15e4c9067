package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hits *int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/shows", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		if r.URL.Query().Get("page") == "999" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Under the Dome","type":"Scripted","language":"English","premiered":"2013-06-24","rating":{"average":6.5},"weight":98,"image":{"medium":"m.jpg","original":"o.jpg"}},{"id":2,"name":"Old","type":"Scripted","language":"English","premiered":"1990-01-01","rating":{"average":null},"weight":3,"image":null}]`))
	})
	mux.HandleFunc("/search/shows", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		if r.URL.Query().Get("q") != "the office" {
			http.Error(w, "unexpected query", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`[{"score":0.9,"show":{"id":526,"name":"The Office"}},{"score":0.5,"show":{"id":1,"name":"Other"}}]`))
	})
	mux.HandleFunc("/shows/82", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		if embeds := r.URL.Query()["embed[]"]; len(embeds) != 2 || embeds[0] != "episodes" || embeds[1] != "cast" {
			http.Error(w, "missing embeds", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"id":82,"name":"Game of Thrones","_embedded":{"episodes":[{"id":2,"season":2,"number":1},{"id":1,"season":1,"number":1}],"cast":[{"person":{"id":14,"name":"Peter Dinklage"},"character":{"id":1,"name":"Tyrion"}}]}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetchPage(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, time.Second)

	shows, err := c.FetchPage(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, shows, 2)
	require.Equal(t, "m.jpg", shows[0].Poster())
	require.Equal(t, 2013, shows[0].Year())
	require.Equal(t, 6.5, shows[0].AverageRating())
	require.Equal(t, 0.0, shows[1].AverageRating())
}

func TestClientFetchPagePastEnd(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, time.Second)

	_, err := c.FetchPage(context.Background(), 999)
	require.ErrorIs(t, err, ErrEndOfCatalog)
}

func TestClientSearch(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, time.Second)

	shows, err := c.Search(context.Background(), "  the office ")
	require.NoError(t, err)
	require.Len(t, shows, 2)
	require.Equal(t, int64(526), shows[0].Id)
}

func TestClientEmptySearchSkipsNetwork(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, time.Second)

	shows, err := c.Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Empty(t, shows)
	require.Equal(t, int64(0), atomic.LoadInt64(&hits))
}

func TestClientShowDetail(t *testing.T) {
	var hits int64
	srv := newTestServer(t, &hits)
	c := NewClient(srv.URL, time.Second)

	detail, err := c.Show(context.Background(), 82)
	require.NoError(t, err)
	require.Equal(t, "Game of Thrones", detail.Name)
	require.Len(t, detail.Seasons, 2)
	require.Equal(t, 1, detail.Seasons[0].Number)
	require.Len(t, detail.Cast, 1)
	require.Nil(t, detail.Embedded)

	_, err = c.Show(context.Background(), 83)
	require.ErrorIs(t, err, ErrShowNotFound)
}
