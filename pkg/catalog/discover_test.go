package catalog

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePages struct {
	pages   map[int][]Show
	failAt  map[int]error
	fetched []int
}

func (f *fakePages) FetchPage(_ context.Context, page int) ([]Show, error) {
	f.fetched = append(f.fetched, page)
	if err, ok := f.failAt[page]; ok {
		return nil, err
	}
	shows, ok := f.pages[page]
	if !ok {
		return nil, ErrEndOfCatalog
	}
	return shows, nil
}

func pageOf(start int64, valid int, invalid int) []Show {
	var shows []Show
	for i := 0; i < valid; i++ {
		shows = append(shows, goodShow(start+int64(i)))
	}
	for i := 0; i < invalid; i++ {
		s := goodShow(start + int64(valid+i))
		s.Image = nil
		shows = append(shows, s)
	}
	return shows
}

func TestDiscoverAccumulatesUntilBatchSize(t *testing.T) {
	fetcher := &fakePages{pages: map[int][]Show{
		3: pageOf(100, 5, 10),
		4: pageOf(200, 5, 10),
		5: pageOf(300, 5, 10),
		6: pageOf(400, 5, 10),
	}}

	batch := Discover(context.Background(), fetcher, 3, DiscoverOptions{BatchSize: 12, MaxPages: 10, Filter: DefaultFilter()}, rand.New(rand.NewSource(1)))

	require.Len(t, batch.Shows, 15)
	require.Equal(t, 6, batch.NextPage)
	require.Equal(t, []int{3, 4, 5}, fetcher.fetched)
	for _, s := range batch.Shows {
		require.NotEmpty(t, s.Poster())
	}
}

func TestDiscoverStopsAtPageCeiling(t *testing.T) {
	pages := map[int][]Show{}
	for p := 0; p < 50; p++ {
		pages[p] = pageOf(int64(p*100), 1, 3)
	}
	fetcher := &fakePages{pages: pages}

	batch := Discover(context.Background(), fetcher, 0, DiscoverOptions{BatchSize: 12, MaxPages: 4, Filter: DefaultFilter()}, nil)

	require.Len(t, batch.Shows, 4)
	require.Len(t, fetcher.fetched, 4)
	require.Equal(t, 4, batch.NextPage)
}

func TestDiscoverEndOfCatalogReturnsAccumulated(t *testing.T) {
	fetcher := &fakePages{pages: map[int][]Show{
		7: pageOf(1, 3, 0),
	}}

	batch := Discover(context.Background(), fetcher, 7, DiscoverOptions{Filter: DefaultFilter()}, nil)

	require.Len(t, batch.Shows, 3)
	require.Equal(t, 8, batch.NextPage)
}

func TestDiscoverFailureKeepsPage(t *testing.T) {
	fetcher := &fakePages{
		pages:  map[int][]Show{0: pageOf(1, 2, 0)},
		failAt: map[int]error{1: errors.New("boom")},
	}

	batch := Discover(context.Background(), fetcher, 0, DiscoverOptions{Filter: DefaultFilter()}, nil)

	require.Len(t, batch.Shows, 2)
	require.Equal(t, 1, batch.NextPage)
}

func TestShuffleKeepsMembers(t *testing.T) {
	shows := pageOf(1, 20, 0)
	Shuffle(shows, rand.New(rand.NewSource(42)))

	seen := map[int64]bool{}
	for _, s := range shows {
		seen[s.Id] = true
	}
	require.Len(t, seen, 20)
}
