package client

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type callRecorder struct {
	mux    sync.Mutex
	values []string
}

func (r *callRecorder) record(value string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.values = append(r.values, value)
}

func (r *callRecorder) get() []string {
	r.mux.Lock()
	defer r.mux.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncerLastValueWins(t *testing.T) {
	recorder := &callRecorder{}
	d := NewDebouncer(30*time.Millisecond, recorder.record)

	d.Trigger("b")
	d.Trigger("br")
	d.Trigger("bre")

	require.Eventually(t, func() bool { return len(recorder.get()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, []string{"bre"}, recorder.get())
}

func TestDebouncerStopDropsPendingCall(t *testing.T) {
	recorder := &callRecorder{}
	d := NewDebouncer(20*time.Millisecond, recorder.record)

	d.Trigger("lost")
	d.Stop()
	time.Sleep(60 * time.Millisecond)
	require.Empty(t, recorder.get())
}

func TestDebouncerDefaultWait(t *testing.T) {
	d := NewDebouncer(0, func(string) {})
	require.Equal(t, DefaultDebounceWait, d.wait)
}
