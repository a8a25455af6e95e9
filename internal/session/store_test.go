package session

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/mock"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T, idle time.Duration) (*Store, *time.Time) {
	t.Helper()
	api := mock.NewMockRecordsAPI(gomock.NewController(t))

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewStore(func() *view.RecordSearchView {
		return view.NewRecordSearchView(api, view.Options{})
	}, idle, logger.Nop())
	s.now = func() time.Time { return now }

	return s, &now
}

func TestStore_GetCreatesOncePerSession(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)

	a := s.Get("a")
	assert.Same(t, a, s.Get("a"))
	assert.NotSame(t, a, s.Get("b"))
	assert.Equal(t, 2, s.Len())
}

func TestStore_MaxSessionsEvictsLeastRecentlyUsed(t *testing.T) {
	s, now := newTestStore(t, time.Hour)
	WithMaxSessions(2)(s)

	a := s.Get("a")
	*now = now.Add(time.Second)
	s.Get("b")
	*now = now.Add(time.Second)
	assert.Same(t, a, s.Get("a"), "touching a makes b the oldest")
	*now = now.Add(time.Second)

	s.Get("c")

	assert.Equal(t, 2, s.Len())
	assert.Contains(t, s.sessions, "a")
	assert.Contains(t, s.sessions, "c")
	assert.NotContains(t, s.sessions, "b")
}

func TestStore_NoCapByDefault(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		s.Get(id)
	}
	assert.Equal(t, 5, s.Len())
}

func TestStore_Remove(t *testing.T) {
	s, _ := newTestStore(t, time.Minute)
	first := s.Get("a")

	s.Remove("a")
	s.Remove("unknown")

	assert.Zero(t, s.Len())
	assert.NotSame(t, first, s.Get("a"))
}

func TestStore_Sweep(t *testing.T) {
	s, now := newTestStore(t, 30*time.Minute)

	s.Get("old")
	*now = now.Add(20 * time.Minute)
	s.Get("fresh")

	assert.Zero(t, s.Sweep(now.Add(10*time.Minute)), "exactly at the timeout is still alive")
	assert.Equal(t, 1, s.Sweep(now.Add(11*time.Minute)))
	assert.Equal(t, 1, s.Len())

	*now = now.Add(11 * time.Minute)
	s.Get("fresh")
	assert.Zero(t, s.Sweep(*now))
}
