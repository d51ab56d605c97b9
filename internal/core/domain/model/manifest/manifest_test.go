package manifest_test

import (
	"testing"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

func newTestManifest(t *testing.T, stopCount int) *manifest.Manifest {
	t.Helper()

	stops := make([]*manifest.Stop, 0, stopCount)
	for i := 1; i <= stopCount; i++ {
		stop, err := manifest.NewStop(kernel.NewUUID(), kernel.NewUUID(), i)
		require.NoError(t, err)
		stops = append(stops, stop)
	}

	m, err := manifest.NewManifest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testNow, stops)
	require.NoError(t, err)
	return m
}

func TestNewManifest(t *testing.T) {
	t.Run("starts pending with normalized date", func(t *testing.T) {
		m := newTestManifest(t, 3)

		assert.Equal(t, manifest.StatusPending, m.Status())
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), m.Date())
		assert.Equal(t, 3, m.PendingCount())
	})

	t.Run("empty stop list is allowed", func(t *testing.T) {
		// A route with no template stops still yields a manifest; it can be
		// completed immediately.
		m := newTestManifest(t, 0)
		require.NoError(t, m.Complete())
		assert.Equal(t, manifest.StatusCompleted, m.Status())
	})
}

func TestManifest_MarkStop(t *testing.T) {
	t.Run("visited stamps the visit time once", func(t *testing.T) {
		m := newTestManifest(t, 2)
		stopID := m.Stops()[0].ID()

		stop, err := m.MarkStop(stopID, manifest.StopVisited, testNow)
		require.NoError(t, err)
		require.NotNil(t, stop.VisitedAt())
		assert.Equal(t, testNow, *stop.VisitedAt())
		assert.Equal(t, manifest.StatusInProgress, m.Status())

		// Re-marking is an overwrite, but the original timestamp stays.
		later := testNow.Add(2 * time.Hour)
		stop, err = m.MarkStop(stopID, manifest.StopVisited, later)
		require.NoError(t, err)
		assert.Equal(t, testNow, *stop.VisitedAt())
	})

	t.Run("skipped carries no timestamp", func(t *testing.T) {
		m := newTestManifest(t, 1)
		stop, err := m.MarkStop(m.Stops()[0].ID(), manifest.StopSkipped, testNow)

		require.NoError(t, err)
		assert.Nil(t, stop.VisitedAt())
		assert.Equal(t, manifest.StopSkipped, stop.Status())
	})

	t.Run("unknown stop", func(t *testing.T) {
		m := newTestManifest(t, 1)
		_, err := m.MarkStop(kernel.NewUUID(), manifest.StopVisited, testNow)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("pending is not a mark target", func(t *testing.T) {
		m := newTestManifest(t, 1)
		_, err := m.MarkStop(m.Stops()[0].ID(), manifest.StopPending, testNow)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestManifest_Complete(t *testing.T) {
	t.Run("fails while stops are pending", func(t *testing.T) {
		m := newTestManifest(t, 3)
		_, err := m.MarkStop(m.Stops()[0].ID(), manifest.StopVisited, testNow)
		require.NoError(t, err)

		err = m.Complete()

		require.ErrorIs(t, err, manifest.ErrIncompleteStops)
		var incomplete *manifest.IncompleteStopsError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, 2, incomplete.Pending)
		assert.Equal(t, manifest.StatusInProgress, m.Status())
	})

	t.Run("succeeds the moment the last stop resolves", func(t *testing.T) {
		m := newTestManifest(t, 2)
		_, err := m.MarkStop(m.Stops()[0].ID(), manifest.StopVisited, testNow)
		require.NoError(t, err)
		_, err = m.MarkStop(m.Stops()[1].ID(), manifest.StopSkipped, testNow)
		require.NoError(t, err)

		require.NoError(t, m.Complete())
		assert.Equal(t, manifest.StatusCompleted, m.Status())
	})

	t.Run("completing twice is rejected", func(t *testing.T) {
		m := newTestManifest(t, 0)
		require.NoError(t, m.Complete())
		require.ErrorIs(t, m.Complete(), errs.ErrInvalidTransition)
	})
}

func TestManifest_HasStopAtPosition(t *testing.T) {
	m := newTestManifest(t, 2)

	assert.True(t, m.HasStopAtPosition(1))
	assert.True(t, m.HasStopAtPosition(2))
	assert.False(t, m.HasStopAtPosition(3))
}

func TestNewStop(t *testing.T) {
	_, err := manifest.NewStop(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
