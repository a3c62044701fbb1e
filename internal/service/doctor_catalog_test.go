package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	mu      sync.Mutex
	results []stubResult
	calls   int
	started chan struct{}
	block   chan struct{}
}

type stubResult struct {
	doctors []entity.Doctor
	err     error
}

func (s *stubRepository) FetchAll(ctx context.Context) ([]entity.Doctor, error) {
	if s.block != nil {
		close(s.started)
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.results[s.calls]
	s.calls++
	return r.doctors, r.err
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDoctorCatalog(t *testing.T) {
	t.Run("Starts Loading", func(t *testing.T) {
		catalog := NewDoctorCatalog(&stubRepository{}, newTestLogger())
		snap := catalog.Snapshot()
		assert.Equal(t, CatalogLoading, snap.Status)
		assert.Empty(t, snap.Doctors)
	})

	t.Run("Failure Then Retry", func(t *testing.T) {
		fetchErr := errors.New("connection refused")
		repo := &stubRepository{results: []stubResult{
			{err: fetchErr},
			{doctors: []entity.Doctor{{ID: "1", Name: "Dr. Anita Rao"}}},
		}}
		catalog := NewDoctorCatalog(repo, newTestLogger())

		err := catalog.Load(context.Background())
		assert.ErrorIs(t, err, fetchErr)
		snap := catalog.Snapshot()
		assert.Equal(t, CatalogFailed, snap.Status)
		assert.ErrorIs(t, snap.Err, fetchErr)

		require.NoError(t, catalog.Reload(context.Background()))
		snap = catalog.Snapshot()
		assert.Equal(t, CatalogReady, snap.Status)
		assert.NoError(t, snap.Err)
		assert.Len(t, snap.Doctors, 1)
		assert.False(t, snap.LoadedAt.IsZero())
		assert.Equal(t, 2, repo.calls)
	})

	t.Run("Concurrent Load Is Rejected", func(t *testing.T) {
		repo := &stubRepository{
			results: []stubResult{{doctors: []entity.Doctor{}}},
			started: make(chan struct{}),
			block:   make(chan struct{}),
		}
		catalog := NewDoctorCatalog(repo, newTestLogger())

		done := make(chan error)
		go func() { done <- catalog.Load(context.Background()) }()

		<-repo.started

		assert.ErrorIs(t, catalog.Reload(context.Background()), ErrLoadInProgress)

		close(repo.block)
		require.NoError(t, <-done)
		assert.Equal(t, CatalogReady, catalog.Snapshot().Status)
	})
}
