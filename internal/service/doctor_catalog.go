package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// =============================================================================
// Types
// =============================================================================

// CatalogStatus is the load state of the doctor list
type CatalogStatus string

const (
	CatalogLoading CatalogStatus = "loading"
	CatalogReady   CatalogStatus = "ready"
	CatalogFailed  CatalogStatus = "failed"
)

// ErrLoadInProgress is returned when a load is requested while another runs
var ErrLoadInProgress = errors.New("doctor catalog load already in progress")

// Snapshot is a read-only view of the catalog at one point in time.
// Doctors must not be modified by callers.
type Snapshot struct {
	Doctors  []entity.Doctor
	Status   CatalogStatus
	Err      error
	LoadedAt time.Time
}

// DoctorCatalog holds the doctor list fetched once from the source.
//
// Loads run one at a time: a retry while a fetch is in flight is rejected
// rather than queued. Readers never block on a fetch.
type DoctorCatalog struct {
	repo repository.DoctorRepository
	log  *logrus.Logger

	loadMu sync.Mutex

	mu       sync.RWMutex
	doctors  []entity.Doctor
	status   CatalogStatus
	err      error
	loadedAt time.Time
}

// =============================================================================
// Constructor
// =============================================================================

func NewDoctorCatalog(repo repository.DoctorRepository, log *logrus.Logger) *DoctorCatalog {
	return &DoctorCatalog{
		repo:   repo,
		log:    log,
		status: CatalogLoading,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Load fetches the doctor list and replaces the snapshot. On failure the
// previous doctors are dropped and the catalog reports CatalogFailed.
func (c *DoctorCatalog) Load(ctx context.Context) error {
	if !c.loadMu.TryLock() {
		return ErrLoadInProgress
	}
	defer c.loadMu.Unlock()

	c.setStatus(CatalogLoading)
	startTime := time.Now()

	doctors, err := c.repo.FetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.doctors = nil
		c.status = CatalogFailed
		c.err = err
		c.log.Errorf("Failed to load doctors: %+v", err)
		return err
	}

	c.doctors = doctors
	c.status = CatalogReady
	c.err = nil
	c.loadedAt = time.Now()
	c.log.Infof("Doctor catalog loaded: %d doctors in %v", len(doctors), time.Since(startTime))
	return nil
}

// Reload is the user-initiated retry of Load
func (c *DoctorCatalog) Reload(ctx context.Context) error {
	c.log.Info("Reloading doctor catalog...")
	return c.Load(ctx)
}

// Snapshot returns the current doctors and load state
func (c *DoctorCatalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Doctors:  c.doctors,
		Status:   c.status,
		Err:      c.err,
		LoadedAt: c.loadedAt,
	}
}

// =============================================================================
// Private Helper Methods
// =============================================================================

func (c *DoctorCatalog) setStatus(status CatalogStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}
