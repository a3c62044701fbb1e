package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

type stubCatalog struct {
	snapshot  service.Snapshot
	reloadErr error
	reloads   int
}

func (s *stubCatalog) Snapshot() service.Snapshot {
	return s.snapshot
}

func (s *stubCatalog) Reload(ctx context.Context) error {
	s.reloads++
	if s.reloadErr != nil {
		s.snapshot = service.Snapshot{Status: service.CatalogFailed, Err: s.reloadErr}
		return s.reloadErr
	}
	s.snapshot.Status = service.CatalogReady
	s.snapshot.LoadedAt = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	return nil
}

func readyCatalog(doctors ...entity.Doctor) *stubCatalog {
	return &stubCatalog{snapshot: service.Snapshot{Doctors: doctors, Status: service.CatalogReady}}
}

func testDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:           "anita",
			Name:         "Dr. Anita Rao",
			Fees:         "₹500",
			Experience:   "13 Years",
			VideoConsult: true,
			Specialities: []entity.Specialty{{Name: "Dermatologist"}},
		},
		{
			ID:           "vikram",
			Name:         "Dr. Vikram Shah",
			Fees:         "₹1000",
			Experience:   "5 Years",
			InClinic:     true,
			Specialities: []entity.Specialty{{Name: "Cardiologist"}},
		},
		{
			ID:       "priya",
			Name:     "Priya Nair",
			Fees:     "₹800",
			InClinic: true,
		},
	}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var errFetch = errors.New("dial tcp: connection refused")
