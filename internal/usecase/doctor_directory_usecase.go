package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrCatalogLoading     = errors.New("doctor information is still loading")
	ErrCatalogUnavailable = errors.New("doctor information is unavailable")
	ErrReloadInProgress   = errors.New("doctor reload already in progress")
	ErrInvalidFilterQuery = errors.New("invalid filter query")
)

type DoctorDirectoryUsecase interface {
	ListDoctors(ctx context.Context, state entity.FilterState) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetSuggestions(ctx context.Context, search string) (*dto.SuggestionListResponse, error)
	TransitionFilter(ctx context.Context, req *dto.FilterTransitionRequest) (*dto.FilterTransitionResponse, error)
	Reload(ctx context.Context) (*dto.CatalogStatusResponse, error)
}

// DoctorSnapshotter is the read side of service.DoctorCatalog
type DoctorSnapshotter interface {
	Snapshot() service.Snapshot
	Reload(ctx context.Context) error
}

type doctorDirectoryUsecase struct {
	log     *logrus.Logger
	catalog DoctorSnapshotter
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, catalog DoctorSnapshotter) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:     log,
		catalog: catalog,
	}
}

func (u *doctorDirectoryUsecase) ListDoctors(ctx context.Context, state entity.FilterState) (*dto.DoctorListResponse, error) {
	doctors, err := loadedDoctors(u.catalog)
	if err != nil {
		return nil, err
	}

	filtered := filter.FilterDoctors(doctors, state)
	u.log.WithFields(logrus.Fields{
		"query":   filter.EncodeQuery(state),
		"matched": len(filtered),
	}).Debug("Filtered doctors")

	return &dto.DoctorListResponse{
		Doctors:    converter.DoctorsToResponses(filtered),
		Total:      len(filtered),
		Empty:      len(filtered) == 0,
		Filters:    converter.FilterStateToResponse(state),
		Query:      filter.EncodeQuery(state),
		ResetQuery: filter.EncodeQuery(entity.FilterState{}),
	}, nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctors, err := loadedDoctors(u.catalog)
	if err != nil {
		return nil, err
	}

	doctor := findDoctor(doctors, doctorID)
	if doctor == nil {
		u.log.Warnf("Failed to find doctor: %+v", doctorID)
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	doctors, err := loadedDoctors(u.catalog)
	if err != nil {
		return nil, err
	}

	specialties := filter.UniqueSpecialties(doctors)
	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}

func (u *doctorDirectoryUsecase) GetSuggestions(ctx context.Context, search string) (*dto.SuggestionListResponse, error) {
	doctors, err := loadedDoctors(u.catalog)
	if err != nil {
		return nil, err
	}

	return &dto.SuggestionListResponse{
		Search:      search,
		Suggestions: filter.NameSuggestions(doctors, search),
	}, nil
}

// TransitionFilter needs no doctors, so it works while the catalog is down
func (u *doctorDirectoryUsecase) TransitionFilter(ctx context.Context, req *dto.FilterTransitionRequest) (*dto.FilterTransitionResponse, error) {
	state, err := filter.ParseQuery(req.Query)
	if err != nil {
		u.log.Warnf("Failed to parse filter query: %+v", err)
		return nil, ErrInvalidFilterQuery
	}

	next, err := filter.Reduce(state, converter.FilterActionFromRequest(req.Action))
	if err != nil {
		return nil, err
	}

	return &dto.FilterTransitionResponse{
		Filters: converter.FilterStateToResponse(next),
		Query:   filter.EncodeQuery(next),
	}, nil
}

func (u *doctorDirectoryUsecase) Reload(ctx context.Context) (*dto.CatalogStatusResponse, error) {
	if err := u.catalog.Reload(ctx); err != nil {
		if errors.Is(err, service.ErrLoadInProgress) {
			return nil, ErrReloadInProgress
		}
		u.log.Warnf("Failed to reload doctors: %+v", err)
		return nil, ErrCatalogUnavailable
	}

	snap := u.catalog.Snapshot()
	return &dto.CatalogStatusResponse{
		Status:   string(snap.Status),
		Total:    len(snap.Doctors),
		LoadedAt: snap.LoadedAt.UTC().Format(time.RFC3339),
	}, nil
}

// loadedDoctors returns the catalog's doctors or the error matching its state
func loadedDoctors(catalog DoctorSnapshotter) ([]entity.Doctor, error) {
	snap := catalog.Snapshot()
	switch snap.Status {
	case service.CatalogReady:
		return snap.Doctors, nil
	case service.CatalogFailed:
		return nil, ErrCatalogUnavailable
	default:
		return nil, ErrCatalogLoading
	}
}

func findDoctor(doctors []entity.Doctor, doctorID string) *entity.Doctor {
	for i := range doctors {
		if doctors[i].ID == doctorID {
			return &doctors[i]
		}
	}
	return nil
}
