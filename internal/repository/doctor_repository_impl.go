package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"
	"doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrUnexpectedStatus = errors.New("unexpected status from doctor source")

type doctorRepository struct {
	client    *http.Client
	url       string
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewDoctorRepository(client *http.Client, url string, validator *validator.CustomValidator, log *logrus.Logger) domainRepo.DoctorRepository {
	return &doctorRepository{
		client:    client,
		url:       url,
		validator: validator,
		log:       log,
	}
}

// FetchAll performs one GET against the source. Records that fail validation
// or repeat an earlier id are skipped.
func (r *doctorRepository) FetchAll(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build doctor request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch doctors: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var records []entity.Doctor
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}

	doctors := make([]entity.Doctor, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, record := range records {
		if err := r.validator.Validate(&record); err != nil {
			r.log.WithField("index", i).Warnf("Skipping invalid doctor record: %v", r.validator.FormatValidationErrors(err))
			continue
		}
		if _, ok := seen[record.ID]; ok {
			r.log.WithField("id", record.ID).Warn("Skipping duplicate doctor record")
			continue
		}
		seen[record.ID] = struct{}{}

		if record.Specialities == nil {
			record.Specialities = []entity.Specialty{}
		}
		if record.Languages == nil {
			record.Languages = []string{}
		}
		doctors = append(doctors, record)
	}

	r.log.Debugf("Fetched %d doctors (%d skipped)", len(doctors), len(records)-len(doctors))
	return doctors, nil
}
