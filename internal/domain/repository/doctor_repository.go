package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

// DoctorRepository reads the published doctor list
type DoctorRepository interface {
	FetchAll(ctx context.Context) ([]entity.Doctor, error)
}
