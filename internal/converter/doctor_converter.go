package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/filter"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// Parsed fee and experience values are nil when the text holds no number.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:                 doctor.ID,
		Name:               doctor.Name,
		NameInitials:       doctor.NameInitials,
		Photo:              doctor.Photo,
		DoctorIntroduction: doctor.DoctorIntroduction,
		Specialities:       doctor.SpecialtyNames(),
		Fees:               doctor.Fees,
		Experience:         doctor.Experience,
		Languages:          doctor.Languages,
		Clinic: dto.ClinicResponse{
			Name:         doctor.Clinic.Name,
			Locality:     doctor.Clinic.Address.Locality,
			City:         doctor.Clinic.Address.City,
			AddressLine1: doctor.Clinic.Address.AddressLine1,
			Location:     doctor.Clinic.Address.Location,
			LogoURL:      doctor.Clinic.Address.LogoURL,
		},
		VideoConsult: doctor.VideoConsult,
		InClinic:     doctor.InClinic,
	}

	if amount, ok := filter.FeeAmount(doctor.Fees); ok {
		response.FeeAmount = &amount
	}
	if years, ok := filter.ExperienceYears(doctor.Experience); ok {
		response.ExperienceYears = &years
	}
	if response.Languages == nil {
		response.Languages = []string{}
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
