package entity

// Doctor represents one practitioner record as published by the remote directory
type Doctor struct {
	ID                 string      `json:"id" validate:"required"`
	Name               string      `json:"name" validate:"required"`
	NameInitials       string      `json:"name_initials"`
	Photo              *string     `json:"photo"`
	DoctorIntroduction string      `json:"doctor_introduction"`
	Specialities       []Specialty `json:"specialities" validate:"dive"`
	Fees               string      `json:"fees"`
	Experience         string      `json:"experience"`
	Languages          []string    `json:"languages"`
	Clinic             Clinic      `json:"clinic"`
	VideoConsult       bool        `json:"video_consult"`
	InClinic           bool        `json:"in_clinic"`
}

type Specialty struct {
	Name string `json:"name" validate:"required"`
}

type Clinic struct {
	Name    string        `json:"name"`
	Address ClinicAddress `json:"address"`
}

type ClinicAddress struct {
	Locality     string `json:"locality"`
	City         string `json:"city"`
	AddressLine1 string `json:"address_line1"`
	Location     string `json:"location"`
	LogoURL      string `json:"logo_url"`
}

// HasSpecialty reports whether the doctor holds a specialty with exactly this name
func (d Doctor) HasSpecialty(name string) bool {
	for _, s := range d.Specialities {
		if s.Name == name {
			return true
		}
	}
	return false
}

// SpecialtyNames returns the specialty names in their published order
func (d Doctor) SpecialtyNames() []string {
	names := make([]string, len(d.Specialities))
	for i, s := range d.Specialities {
		names[i] = s.Name
	}
	return names
}
