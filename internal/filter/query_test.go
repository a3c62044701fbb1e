package filter

import (
	"net/url"
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("Default State Omits Every Key", func(t *testing.T) {
		assert.Empty(t, Encode(entity.FilterState{}))
		assert.Equal(t, "", EncodeQuery(entity.FilterState{}))
	})

	t.Run("Only Non Default Keys", func(t *testing.T) {
		values := Encode(entity.FilterState{SortBy: entity.SortExperience})
		assert.Equal(t, url.Values{ParamSort: {"experience"}}, values)
	})

	t.Run("Specialties Are Comma Joined", func(t *testing.T) {
		values := Encode(entity.FilterState{Specialties: []string{"Dentist", "Cardiologist"}})
		assert.Equal(t, "Dentist,Cardiologist", values.Get(ParamSpecialties))
	})

	t.Run("Query String", func(t *testing.T) {
		got := EncodeQuery(entity.FilterState{
			SearchTerm:       "rao",
			ConsultationMode: entity.ConsultationModeVideo,
		})
		assert.Equal(t, "mode=Video+Consult&search=rao", got)
	})
}

func TestDecode(t *testing.T) {
	t.Run("Missing Keys Use Defaults", func(t *testing.T) {
		assert.True(t, Decode(url.Values{}).IsDefault())
	})

	t.Run("Invalid Enums Fall Back To None", func(t *testing.T) {
		state := Decode(url.Values{ParamMode: {"Home Visit"}, ParamSort: {"rating"}})
		assert.Equal(t, entity.ConsultationModeNone, state.ConsultationMode)
		assert.Equal(t, entity.SortNone, state.SortBy)
	})

	t.Run("Specialties Drop Empty Segments And Repeats", func(t *testing.T) {
		state := Decode(url.Values{ParamSpecialties: {"Dentist,,Cardiologist,Dentist,"}})
		assert.Equal(t, []string{"Dentist", "Cardiologist"}, state.Specialties)
	})

	t.Run("Empty Specialties Value", func(t *testing.T) {
		state := Decode(url.Values{ParamSpecialties: {""}})
		assert.Empty(t, state.Specialties)
	})
}

func TestParseQuery(t *testing.T) {
	t.Run("Leading Question Mark", func(t *testing.T) {
		state, err := ParseQuery("?search=anita&sort=fees")
		require.NoError(t, err)
		assert.Equal(t, entity.FilterState{SearchTerm: "anita", SortBy: entity.SortFees}, state)
	})

	t.Run("Malformed Query", func(t *testing.T) {
		_, err := ParseQuery("search=%zz")
		assert.Error(t, err)
	})
}

func TestQueryRoundTrip(t *testing.T) {
	states := []entity.FilterState{
		{SearchTerm: "Dr. Anita Rao"},
		{ConsultationMode: entity.ConsultationModeClinic},
		{Specialties: []string{"General Physician", "Dentist"}},
		{SortBy: entity.SortFees},
		{
			SearchTerm:       "a&b=c",
			ConsultationMode: entity.ConsultationModeVideo,
			Specialties:      []string{"Ear-Nose-Throat (ENT) Specialist"},
			SortBy:           entity.SortExperience,
		},
	}

	for _, state := range states {
		got, err := ParseQuery(EncodeQuery(state))
		require.NoError(t, err)
		assert.Equal(t, state, got)
	}
}
