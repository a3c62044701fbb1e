package filter

import (
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	t.Run("Set Search", func(t *testing.T) {
		next, err := Reduce(entity.FilterState{}, Action{Type: ActionSetSearch, Value: "ani"})
		require.NoError(t, err)
		assert.Equal(t, "ani", next.SearchTerm)

		next, err = Reduce(next, Action{Type: ActionSelectSuggestion, Value: "Dr. Anita Rao"})
		require.NoError(t, err)
		assert.Equal(t, "Dr. Anita Rao", next.SearchTerm)
	})

	t.Run("Toggle Mode", func(t *testing.T) {
		next, err := Reduce(entity.FilterState{}, Action{Type: ActionToggleMode, Value: "Video Consult"})
		require.NoError(t, err)
		assert.Equal(t, entity.ConsultationModeVideo, next.ConsultationMode)

		next, err = Reduce(next, Action{Type: ActionToggleMode, Value: "In Clinic"})
		require.NoError(t, err)
		assert.Equal(t, entity.ConsultationModeClinic, next.ConsultationMode)

		next, err = Reduce(next, Action{Type: ActionToggleMode, Value: "In Clinic"})
		require.NoError(t, err)
		assert.Equal(t, entity.ConsultationModeNone, next.ConsultationMode)
	})

	t.Run("Toggle Sort", func(t *testing.T) {
		next, err := Reduce(entity.FilterState{}, Action{Type: ActionToggleSort, Value: "fees"})
		require.NoError(t, err)
		assert.Equal(t, entity.SortFees, next.SortBy)

		next, err = Reduce(next, Action{Type: ActionToggleSort, Value: "fees"})
		require.NoError(t, err)
		assert.Equal(t, entity.SortNone, next.SortBy)
	})

	t.Run("Toggle Specialty Keeps Insertion Order", func(t *testing.T) {
		state := entity.FilterState{}
		for _, name := range []string{"Dentist", "Cardiologist", "Dermatologist"} {
			var err error
			state, err = Reduce(state, Action{Type: ActionToggleSpecialty, Value: name})
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"Dentist", "Cardiologist", "Dermatologist"}, state.Specialties)

		state, err := Reduce(state, Action{Type: ActionToggleSpecialty, Value: "Cardiologist"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Dentist", "Dermatologist"}, state.Specialties)
	})

	t.Run("Removing Last Specialty Restores Default", func(t *testing.T) {
		state := entity.FilterState{Specialties: []string{"Dentist"}}
		next, err := Reduce(state, Action{Type: ActionToggleSpecialty, Value: "Dentist"})
		require.NoError(t, err)
		assert.True(t, next.IsDefault())
	})

	t.Run("Input State Is Not Mutated", func(t *testing.T) {
		state := entity.FilterState{Specialties: []string{"Dentist", "Cardiologist"}}
		_, err := Reduce(state, Action{Type: ActionToggleSpecialty, Value: "Dentist"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Dentist", "Cardiologist"}, state.Specialties)
	})

	t.Run("Reset", func(t *testing.T) {
		state := entity.FilterState{
			SearchTerm:       "rao",
			ConsultationMode: entity.ConsultationModeVideo,
			Specialties:      []string{"Dentist"},
			SortBy:           entity.SortExperience,
		}
		next, err := Reduce(state, Action{Type: ActionReset})
		require.NoError(t, err)
		assert.True(t, next.IsDefault())
	})

	t.Run("Invalid Actions", func(t *testing.T) {
		state := entity.FilterState{SearchTerm: "rao"}

		next, err := Reduce(state, Action{Type: ActionToggleMode, Value: "Home Visit"})
		assert.ErrorIs(t, err, ErrInvalidConsultationMode)
		assert.Equal(t, state, next)

		_, err = Reduce(state, Action{Type: ActionToggleSort, Value: "rating"})
		assert.ErrorIs(t, err, ErrInvalidSortOption)

		_, err = Reduce(state, Action{Type: "zoom"})
		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}
