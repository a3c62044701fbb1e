package usecase

import (
	"context"
	"testing"
	"time"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var fixedNow = time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)

func newTestAppointmentUsecase(catalog DoctorSnapshotter) AppointmentUsecase {
	return NewAppointmentUsecase(newTestLogger(), catalog, func() time.Time { return fixedNow })
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()
	u := newTestAppointmentUsecase(readyCatalog(testDoctors()...))

	t.Run("Confirms Booking", func(t *testing.T) {
		got, err := u.BookAppointment(ctx, &dto.BookAppointmentRequest{
			DoctorID: "anita",
			Date:     "2026-10-22",
			TimeSlot: "09:30 AM",
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, "anita", got.DoctorID)
		assert.Equal(t, "2026-10-22", got.Date)
		assert.Equal(t, "Appointment booked with Dr. Anita Rao for October 22nd, 2026 at 09:30 AM", got.Message)
	})

	t.Run("Today Is Bookable", func(t *testing.T) {
		got, err := u.BookAppointment(ctx, &dto.BookAppointmentRequest{
			DoctorID: "priya",
			Date:     "2026-10-14",
			TimeSlot: "04:30 PM",
		})
		require.NoError(t, err)
		assert.Equal(t, "Appointment booked with Dr. Priya Nair for October 14th, 2026 at 04:30 PM", got.Message)
	})

	t.Run("Rejections", func(t *testing.T) {
		cases := []struct {
			name string
			req  dto.BookAppointmentRequest
			want error
		}{
			{"Past Date", dto.BookAppointmentRequest{DoctorID: "anita", Date: "2026-10-13", TimeSlot: "09:00 AM"}, ErrAppointmentInPast},
			{"Sunday", dto.BookAppointmentRequest{DoctorID: "anita", Date: "2026-10-18", TimeSlot: "09:00 AM"}, ErrClinicClosed},
			{"Unknown Slot", dto.BookAppointmentRequest{DoctorID: "anita", Date: "2026-10-15", TimeSlot: "01:00 PM"}, ErrInvalidTimeSlot},
			{"Bad Date", dto.BookAppointmentRequest{DoctorID: "anita", Date: "15/10/2026", TimeSlot: "09:00 AM"}, ErrInvalidAppointmentDate},
			{"Unknown Doctor", dto.BookAppointmentRequest{DoctorID: "nobody", Date: "2026-10-15", TimeSlot: "09:00 AM"}, ErrDoctorNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := u.BookAppointment(ctx, &tc.req)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("Catalog Unavailable", func(t *testing.T) {
		failed := newTestAppointmentUsecase(&stubCatalog{snapshot: service.Snapshot{Status: service.CatalogFailed}})
		_, err := failed.BookAppointment(ctx, &dto.BookAppointmentRequest{DoctorID: "anita", Date: "2026-10-15", TimeSlot: "09:00 AM"})
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})
}

func TestLongDate(t *testing.T) {
	cases := map[string]string{
		"2026-01-01": "January 1st, 2026",
		"2026-01-02": "January 2nd, 2026",
		"2026-01-03": "January 3rd, 2026",
		"2026-01-11": "January 11th, 2026",
		"2026-01-12": "January 12th, 2026",
		"2026-01-13": "January 13th, 2026",
		"2026-01-21": "January 21st, 2026",
		"2026-01-22": "January 22nd, 2026",
		"2026-01-23": "January 23rd, 2026",
		"2026-01-30": "January 30th, 2026",
	}
	for in, want := range cases {
		d, err := time.Parse("2006-01-02", in)
		require.NoError(t, err)
		assert.Equal(t, want, longDate(d))
	}
}

func TestTimeSlots(t *testing.T) {
	got := newTestAppointmentUsecase(readyCatalog()).GetTimeSlots(context.Background())
	assert.Len(t, got.TimeSlots, 12)
	assert.Equal(t, "Sunday", got.ClosedWeekday)
}
