package records

import (
	"testing"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverdueAppointments_MissedVisit(t *testing.T) {
	s := newSeededStore(t)

	appt, err := s.ScheduleAppointment("P1", "D1", "checkup", "2026-03-01 10:00")
	require.NoError(t, err)

	// The day after the visit, never marked completed.
	s.SetClock(func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) })

	overdue := s.OverdueAppointments()
	require.Len(t, overdue, 1)
	assert.Equal(t, appt.ID, overdue[0].ID)
	assert.Empty(t, s.UpcomingAppointments())
}

func TestOverdueAppointments_CompletedVisitIsNotOverdue(t *testing.T) {
	s := newSeededStore(t)

	appt, err := s.ScheduleAppointment("P1", "D1", "checkup", "2026-03-01 10:00")
	require.NoError(t, err)
	_, err = s.MarkAppointmentCompleted(appt.ID)
	require.NoError(t, err)

	s.SetClock(func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) })

	assert.Empty(t, s.OverdueAppointments())
}

func TestUpcomingAppointments_SortedAndIdempotent(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.ScheduleAppointment("P1", "D1", "later", "2026-05-01 10:00")
	require.NoError(t, err)
	_, err = s.ScheduleAppointment("P1", "D1", "sooner", "2026-04-01 10:00")
	require.NoError(t, err)

	first := s.UpcomingAppointments()
	second := s.UpcomingAppointments()
	assert.Equal(t, first, second)

	require.Len(t, first, 2)
	assert.Equal(t, "sooner", first[0].Reason)
	assert.Equal(t, "later", first[1].Reason)
}

func TestAppointmentsForUnknownIdentifiersAreEmpty(t *testing.T) {
	s := newSeededStore(t)

	assert.Empty(t, s.AppointmentsForPatient("ghost"))
	assert.Empty(t, s.AppointmentsForDoctor("ghost"))
	assert.Empty(t, s.PrescriptionsForPatient("ghost"))
}

func TestAppointmentsForPatientAndDoctor_ExactMatch(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.RegisterPatient(entity.Patient{ID: "P2", Name: "Bob Tan"})
	require.NoError(t, err)
	_, err = s.RegisterDoctor(entity.Doctor{ID: "D2", Name: "Dr. Okafor", Specialization: "Dermatology"})
	require.NoError(t, err)

	_, err = s.ScheduleAppointment("P1", "D1", "a", "2026-03-01 10:00")
	require.NoError(t, err)
	_, err = s.ScheduleAppointment("P2", "D1", "b", "2026-03-01 11:00")
	require.NoError(t, err)
	_, err = s.ScheduleAppointment("P2", "D2", "c", "2026-03-01 12:00")
	require.NoError(t, err)

	assert.Len(t, s.AppointmentsForPatient("P1"), 1)
	assert.Len(t, s.AppointmentsForPatient("P2"), 2)
	assert.Len(t, s.AppointmentsForDoctor("D1"), 2)
	assert.Len(t, s.AppointmentsForDoctor("D2"), 1)
}

func TestPrescriptionsForPatient_InsertionOrder(t *testing.T) {
	s := newSeededStore(t)

	for _, name := range []string{"amoxicillin", "ibuprofen", "lisinopril"} {
		_, err := s.AddPrescription("P1", entity.Prescription{
			ID:             name,
			DoctorID:       "D1",
			MedicationName: name,
			StartDate:      testNow,
			EndDate:        testNow.AddDate(0, 1, 0),
		})
		require.NoError(t, err)
	}

	prescriptions := s.PrescriptionsForPatient("P1")
	require.Len(t, prescriptions, 3)
	assert.Equal(t, "amoxicillin", prescriptions[0].MedicationName)
	assert.Equal(t, "ibuprofen", prescriptions[1].MedicationName)
	assert.Equal(t, "lisinopril", prescriptions[2].MedicationName)
}

func TestExpiredPrescriptions_EndDateHasPassed(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddPrescription("P1", entity.Prescription{
		ID:             "rx-old",
		MedicationName: "amoxicillin",
		StartDate:      testNow.AddDate(0, -2, 0),
		EndDate:        testNow.AddDate(0, -1, 0),
	})
	require.NoError(t, err)
	_, err = s.AddPrescription("P1", entity.Prescription{
		ID:             "rx-active",
		MedicationName: "lisinopril",
		StartDate:      testNow,
		EndDate:        testNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	expired := s.ExpiredPrescriptions()
	require.Len(t, expired, 1)
	assert.Equal(t, "rx-old", expired[0].ID)
}

func TestRefillDuePrescriptions_FlagOnly(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.RegisterPatient(entity.Patient{ID: "P2", Name: "Bob Tan"})
	require.NoError(t, err)

	// Flagged even though the date range is still open.
	_, err = s.AddPrescription("P1", entity.Prescription{
		ID: "rx-1", MedicationName: "metformin", EndDate: testNow.AddDate(0, 1, 0), RefillNeeded: true,
	})
	require.NoError(t, err)
	_, err = s.AddPrescription("P2", entity.Prescription{
		ID: "rx-2", MedicationName: "ibuprofen", EndDate: testNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	due := s.RefillDuePrescriptions()
	require.Len(t, due, 1)
	assert.Equal(t, "rx-1", due[0].ID)

	require.NoError(t, s.SetPrescriptionRefill("P2", "rx-2", true))
	assert.Len(t, s.RefillDuePrescriptions(), 2)
}

func TestDoctorWorkloadSummary_SinglePassCounts(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.RegisterDoctor(entity.Doctor{ID: "D2", Name: "Dr. Okafor", Specialization: "Dermatology"})
	require.NoError(t, err)
	_, err = s.RegisterDoctor(entity.Doctor{ID: "D3", Name: "Dr. Silva", Specialization: "Neurology"})
	require.NoError(t, err)

	_, err = s.ScheduleAppointment("P1", "D1", "a", "2026-03-01 10:00")
	require.NoError(t, err)
	_, err = s.ScheduleAppointment("P1", "D1", "b", "2026-03-01 11:00")
	require.NoError(t, err)
	_, err = s.ScheduleAppointment("P1", "D2", "c", "2026-03-01 12:00")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"D1": 2, "D2": 1, "D3": 0}, s.DoctorWorkloadSummary())
}

func TestPatientVisitSummary_FreshCountPerPatient(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.RegisterPatient(entity.Patient{ID: "P2", Name: "Bob Tan"})
	require.NoError(t, err)

	_, err = s.ScheduleAppointment("P1", "D1", "a", "2026-03-01 10:00")
	require.NoError(t, err)
	_, err = s.ScheduleAppointment("P2", "D1", "b", "2026-03-01 11:00")
	require.NoError(t, err)

	// One visit each; the counts must not accumulate across patients.
	assert.Equal(t, map[string]int{"P1": 1, "P2": 1}, s.PatientVisitSummary())
}

func TestQueriesDoNotMutate(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.ScheduleAppointment("P1", "D1", "a", "2026-03-01 10:00")
	require.NoError(t, err)

	before := s.Export()
	s.UpcomingAppointments()
	s.OverdueAppointments()
	s.DoctorWorkloadSummary()
	s.PatientVisitSummary()
	s.ExpiredPrescriptions()
	s.RefillDuePrescriptions()
	assert.Equal(t, before, s.Export())
}
