package records

import (
	"testing"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPatient_StampsRegistrationTime(t *testing.T) {
	s := NewStore()
	s.SetClock(func() time.Time { return testNow })

	patient, err := s.RegisterPatient(entity.Patient{ID: "P1", Name: "Alice Moore"})
	require.NoError(t, err)
	assert.Equal(t, testNow, patient.RegisteredAt)
}

func TestRegisterPatient_RejectsDuplicateID(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.RegisterPatient(entity.Patient{ID: "P1", Name: "Impostor"})
	assert.ErrorIs(t, err, ErrDuplicatePatient)

	// The original registration is untouched.
	patient, ok := s.FindPatient("P1")
	require.True(t, ok)
	assert.Equal(t, "Alice Moore", patient.Name)
}

func TestRegisterDoctor_RejectsDuplicateID(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.RegisterDoctor(entity.Doctor{ID: "D1", Name: "Impostor"})
	assert.ErrorIs(t, err, ErrDuplicateDoctor)
}

func TestAddMedicalHistory(t *testing.T) {
	s := newSeededStore(t)

	require.NoError(t, s.AddMedicalHistory("P1", "asthma"))
	require.NoError(t, s.AddMedicalHistory("P1", "penicillin allergy"))

	patient, ok := s.FindPatient("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"asthma", "penicillin allergy"}, patient.MedicalHistory)

	assert.ErrorIs(t, s.AddMedicalHistory("ghost", "x"), ErrUnknownPatient)
}

func TestAddPrescription_OwnedByPatient(t *testing.T) {
	s := newSeededStore(t)

	prescription, err := s.AddPrescription("P1", entity.Prescription{
		ID:             "rx-1",
		DoctorID:       "D1",
		PatientID:      "someone-else", // overwritten by the owning patient
		MedicationName: "amoxicillin",
		Dosage:         "500mg",
	})
	require.NoError(t, err)
	assert.Equal(t, "P1", prescription.PatientID)

	_, err = s.AddPrescription("ghost", entity.Prescription{ID: "rx-2"})
	assert.ErrorIs(t, err, ErrUnknownPatient)
}

func TestSetPrescriptionRefill_UnknownPrescription(t *testing.T) {
	s := newSeededStore(t)

	assert.ErrorIs(t, s.SetPrescriptionRefill("P1", "ghost", true), ErrUnknownPrescription)
	assert.ErrorIs(t, s.SetPrescriptionRefill("ghost", "rx", true), ErrUnknownPatient)
}

func TestMarkAppointmentCompleted(t *testing.T) {
	s := newSeededStore(t)

	appt, err := s.ScheduleAppointment("P1", "D1", "checkup", "2026-03-01 10:00")
	require.NoError(t, err)

	completed, err := s.MarkAppointmentCompleted(appt.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	// Completion is terminal; a second call is a no-op.
	again, err := s.MarkAppointmentCompleted(appt.ID)
	require.NoError(t, err)
	assert.True(t, again.Completed)

	_, err = s.MarkAppointmentCompleted("ghost")
	assert.ErrorIs(t, err, ErrUnknownAppointment)
}

func TestExportImport_RoundTripPreservesRecords(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.AddPrescription("P1", entity.Prescription{
		ID: "rx-1", DoctorID: "D1", MedicationName: "amoxicillin", Dosage: "500mg",
		StartDate: testNow, EndDate: testNow.AddDate(0, 1, 0), RefillNeeded: true,
	})
	require.NoError(t, err)
	require.NoError(t, s.AddMedicalHistory("P1", "asthma"))
	appt, err := s.ScheduleAppointment("P1", "D1", "checkup", "2026-03-01 10:00")
	require.NoError(t, err)

	restored := NewStore()
	restored.SetClock(func() time.Time { return testNow })
	restored.Import(s.Export())

	assert.Equal(t, s.Export(), restored.Export())

	patient, ok := restored.FindPatient("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"asthma"}, patient.MedicalHistory)
	assert.Len(t, restored.RefillDuePrescriptions(), 1)

	got, ok := restored.FindAppointment(appt.ID)
	require.True(t, ok)
	assert.True(t, got.IsUpcomingAt(testNow))
}

func TestExport_SnapshotIsolatedFromLaterWrites(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.AddPrescription("P1", entity.Prescription{
		ID: "rx-1", DoctorID: "D1", MedicationName: "amoxicillin", Dosage: "500mg",
	})
	require.NoError(t, err)
	require.NoError(t, s.AddMedicalHistory("P1", "asthma"))

	archive := s.Export()

	require.NoError(t, s.SetPrescriptionRefill("P1", "rx-1", true))
	require.NoError(t, s.AddMedicalHistory("P1", "penicillin allergy"))

	exported := archive.Patients["P1"]
	assert.False(t, exported.Prescriptions[0].RefillNeeded)
	assert.Equal(t, []string{"asthma"}, exported.MedicalHistory)
}

func TestImport_DoesNotAliasArchive(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.AddPrescription("P1", entity.Prescription{
		ID: "rx-1", DoctorID: "D1", MedicationName: "amoxicillin", Dosage: "500mg",
	})
	require.NoError(t, err)

	archive := s.Export()

	restored := NewStore()
	restored.Import(archive)
	require.NoError(t, restored.SetPrescriptionRefill("P1", "rx-1", true))

	assert.False(t, archive.Patients["P1"].Prescriptions[0].RefillNeeded)
}

func TestFindPatient_CopyDoesNotShareSlices(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.AddPrescription("P1", entity.Prescription{
		ID: "rx-1", DoctorID: "D1", MedicationName: "amoxicillin", Dosage: "500mg",
	})
	require.NoError(t, err)

	patient, ok := s.FindPatient("P1")
	require.True(t, ok)
	patient.Prescriptions[0].RefillNeeded = true
	patient.MedicalHistory = append(patient.MedicalHistory, "scribble")

	fresh, ok := s.FindPatient("P1")
	require.True(t, ok)
	assert.False(t, fresh.Prescriptions[0].RefillNeeded)
	assert.Empty(t, fresh.MedicalHistory)
}

func TestImport_EmptyArchiveResetsStore(t *testing.T) {
	s := newSeededStore(t)
	_, err := s.ScheduleAppointment("P1", "D1", "checkup", "2026-03-01 10:00")
	require.NoError(t, err)

	s.Import(Archive{})

	assert.Empty(t, s.Patients())
	assert.Empty(t, s.Doctors())
	assert.Empty(t, s.Export().Appointments)
}
