package records

import (
	"errors"
	"strconv"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
)

var (
	ErrUnknownPatient     = errors.New("patient not found")
	ErrUnknownDoctor      = errors.New("doctor not found")
	ErrMalformedDatetime  = errors.New("invalid datetime, use yyyy-MM-dd HH:mm")
	ErrDoctorUnavailable  = errors.New("doctor already has an appointment at that time")
	ErrPatientUnavailable = errors.New("patient already has an appointment at that time")
	ErrPastDatetime       = errors.New("appointments can only be scheduled for the future")
)

// ScheduleAppointment validates a proposed (patient, doctor, datetime) triple
// and, if every check passes, allocates an identifier and commits the new
// appointment. The checks run in a fixed order and short-circuit on the first
// failure:
//
//  1. patient exists
//  2. doctor exists
//  3. datetime parses against entity.DatetimeLayout
//  4. the doctor is free at that exact minute
//  5. the patient is free at that exact minute
//  6. the datetime is strictly in the future
//
// Validation and commit happen under one write lock, so no concurrent call
// can slip a conflicting appointment in between the checks and the insert.
// On any failure the store is left untouched.
func (s *Store) ScheduleAppointment(patientID, doctorID, reason, rawDatetime string) (entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[patientID]; !ok {
		return entity.Appointment{}, ErrUnknownPatient
	}
	if _, ok := s.doctors[doctorID]; !ok {
		return entity.Appointment{}, ErrUnknownDoctor
	}

	at, err := time.Parse(entity.DatetimeLayout, rawDatetime)
	if err != nil {
		return entity.Appointment{}, ErrMalformedDatetime
	}

	// Conflicts are exact-minute equality on either constraint dimension.
	// Appointments one minute apart never collide.
	for _, appt := range s.appointments {
		if appt.DoctorID == doctorID && appt.Datetime.Equal(at) {
			return entity.Appointment{}, ErrDoctorUnavailable
		}
	}
	for _, appt := range s.appointments {
		if appt.PatientID == patientID && appt.Datetime.Equal(at) {
			return entity.Appointment{}, ErrPatientUnavailable
		}
	}

	if !at.After(s.now()) {
		return entity.Appointment{}, ErrPastDatetime
	}

	appt := &entity.Appointment{
		ID:        s.allocateAppointmentID(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Reason:    reason,
		Datetime:  at,
	}
	s.appointments[appt.ID] = appt
	return *appt, nil
}

// allocateAppointmentID returns the next unused appointment identifier,
// smallest-first. The counter only moves forward, so an ID is never handed
// out twice even if earlier appointments were imported with arbitrary keys.
// Caller must hold the write lock.
func (s *Store) allocateAppointmentID() string {
	for {
		id := strconv.Itoa(s.nextAppointmentID)
		s.nextAppointmentID++
		if _, taken := s.appointments[id]; !taken {
			return id
		}
	}
}
