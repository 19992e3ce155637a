package entity

import "time"

// DatetimeLayout is the fixed minute-granularity layout used for appointment
// and prescription datetimes throughout the system (yyyy-MM-dd HH:mm).
const DatetimeLayout = "2006-01-02 15:04"

// Appointment links a patient and a doctor at an exact minute.
// The identifier is system-generated; Completed is the only field
// that changes after creation.
type Appointment struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctor_id"`
	PatientID string    `json:"patient_id"`
	Reason    string    `json:"reason"`
	Datetime  time.Time `json:"datetime"`
	Completed bool      `json:"completed"`
}

// IsUpcomingAt reports whether the appointment is still ahead of the given time.
func (a *Appointment) IsUpcomingAt(now time.Time) bool {
	return a.Datetime.After(now)
}

// IsOverdueAt reports whether the scheduled time has passed without the
// appointment being marked completed.
func (a *Appointment) IsOverdueAt(now time.Time) bool {
	return !a.Completed && a.Datetime.Before(now)
}

// MarkCompleted flips the appointment into its terminal state.
func (a *Appointment) MarkCompleted() {
	a.Completed = true
}
