package entity

import "time"

// Prescription is a medication order owned by a patient. Its lifecycle is
// tied to the owning patient; it never exists on its own.
type Prescription struct {
	ID             string    `json:"id"`
	DoctorID       string    `json:"doctor_id"`
	PatientID      string    `json:"patient_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Notes          string    `json:"notes,omitempty"`
	RefillNeeded   bool      `json:"refill_needed"`
}

// IsExpiredAt reports whether the prescription's end date is strictly in the
// past at the given time.
func (p *Prescription) IsExpiredAt(now time.Time) bool {
	return p.EndDate.Before(now)
}
