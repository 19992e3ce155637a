package dto

// AddPrescriptionRequest attaches a prescription to a patient. ID is
// optional; one is generated when omitted. Dates use the fixed
// yyyy-MM-dd HH:mm layout.
type AddPrescriptionRequest struct {
	ID             string `json:"id"`
	DoctorID       string `json:"doctor_id" validate:"required"`
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	StartDate      string `json:"start_date" validate:"required"`
	EndDate        string `json:"end_date" validate:"required"`
	Notes          string `json:"notes"`
	RefillNeeded   bool   `json:"refill_needed"`
}

// UpdateRefillRequest sets or clears the refill flag. A pointer keeps
// `false` distinguishable from a missing field.
type UpdateRefillRequest struct {
	RefillNeeded *bool `json:"refill_needed" validate:"required"`
}

type PrescriptionResponse struct {
	ID             string `json:"id"`
	DoctorID       string `json:"doctor_id"`
	PatientID      string `json:"patient_id"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Notes          string `json:"notes,omitempty"`
	RefillNeeded   bool   `json:"refill_needed"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
