package dto

import "time"

// RegisterPatientRequest carries the fields for registering a new patient.
// MedicalHistory may seed the record with initial entries.
type RegisterPatientRequest struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Age            int      `json:"age" validate:"gte=0,lte=150"`
	Address        string   `json:"address"`
	Contact        string   `json:"contact"`
	MedicalHistory []string `json:"medical_history"`
}

// AddMedicalHistoryRequest appends one entry to a patient's history.
type AddMedicalHistoryRequest struct {
	Entry string `json:"entry" validate:"required"`
}

type PatientResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Address        string    `json:"address,omitempty"`
	Contact        string    `json:"contact,omitempty"`
	RegisteredAt   time.Time `json:"registered_at"`
	MedicalHistory []string  `json:"medical_history,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
