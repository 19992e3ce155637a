package dto

import "time"

type RegisterDoctorRequest struct {
	ID             string `json:"id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Specialization string `json:"specialization" validate:"required"`
	Contact        string `json:"contact"`
	Email          string `json:"email" validate:"omitempty,email"`
}

type DoctorResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Specialization string    `json:"specialization"`
	Contact        string    `json:"contact,omitempty"`
	Email          string    `json:"email,omitempty"`
	RegisteredAt   time.Time `json:"registered_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
