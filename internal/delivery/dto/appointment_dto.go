package dto

// ScheduleAppointmentRequest proposes a new appointment. Datetime uses the
// fixed yyyy-MM-dd HH:mm layout; parsing happens inside the scheduling
// engine so the format error surfaces through the same taxonomy as every
// other precondition.
type ScheduleAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	Datetime  string `json:"datetime" validate:"required"`
}

type AppointmentResponse struct {
	ID        string `json:"id"`
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
	Reason    string `json:"reason"`
	Datetime  string `json:"datetime"`
	Completed bool   `json:"completed"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
