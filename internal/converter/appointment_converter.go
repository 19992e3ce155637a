package converter

import (
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
)

func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        a.ID,
		DoctorID:  a.DoctorID,
		PatientID: a.PatientID,
		Reason:    a.Reason,
		Datetime:  a.Datetime.Format(entity.DatetimeLayout),
		Completed: a.Completed,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
