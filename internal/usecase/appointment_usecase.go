package usecase

import (
	"context"

	"github.com/pauloaguiarc/smarthealthsystem/internal/converter"
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error)
	GetUpcomingAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetOverdueAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	store *records.Store
	log   *logrus.Logger
}

func NewAppointmentUsecase(store *records.Store, log *logrus.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		store: store,
		log:   log,
	}
}

// ScheduleAppointment delegates to the store's atomic schedule operation;
// all preconditions, conflict checks and the commit happen in there.
func (u *appointmentUsecase) ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.store.ScheduleAppointment(req.PatientID, req.DoctorID, req.Reason, req.Datetime)
	if err != nil {
		u.log.Warnf("Failed to schedule appointment for patient %s with doctor %s: %+v", req.PatientID, req.DoctorID, err)
		return nil, err
	}

	u.log.Infof("Appointment scheduled: id=%s, doctor=%s, patient=%s, at=%s",
		appointment.ID, appointment.DoctorID, appointment.PatientID, req.Datetime)
	return converter.AppointmentToResponse(&appointment), nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error) {
	appointment, err := u.store.MarkAppointmentCompleted(appointmentID)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Appointment completed: id=%s", appointmentID)
	return converter.AppointmentToResponse(&appointment), nil
}

func (u *appointmentUsecase) GetUpcomingAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments := u.store.UpcomingAppointments()
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetOverdueAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments := u.store.OverdueAppointments()
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
