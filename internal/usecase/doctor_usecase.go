package usecase

import (
	"context"

	"github.com/pauloaguiarc/smarthealthsystem/internal/converter"
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorAppointments(ctx context.Context, doctorID string) (*dto.AppointmentListResponse, error)
}

type doctorUsecase struct {
	store *records.Store
	log   *logrus.Logger
}

func NewDoctorUsecase(store *records.Store, log *logrus.Logger) DoctorUsecase {
	return &doctorUsecase{
		store: store,
		log:   log,
	}
}

func (u *doctorUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.store.RegisterDoctor(entity.Doctor{
		ID:             req.ID,
		Name:           req.Name,
		Age:            req.Age,
		Specialization: req.Specialization,
		Contact:        req.Contact,
		Email:          req.Email,
	})
	if err != nil {
		u.log.Warnf("Failed to register doctor %s: %+v", req.ID, err)
		return nil, err
	}

	u.log.Infof("Doctor registered: id=%s, specialization=%s", doctor.ID, doctor.Specialization)
	return converter.DoctorToResponse(&doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor, ok := u.store.FindDoctor(doctorID)
	if !ok {
		return nil, records.ErrUnknownDoctor
	}
	return converter.DoctorToResponse(&doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors := u.store.Doctors()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetDoctorAppointments(ctx context.Context, doctorID string) (*dto.AppointmentListResponse, error) {
	if _, ok := u.store.FindDoctor(doctorID); !ok {
		return nil, records.ErrUnknownDoctor
	}

	appointments := u.store.AppointmentsForDoctor(doctorID)
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
