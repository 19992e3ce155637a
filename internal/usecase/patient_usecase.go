package usecase

import (
	"context"

	"github.com/pauloaguiarc/smarthealthsystem/internal/converter"
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	AddMedicalHistory(ctx context.Context, patientID string, req *dto.AddMedicalHistoryRequest) (*dto.PatientResponse, error)
	GetPatientAppointments(ctx context.Context, patientID string) (*dto.AppointmentListResponse, error)
}

type patientUsecase struct {
	store *records.Store
	log   *logrus.Logger
}

func NewPatientUsecase(store *records.Store, log *logrus.Logger) PatientUsecase {
	return &patientUsecase{
		store: store,
		log:   log,
	}
}

func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.store.RegisterPatient(entity.Patient{
		ID:             req.ID,
		Name:           req.Name,
		Age:            req.Age,
		Address:        req.Address,
		Contact:        req.Contact,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		u.log.Warnf("Failed to register patient %s: %+v", req.ID, err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%s", patient.ID)
	return converter.PatientToResponse(&patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error) {
	patient, ok := u.store.FindPatient(patientID)
	if !ok {
		return nil, records.ErrUnknownPatient
	}
	return converter.PatientToResponse(&patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients := u.store.Patients()
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) AddMedicalHistory(ctx context.Context, patientID string, req *dto.AddMedicalHistoryRequest) (*dto.PatientResponse, error) {
	if err := u.store.AddMedicalHistory(patientID, req.Entry); err != nil {
		u.log.Warnf("Failed to add medical history for patient %s: %+v", patientID, err)
		return nil, err
	}

	patient, _ := u.store.FindPatient(patientID)
	return converter.PatientToResponse(&patient), nil
}

// GetPatientAppointments verifies the patient exists before querying; the
// store itself treats unknown identifiers as an empty result.
func (u *patientUsecase) GetPatientAppointments(ctx context.Context, patientID string) (*dto.AppointmentListResponse, error) {
	if _, ok := u.store.FindPatient(patientID); !ok {
		return nil, records.ErrUnknownPatient
	}

	appointments := u.store.AppointmentsForPatient(patientID)
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
