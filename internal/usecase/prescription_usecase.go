package usecase

import (
	"context"
	"time"

	"github.com/pauloaguiarc/smarthealthsystem/internal/converter"
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PrescriptionUsecase interface {
	AddPrescription(ctx context.Context, patientID string, req *dto.AddPrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPatientPrescriptions(ctx context.Context, patientID string) (*dto.PrescriptionListResponse, error)
	UpdateRefill(ctx context.Context, patientID, prescriptionID string, req *dto.UpdateRefillRequest) error
	GetExpiredPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
	GetRefillDuePrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	store *records.Store
	log   *logrus.Logger
}

func NewPrescriptionUsecase(store *records.Store, log *logrus.Logger) PrescriptionUsecase {
	return &prescriptionUsecase{
		store: store,
		log:   log,
	}
}

func (u *prescriptionUsecase) AddPrescription(ctx context.Context, patientID string, req *dto.AddPrescriptionRequest) (*dto.PrescriptionResponse, error) {
	startDate, err := time.Parse(entity.DatetimeLayout, req.StartDate)
	if err != nil {
		return nil, records.ErrMalformedDatetime
	}
	endDate, err := time.Parse(entity.DatetimeLayout, req.EndDate)
	if err != nil {
		return nil, records.ErrMalformedDatetime
	}

	prescriptionID := req.ID
	if prescriptionID == "" {
		prescriptionID = uuid.NewString()
	}

	prescription, err := u.store.AddPrescription(patientID, entity.Prescription{
		ID:             prescriptionID,
		DoctorID:       req.DoctorID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		StartDate:      startDate,
		EndDate:        endDate,
		Notes:          req.Notes,
		RefillNeeded:   req.RefillNeeded,
	})
	if err != nil {
		u.log.Warnf("Failed to add prescription for patient %s: %+v", patientID, err)
		return nil, err
	}

	u.log.Infof("Prescription added: id=%s, patient=%s, medication=%s", prescription.ID, patientID, prescription.MedicationName)
	return converter.PrescriptionToResponse(&prescription), nil
}

func (u *prescriptionUsecase) GetPatientPrescriptions(ctx context.Context, patientID string) (*dto.PrescriptionListResponse, error) {
	if _, ok := u.store.FindPatient(patientID); !ok {
		return nil, records.ErrUnknownPatient
	}

	prescriptions := u.store.PrescriptionsForPatient(patientID)
	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) UpdateRefill(ctx context.Context, patientID, prescriptionID string, req *dto.UpdateRefillRequest) error {
	if err := u.store.SetPrescriptionRefill(patientID, prescriptionID, *req.RefillNeeded); err != nil {
		u.log.Warnf("Failed to update refill flag for prescription %s: %+v", prescriptionID, err)
		return err
	}
	return nil
}

func (u *prescriptionUsecase) GetExpiredPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	prescriptions := u.store.ExpiredPrescriptions()
	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

func (u *prescriptionUsecase) GetRefillDuePrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	prescriptions := u.store.RefillDuePrescriptions()
	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}
