package usecase

import (
	"context"

	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"

	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	GetSummary(ctx context.Context) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	store *records.Store
	log   *logrus.Logger
}

func NewReportUsecase(store *records.Store, log *logrus.Logger) ReportUsecase {
	return &reportUsecase{
		store: store,
		log:   log,
	}
}

func (u *reportUsecase) GetSummary(ctx context.Context) (*dto.ReportResponse, error) {
	return &dto.ReportResponse{
		DoctorWorkload: u.store.DoctorWorkloadSummary(),
		PatientVisits:  u.store.PatientVisitSummary(),
	}, nil
}
