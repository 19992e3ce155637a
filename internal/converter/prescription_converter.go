package converter

import (
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
)

func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:             p.ID,
		DoctorID:       p.DoctorID,
		PatientID:      p.PatientID,
		MedicationName: p.MedicationName,
		Dosage:         p.Dosage,
		StartDate:      p.StartDate.Format(entity.DatetimeLayout),
		EndDate:        p.EndDate.Format(entity.DatetimeLayout),
		Notes:          p.Notes,
		RefillNeeded:   p.RefillNeeded,
	}
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i])
	}
	return responses
}
