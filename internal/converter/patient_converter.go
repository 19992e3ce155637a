package converter

import (
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO.
// Prescriptions are served through their own endpoints and are not inlined.
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:             p.ID,
		Name:           p.Name,
		Age:            p.Age,
		Address:        p.Address,
		Contact:        p.Contact,
		RegisteredAt:   p.RegisteredAt,
		MedicalHistory: p.MedicalHistory,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
