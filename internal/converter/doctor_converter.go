package converter

import (
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/domain/entity"
)

func DoctorToResponse(d *entity.Doctor) *dto.DoctorResponse {
	if d == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Age:            d.Age,
		Specialization: d.Specialization,
		Contact:        d.Contact,
		Email:          d.Email,
		RegisteredAt:   d.RegisteredAt,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
