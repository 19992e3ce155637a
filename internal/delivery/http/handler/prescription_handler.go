package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/dto"
	"github.com/pauloaguiarc/smarthealthsystem/internal/records"
	"github.com/pauloaguiarc/smarthealthsystem/internal/usecase"
	"github.com/pauloaguiarc/smarthealthsystem/pkg/response"
	"github.com/pauloaguiarc/smarthealthsystem/pkg/validator"

	"github.com/gorilla/mux"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) AddPrescription(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.AddPrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.AddPrescription(r.Context(), vars["id"], &req)
	if err != nil {
		switch err {
		case records.ErrUnknownPatient:
			response.NotFound(w, "Patient not found")
		case records.ErrMalformedDatetime:
			response.Error(w, http.StatusBadRequest, "Invalid datetime, use yyyy-MM-dd HH:mm", nil)
		default:
			response.InternalServerError(w, "Failed to add prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription added successfully", prescription)
}

func (h *PrescriptionHandler) GetPatientPrescriptions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	prescriptions, err := h.prescriptionUsecase.GetPatientPrescriptions(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case records.ErrUnknownPatient:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get prescriptions")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) UpdateRefill(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateRefillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	err := h.prescriptionUsecase.UpdateRefill(r.Context(), vars["id"], vars["prescriptionId"], &req)
	if err != nil {
		switch err {
		case records.ErrUnknownPatient:
			response.NotFound(w, "Patient not found")
		case records.ErrUnknownPrescription:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to update refill flag")
		}
		return
	}

	response.Success(w, http.StatusOK, "Refill flag updated successfully", nil)
}

func (h *PrescriptionHandler) GetExpiredPrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.GetExpiredPrescriptions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get expired prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Expired prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) GetRefillDuePrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.GetRefillDuePrescriptions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get refill-due prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Refill-due prescriptions retrieved successfully", prescriptions)
}
