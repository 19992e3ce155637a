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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.ScheduleAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case records.ErrUnknownPatient:
			response.NotFound(w, "Patient not found")
		case records.ErrUnknownDoctor:
			response.NotFound(w, "Doctor not found")
		case records.ErrMalformedDatetime:
			response.Error(w, http.StatusBadRequest, "Invalid datetime, use yyyy-MM-dd HH:mm", nil)
		case records.ErrDoctorUnavailable:
			response.Conflict(w, "Doctor already has an appointment at that time")
		case records.ErrPatientUnavailable:
			response.Conflict(w, "Patient already has an appointment at that time")
		case records.ErrPastDatetime:
			response.Error(w, http.StatusBadRequest, "Appointments can only be scheduled for the future", nil)
		default:
			response.InternalServerError(w, "Failed to schedule appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointment, err := h.appointmentUsecase.CompleteAppointment(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case records.ErrUnknownAppointment:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

func (h *AppointmentHandler) GetUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetUpcomingAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get upcoming appointments")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetOverdueAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetOverdueAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get overdue appointments")
		return
	}

	response.Success(w, http.StatusOK, "Overdue appointments retrieved successfully", appointments)
}
