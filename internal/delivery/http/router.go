package http

import (
	"net/http"

	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/http/handler"
	"github.com/pauloaguiarc/smarthealthsystem/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	patientHandler      *handler.PatientHandler
	doctorHandler       *handler.DoctorHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	reportHandler       *handler.ReportHandler
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	reportHandler *handler.ReportHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		patientHandler:      patientHandler,
		doctorHandler:       doctorHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		reportHandler:       reportHandler,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient registry
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/history", r.patientHandler.AddMedicalHistory).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/appointments", r.patientHandler.GetPatientAppointments).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/prescriptions", r.prescriptionHandler.AddPrescription).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/prescriptions", r.prescriptionHandler.GetPatientPrescriptions).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/prescriptions/{prescriptionId}/refill", r.prescriptionHandler.UpdateRefill).Methods(http.MethodPut)

	// Doctor registry
	api.HandleFunc("/doctors", r.doctorHandler.RegisterDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/appointments", r.doctorHandler.GetDoctorAppointments).Methods(http.MethodGet)

	// Scheduling and appointment queries
	api.HandleFunc("/appointments", r.appointmentHandler.ScheduleAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/upcoming", r.appointmentHandler.GetUpcomingAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/overdue", r.appointmentHandler.GetOverdueAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)

	// Cross-patient prescription queries
	api.HandleFunc("/prescriptions/expired", r.prescriptionHandler.GetExpiredPrescriptions).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/refill-due", r.prescriptionHandler.GetRefillDuePrescriptions).Methods(http.MethodGet)

	// Reports
	api.HandleFunc("/reports/summary", r.reportHandler.GetSummary).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
