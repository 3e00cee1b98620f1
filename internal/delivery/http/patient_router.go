package http

import (
	"net/http"

	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/handler"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type PatientRouter struct {
	router            *mux.Router
	patientHandler    *handler.PatientHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewPatientRouter(
	patientHandler *handler.PatientHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *PatientRouter {
	return &PatientRouter{
		router:            mux.NewRouter(),
		patientHandler:    patientHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *PatientRouter) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	patients := api.PathPrefix("/patients").Subrouter()

	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAllPatients).Methods(http.MethodGet)

	// Static routes before the {id} catch-all
	patients.HandleFunc("/search", r.patientHandler.SearchPatientsByName).Methods(http.MethodGet)
	patients.HandleFunc("/statistics", r.patientHandler.GetPatientStatistics).Methods(http.MethodGet)
	patients.HandleFunc("/allergies", r.patientHandler.GetPatientsByAllergy).Methods(http.MethodGet)
	patients.HandleFunc("/medical-history", r.patientHandler.GetPatientsByMedicalHistory).Methods(http.MethodGet)
	patients.HandleFunc("/created-date-range", r.patientHandler.GetPatientsByCreatedDateRange).Methods(http.MethodGet)
	patients.HandleFunc("/birth-date-range", r.patientHandler.GetPatientsByBirthDateRange).Methods(http.MethodGet)
	patients.HandleFunc("/user/{userId}", r.patientHandler.GetPatientByUserID).Methods(http.MethodGet)
	patients.HandleFunc("/phone/{phone}", r.patientHandler.GetPatientByPhone).Methods(http.MethodGet)
	patients.HandleFunc("/blood-group/{bloodGroup}", r.patientHandler.GetPatientsByBloodGroup).Methods(http.MethodGet)
	patients.HandleFunc("/gender/{gender}", r.patientHandler.GetPatientsByGender).Methods(http.MethodGet)
	patients.HandleFunc("/insurance-provider/{provider}", r.patientHandler.GetPatientsByInsuranceProvider).Methods(http.MethodGet)
	patients.HandleFunc("/insurance-number/{insuranceNumber}", r.patientHandler.GetPatientByInsuranceNumber).Methods(http.MethodGet)
	patients.HandleFunc("/birth-year/{year}", r.patientHandler.GetPatientsByBirthYear).Methods(http.MethodGet)
	patients.HandleFunc("/exists/user/{userId}", r.patientHandler.ExistsByUserID).Methods(http.MethodGet)
	patients.HandleFunc("/exists/phone/{phone}", r.patientHandler.ExistsByPhone).Methods(http.MethodGet)
	patients.HandleFunc("/exists/insurance-number/{insuranceNumber}", r.patientHandler.ExistsByInsuranceNumber).Methods(http.MethodGet)

	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
