package http

import (
	"net/http"

	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/handler"
	"github.com/lokesh74503/Hospital-management-system/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type DoctorRouter struct {
	router                *mux.Router
	doctorHandler         *handler.DoctorHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
}

func NewDoctorRouter(
	doctorHandler *handler.DoctorHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *DoctorRouter {
	return &DoctorRouter{
		router:                mux.NewRouter(),
		doctorHandler:         doctorHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
	}
}

func (r *DoctorRouter) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	doctors := api.PathPrefix("/doctors").Subrouter()

	doctors.HandleFunc("", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctors.HandleFunc("", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	// Static routes before the {id} catch-all
	doctors.HandleFunc("/search", r.doctorHandler.SearchDoctorsByName).Methods(http.MethodGet)
	doctors.HandleFunc("/statistics", r.doctorHandler.GetDoctorStatistics).Methods(http.MethodGet)
	doctors.HandleFunc("/available", r.doctorHandler.GetAvailableDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/user/{userId}", r.doctorHandler.GetDoctorByUserID).Methods(http.MethodGet)
	doctors.HandleFunc("/specialization/{specialization}", r.doctorHandler.GetDoctorsBySpecialization).Methods(http.MethodGet)
	doctors.HandleFunc("/department/{departmentId}", r.doctorHandler.GetDoctorsByDepartment).Methods(http.MethodGet)
	doctors.HandleFunc("/license-number/{licenseNumber}", r.doctorHandler.GetDoctorByLicenseNumber).Methods(http.MethodGet)
	doctors.HandleFunc("/exists/license-number/{licenseNumber}", r.doctorHandler.ExistsByLicenseNumber).Methods(http.MethodGet)
	doctors.HandleFunc("/{doctorId}/schedules", r.doctorScheduleHandler.GetSchedulesByDoctor).Methods(http.MethodGet)

	doctors.HandleFunc("/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctors.HandleFunc("/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	schedules := api.PathPrefix("/schedules").Subrouter()

	schedules.HandleFunc("", r.doctorScheduleHandler.CreateSchedule).Methods(http.MethodPost)
	schedules.HandleFunc("/day/{day}", r.doctorScheduleHandler.GetAvailableSchedulesByDay).Methods(http.MethodGet)
	schedules.HandleFunc("/{id}", r.doctorScheduleHandler.GetSchedule).Methods(http.MethodGet)
	schedules.HandleFunc("/{id}", r.doctorScheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	schedules.HandleFunc("/{id}", r.doctorScheduleHandler.DeleteSchedule).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
