package http

import (
	"net/http"

	"medimind-portal/internal/delivery/http/handler"
	"medimind-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	recordHandler      *handler.PatientRecordHandler
	diagnosisHandler   *handler.DiagnosisHandler
	documentHandler    *handler.PatientDocumentHandler
	instructionHandler *handler.AiInstructionHandler
	chatHandler        *handler.ChatHandler
	appointmentHandler *handler.AppointmentHandler
	reminderHandler    *handler.PillReminderHandler
	doctorHandler      *handler.DoctorHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	recordHandler *handler.PatientRecordHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	documentHandler *handler.PatientDocumentHandler,
	instructionHandler *handler.AiInstructionHandler,
	chatHandler *handler.ChatHandler,
	appointmentHandler *handler.AppointmentHandler,
	reminderHandler *handler.PillReminderHandler,
	doctorHandler *handler.DoctorHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		recordHandler:      recordHandler,
		diagnosisHandler:   diagnosisHandler,
		documentHandler:    documentHandler,
		instructionHandler: instructionHandler,
		chatHandler:        chatHandler,
		appointmentHandler: appointmentHandler,
		reminderHandler:    reminderHandler,
		doctorHandler:      doctorHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/login/patient-number", r.authHandler.LoginPatientNumber).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	// Patient record management (doctor)
	doctor.HandleFunc("/patients", r.recordHandler.ListMyPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/patients", r.recordHandler.CreateRecord).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{id}", r.recordHandler.GetRecord).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}", r.recordHandler.UpdateRecord).Methods(http.MethodPut)
	doctor.HandleFunc("/patients/{id}", r.recordHandler.DeleteRecord).Methods(http.MethodDelete)

	// Diagnoses (doctor)
	doctor.HandleFunc("/patients/{id}/diagnoses", r.diagnosisHandler.ListByRecord).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/diagnoses", r.diagnosisHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{id}/diagnoses/{diagnosisId}", r.diagnosisHandler.Update).Methods(http.MethodPut)
	doctor.HandleFunc("/patients/{id}/diagnoses/{diagnosisId}", r.diagnosisHandler.Delete).Methods(http.MethodDelete)

	// Documents (doctor)
	doctor.HandleFunc("/patients/{id}/documents", r.documentHandler.ListByRecord).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/documents", r.documentHandler.Create).Methods(http.MethodPost)
	doctor.HandleFunc("/patients/{id}/documents/{documentId}", r.documentHandler.Delete).Methods(http.MethodDelete)

	// Assistant customization (doctor)
	doctor.HandleFunc("/ai-customization", r.instructionHandler.GetMyInstruction).Methods(http.MethodGet)
	doctor.HandleFunc("/ai-customization", r.instructionHandler.UpsertMyInstruction).Methods(http.MethodPut)
	doctor.HandleFunc("/ai-customization", r.instructionHandler.DeleteMyInstruction).Methods(http.MethodDelete)

	// Doctor's appointment view
	doctor.HandleFunc("/doctor/appointments", r.appointmentHandler.GetDoctorAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/doctor/appointments/{id}", r.appointmentHandler.UpdateAppointmentNotes).Methods(http.MethodPut)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	// Chat (patient)
	patient.HandleFunc("/chat", r.chatHandler.Chat).Methods(http.MethodPost)
	patient.HandleFunc("/chat/history", r.chatHandler.History).Methods(http.MethodGet)

	// Appointments (patient)
	patient.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Pill reminders (patient)
	patient.HandleFunc("/pill-reminders", r.reminderHandler.GetMyReminders).Methods(http.MethodGet)
	patient.HandleFunc("/pill-reminders", r.reminderHandler.CreateReminder).Methods(http.MethodPost)
	patient.HandleFunc("/pill-reminders/{id}", r.reminderHandler.UpdateReminder).Methods(http.MethodPut)
	patient.HandleFunc("/pill-reminders/{id}", r.reminderHandler.DeleteReminder).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
