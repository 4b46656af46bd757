package usecase

import (
	"context"
	"errors"
	"time"

	"medimind-portal/internal/converter"
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/delivery/http/middleware"
	"medimind-portal/internal/domain/entity"
	"medimind-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentNotOwned         = errors.New("appointment does not belong to you")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentInPast           = errors.New("cannot schedule an appointment in the past")
	ErrDoctorNotFound              = errors.New("doctor not found")
	ErrInvalidTimeFormat           = errors.New("invalid time format, use RFC 3339")
)

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateAppointmentNotes(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentNotesRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	recordRepo      repository.PatientRecordRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	recordRepo repository.PatientRecordRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		recordRepo:      recordRepo,
	}
}

// GetMyAppointments returns all appointments for the logged-in patient
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	appointments, err := u.appointmentRepo.FindByPatientUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if scheduledAt.Before(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientUserID: userID,
		DoctorID:      req.DoctorID,
		ScheduledAt:   scheduledAt,
		Reason:        req.Reason,
		Status:        entity.AppointmentStatusScheduled,
	}

	// Attach the patient's record when one is linked, so the doctor sees the
	// appointment against the chart.
	record, err := u.recordRepo.FindFirstByLinkedUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find record for patient %s (non-fatal): %+v", userID, err)
	} else if record != nil {
		appointment.RecordID = &record.ID
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s", appointment.ID, userID, req.DoctorID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientUserID != userID {
		return ErrAppointmentNotOwned
	}
	if appointment.IsCancelled() {
		return ErrAppointmentAlreadyCancelled
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return nil
}

// GetDoctorAppointments returns all appointments for the logged-in doctor
func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointmentNotes(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentNotesRequest) (*dto.AppointmentResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotOwned
	}

	appointment.Notes = req.Notes
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}
