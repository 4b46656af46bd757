package usecase

import (
	"context"
	"errors"

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
	ErrReminderNotFound = errors.New("pill reminder not found")
	ErrReminderNotOwned = errors.New("pill reminder does not belong to you")
)

type PillReminderUsecase interface {
	GetMyReminders(ctx context.Context) (*dto.PillReminderListResponse, error)
	CreateReminder(ctx context.Context, req *dto.CreatePillReminderRequest) (*dto.PillReminderResponse, error)
	UpdateReminder(ctx context.Context, reminderID uuid.UUID, req *dto.UpdatePillReminderRequest) (*dto.PillReminderResponse, error)
	DeleteReminder(ctx context.Context, reminderID uuid.UUID) error
}

type pillReminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.PillReminderRepository
}

func NewPillReminderUsecase(db *gorm.DB, log *logrus.Logger, reminderRepo repository.PillReminderRepository) PillReminderUsecase {
	return &pillReminderUsecase{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
	}
}

func (u *pillReminderUsecase) GetMyReminders(ctx context.Context) (*dto.PillReminderListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	reminders, err := u.reminderRepo.FindByPatientUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find reminders for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PillReminderListResponse{
		Reminders: converter.PillRemindersToResponses(reminders),
		Total:     len(reminders),
	}, nil
}

func (u *pillReminderUsecase) CreateReminder(ctx context.Context, req *dto.CreatePillReminderRequest) (*dto.PillReminderResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	reminder := &entity.PillReminder{
		PatientUserID:  userID,
		MedicationName: req.MedicationName,
		DosageAmount:   req.DosageAmount,
		DosageUnit:     req.DosageUnit,
		Frequency:      req.Frequency,
		Times:          entity.StringList(req.Times),
		Notes:          req.Notes,
	}

	if err := u.reminderRepo.Create(ctx, u.db, reminder); err != nil {
		u.log.Warnf("Failed to create pill reminder: %+v", err)
		return nil, err
	}

	u.log.Infof("Pill reminder created: id=%s, patient=%s", reminder.ID, userID)
	return converter.PillReminderToResponse(reminder), nil
}

func (u *pillReminderUsecase) UpdateReminder(ctx context.Context, reminderID uuid.UUID, req *dto.UpdatePillReminderRequest) (*dto.PillReminderResponse, error) {
	reminder, err := u.ownedReminder(ctx, reminderID)
	if err != nil {
		return nil, err
	}

	reminder.MedicationName = req.MedicationName
	reminder.DosageAmount = req.DosageAmount
	reminder.DosageUnit = req.DosageUnit
	reminder.Frequency = req.Frequency
	reminder.Times = entity.StringList(req.Times)
	reminder.Notes = req.Notes

	if err := u.reminderRepo.Update(ctx, u.db, reminder); err != nil {
		u.log.Warnf("Failed to update pill reminder %s: %+v", reminderID, err)
		return nil, err
	}

	return converter.PillReminderToResponse(reminder), nil
}

func (u *pillReminderUsecase) DeleteReminder(ctx context.Context, reminderID uuid.UUID) error {
	if _, err := u.ownedReminder(ctx, reminderID); err != nil {
		return err
	}

	if err := u.reminderRepo.Delete(ctx, u.db, reminderID); err != nil {
		u.log.Warnf("Failed to delete pill reminder %s: %+v", reminderID, err)
		return err
	}

	u.log.Infof("Pill reminder deleted: id=%s", reminderID)
	return nil
}

// ownedReminder loads a reminder and checks it belongs to the logged-in patient.
func (u *pillReminderUsecase) ownedReminder(ctx context.Context, reminderID uuid.UUID) (*entity.PillReminder, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	reminder, err := u.reminderRepo.FindByID(ctx, u.db, reminderID)
	if err != nil {
		u.log.Warnf("Failed to find pill reminder %s: %+v", reminderID, err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}
	if reminder.PatientUserID != userID {
		return nil, ErrReminderNotOwned
	}

	return reminder, nil
}
