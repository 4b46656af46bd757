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

var ErrDiagnosisNotFound = errors.New("diagnosis not found")

type DiagnosisUsecase interface {
	ListByRecord(ctx context.Context, recordID uuid.UUID) (*dto.DiagnosisListResponse, error)
	Create(ctx context.Context, recordID uuid.UUID, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	Update(ctx context.Context, recordID, diagnosisID uuid.UUID, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	Delete(ctx context.Context, recordID, diagnosisID uuid.UUID) error
}

type diagnosisUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	diagnosisRepo repository.DiagnosisRepository
	recordRepo    repository.PatientRecordRepository
}

func NewDiagnosisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	recordRepo repository.PatientRecordRepository,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:            db,
		log:           log,
		diagnosisRepo: diagnosisRepo,
		recordRepo:    recordRepo,
	}
}

func (u *diagnosisUsecase) ListByRecord(ctx context.Context, recordID uuid.UUID) (*dto.DiagnosisListResponse, error) {
	if _, err := u.ownedRecord(ctx, recordID); err != nil {
		return nil, err
	}

	diagnoses, err := u.diagnosisRepo.FindByRecordID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to list diagnoses for record %s: %+v", recordID, err)
		return nil, err
	}

	return &dto.DiagnosisListResponse{
		Diagnoses: converter.DiagnosesToResponses(diagnoses),
		Total:     len(diagnoses),
	}, nil
}

func (u *diagnosisUsecase) Create(ctx context.Context, recordID uuid.UUID, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	doctorID, _ := middleware.GetUserIDFromContext(ctx)

	if _, err := u.ownedRecord(ctx, recordID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.DiagnosisDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	diagnosis := &entity.Diagnosis{
		RecordID:      recordID,
		DiagnosisText: req.DiagnosisText,
		DiagnosedBy:   doctorID,
		DiagnosisDate: date,
	}

	if err := u.diagnosisRepo.Create(ctx, u.db, diagnosis); err != nil {
		u.log.Warnf("Failed to create diagnosis for record %s: %+v", recordID, err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) Update(ctx context.Context, recordID, diagnosisID uuid.UUID, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	if _, err := u.ownedRecord(ctx, recordID); err != nil {
		return nil, err
	}

	diagnosis, err := u.diagnosisRepo.FindByID(ctx, u.db, diagnosisID)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis %s: %+v", diagnosisID, err)
		return nil, err
	}
	if diagnosis == nil || diagnosis.RecordID != recordID {
		return nil, ErrDiagnosisNotFound
	}

	date, err := time.Parse("2006-01-02", req.DiagnosisDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	diagnosis.DiagnosisText = req.DiagnosisText
	diagnosis.DiagnosisDate = date

	if err := u.diagnosisRepo.Update(ctx, u.db, diagnosis); err != nil {
		u.log.Warnf("Failed to update diagnosis %s: %+v", diagnosisID, err)
		return nil, err
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) Delete(ctx context.Context, recordID, diagnosisID uuid.UUID) error {
	if _, err := u.ownedRecord(ctx, recordID); err != nil {
		return err
	}

	diagnosis, err := u.diagnosisRepo.FindByID(ctx, u.db, diagnosisID)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis %s: %+v", diagnosisID, err)
		return err
	}
	if diagnosis == nil || diagnosis.RecordID != recordID {
		return ErrDiagnosisNotFound
	}

	return u.diagnosisRepo.Delete(ctx, u.db, diagnosisID)
}

func (u *diagnosisUsecase) ownedRecord(ctx context.Context, recordID uuid.UUID) (*entity.PatientRecord, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find patient record %s: %+v", recordID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.DoctorID != doctorID {
		return nil, ErrRecordNotOwned
	}
	return record, nil
}
