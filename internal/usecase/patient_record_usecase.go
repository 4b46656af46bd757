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
	"medimind-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound       = errors.New("patient record not found")
	ErrRecordNotOwned       = errors.New("patient record does not belong to you")
	ErrPatientNumberExists  = errors.New("patient number already exists")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrUserNotInContext     = errors.New("user not found in context")
)

type PatientRecordUsecase interface {
	ListMyPatients(ctx context.Context) (*dto.PatientRecordListResponse, error)
	CreateRecord(ctx context.Context, req *dto.CreatePatientRecordRequest) (*dto.PatientRecordResponse, error)
	GetRecord(ctx context.Context, recordID uuid.UUID) (*dto.PatientRecordResponse, error)
	UpdateRecord(ctx context.Context, recordID uuid.UUID, req *dto.UpdatePatientRecordRequest) (*dto.PatientRecordResponse, error)
	DeleteRecord(ctx context.Context, recordID uuid.UUID) error
}

type patientRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.PatientRecordRepository
	auditService service.AuditService
}

func NewPatientRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.PatientRecordRepository,
	auditService service.AuditService,
) PatientRecordUsecase {
	return &patientRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		auditService: auditService,
	}
}

func (u *patientRecordUsecase) ListMyPatients(ctx context.Context) (*dto.PatientRecordListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	records, err := u.recordRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list records for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.PatientRecordListResponse{
		Records: converter.PatientRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *patientRecordUsecase) CreateRecord(ctx context.Context, req *dto.CreatePatientRecordRequest) (*dto.PatientRecordResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	record := &entity.PatientRecord{
		DoctorID:      doctorID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PatientNumber: req.PatientNumber,
		Email:         req.Email,
		DateOfBirth:   dob,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		PatientPrompt: req.PatientPrompt,
	}

	if req.InitialPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.InitialPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash initial password: %+v", err)
			return nil, err
		}
		record.InitialPassword = string(hashed)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.recordRepo.Create(ctx, tx, record); err != nil {
		if isDuplicateKeyError(err, "patient_number") {
			return nil, ErrPatientNumberExists
		}
		u.log.Warnf("Failed to create patient record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorID, "patient_record.create", "patient_record", record.ID.String(), record.PatientNumber); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient record created: id=%s, doctor=%s", record.ID, doctorID)
	return converter.PatientRecordToResponse(record), nil
}

func (u *patientRecordUsecase) GetRecord(ctx context.Context, recordID uuid.UUID) (*dto.PatientRecordResponse, error) {
	record, err := u.ownedRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return converter.PatientRecordToResponse(record), nil
}

func (u *patientRecordUsecase) UpdateRecord(ctx context.Context, recordID uuid.UUID, req *dto.UpdatePatientRecordRequest) (*dto.PatientRecordResponse, error) {
	doctorID, _ := middleware.GetUserIDFromContext(ctx)

	record, err := u.ownedRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	oldPrompt := record.PatientPrompt

	record.FirstName = req.FirstName
	record.LastName = req.LastName
	record.Email = req.Email
	record.DateOfBirth = dob
	record.Address = req.Address
	record.PhoneNumber = req.PhoneNumber
	record.PatientPrompt = req.PatientPrompt

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.recordRepo.Update(ctx, tx, record); err != nil {
		u.log.Warnf("Failed to update patient record %s: %+v", recordID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, "patient_record.update", "patient_record", record.ID.String(), oldPrompt, record.PatientPrompt); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientRecordToResponse(record), nil
}

func (u *patientRecordUsecase) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	doctorID, _ := middleware.GetUserIDFromContext(ctx)

	record, err := u.ownedRecord(ctx, recordID)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.recordRepo.Delete(ctx, tx, recordID); err != nil {
		u.log.Warnf("Failed to delete patient record %s: %+v", recordID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &doctorID, "patient_record.delete", "patient_record", record.ID.String(), record.PatientNumber); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Patient record deleted: id=%s, doctor=%s", recordID, doctorID)
	return nil
}

// ownedRecord loads a record and verifies the calling doctor owns it.
func (u *patientRecordUsecase) ownedRecord(ctx context.Context, recordID uuid.UUID) (*entity.PatientRecord, error) {
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

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
