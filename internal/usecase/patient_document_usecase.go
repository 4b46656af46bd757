package usecase

import (
	"context"
	"errors"

	"medimind-portal/internal/converter"
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/delivery/http/middleware"
	"medimind-portal/internal/domain/entity"
	"medimind-portal/internal/domain/repository"
	"medimind-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type PatientDocumentUsecase interface {
	ListByRecord(ctx context.Context, recordID uuid.UUID) (*dto.PatientDocumentListResponse, error)
	Create(ctx context.Context, recordID uuid.UUID, req *dto.CreatePatientDocumentRequest) (*dto.PatientDocumentResponse, error)
	Delete(ctx context.Context, recordID, documentID uuid.UUID) error
}

type patientDocumentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	documentRepo repository.PatientDocumentRepository
	recordRepo   repository.PatientRecordRepository
	auditService service.AuditService
}

func NewPatientDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	documentRepo repository.PatientDocumentRepository,
	recordRepo repository.PatientRecordRepository,
	auditService service.AuditService,
) PatientDocumentUsecase {
	return &patientDocumentUsecase{
		db:           db,
		log:          log,
		documentRepo: documentRepo,
		recordRepo:   recordRepo,
		auditService: auditService,
	}
}

func (u *patientDocumentUsecase) ListByRecord(ctx context.Context, recordID uuid.UUID) (*dto.PatientDocumentListResponse, error) {
	if _, err := u.ownedRecord(ctx, recordID); err != nil {
		return nil, err
	}

	documents, err := u.documentRepo.FindByRecordID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find documents for record %s: %+v", recordID, err)
		return nil, err
	}

	return &dto.PatientDocumentListResponse{
		Documents: converter.PatientDocumentsToResponses(documents),
		Total:     len(documents),
	}, nil
}

func (u *patientDocumentUsecase) Create(ctx context.Context, recordID uuid.UUID, req *dto.CreatePatientDocumentRequest) (*dto.PatientDocumentResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	if _, err := u.ownedRecord(ctx, recordID); err != nil {
		return nil, err
	}

	document := &entity.PatientDocument{
		RecordID:     recordID,
		DocumentName: req.DocumentName,
		DocumentType: req.DocumentType,
		DocumentPath: req.DocumentPath,
		UploadedBy:   doctorID,
	}

	if err := u.documentRepo.Create(ctx, u.db, document); err != nil {
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.db, &doctorID, "patient_document.create", "patient_document", document.ID.String(), document.DocumentName); err != nil {
		u.log.Warnf("Failed to write audit log for document %s: %+v", document.ID, err)
	}

	u.log.Infof("Document created: id=%s, record=%s", document.ID, recordID)
	return converter.PatientDocumentToResponse(document), nil
}

func (u *patientDocumentUsecase) Delete(ctx context.Context, recordID, documentID uuid.UUID) error {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}

	if _, err := u.ownedRecord(ctx, recordID); err != nil {
		return err
	}

	document, err := u.documentRepo.FindByID(ctx, u.db, documentID)
	if err != nil {
		u.log.Warnf("Failed to find document %s: %+v", documentID, err)
		return err
	}
	if document == nil || document.RecordID != recordID {
		return ErrDocumentNotFound
	}

	if err := u.documentRepo.Delete(ctx, u.db, documentID); err != nil {
		u.log.Warnf("Failed to delete document %s: %+v", documentID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.db, &doctorID, "patient_document.delete", "patient_document", documentID.String(), document.DocumentName); err != nil {
		u.log.Warnf("Failed to write audit log for document %s: %+v", documentID, err)
	}

	u.log.Infof("Document deleted: id=%s", documentID)
	return nil
}

func (u *patientDocumentUsecase) ownedRecord(ctx context.Context, recordID uuid.UUID) (*entity.PatientRecord, error) {
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
