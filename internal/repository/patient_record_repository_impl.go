package repository

import (
	"context"
	"errors"

	"medimind-portal/internal/domain/entity"
	domainRepo "medimind-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRecordRepository struct{}

func NewPatientRecordRepository() domainRepo.PatientRecordRepository {
	return &patientRecordRepository{}
}

func (r *patientRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *patientRecordRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientRecord, error) {
	var record entity.PatientRecord
	err := db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *patientRecordRepository) FindFirstByLinkedUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientRecord, error) {
	var record entity.PatientRecord
	err := db.WithContext(ctx).
		Where("linked_user_id = ?", userID).
		Order("created_at ASC, id ASC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *patientRecordRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.PatientRecord, error) {
	var records []entity.PatientRecord
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("last_name ASC, first_name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *patientRecordRepository) FindByPatientNumber(ctx context.Context, db *gorm.DB, patientNumber string) (*entity.PatientRecord, error) {
	var record entity.PatientRecord
	err := db.WithContext(ctx).Where("patient_number = ?", patientNumber).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *patientRecordRepository) FindUnlinkedByEmail(ctx context.Context, db *gorm.DB, email string) ([]entity.PatientRecord, error) {
	var records []entity.PatientRecord
	err := db.WithContext(ctx).
		Where("email = ? AND linked_user_id IS NULL", email).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *patientRecordRepository) Update(ctx context.Context, db *gorm.DB, record *entity.PatientRecord) error {
	return db.WithContext(ctx).Save(record).Error
}

func (r *patientRecordRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PatientRecord{}).Error
}
