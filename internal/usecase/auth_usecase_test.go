package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"medimind-portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byID map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return nil
}

type fakeRoleRepo struct {
	byID map[int]*entity.Role
}

func (f *fakeRoleRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Role, error) {
	return f.byID[id], nil
}

func (f *fakeRoleRepo) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error) {
	for _, role := range f.byID {
		if role.RoleName == name {
			return role, nil
		}
	}
	return nil, nil
}

func TestGetCurrentUserResolvesRoleName(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{byID: map[uuid.UUID]*entity.User{
		userID: {ID: userID, Email: "jane@example.com", FullName: "Jane Doe", RoleID: entity.RoleIDDoctor},
	}}
	roles := &fakeRoleRepo{byID: map[int]*entity.Role{
		entity.RoleIDDoctor: {ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
	}}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	uc := NewAuthUsecase(nil, log, users, roles, nil, nil, nil, nil)

	resp, err := uc.GetCurrentUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Role != entity.RoleDoctor {
		t.Errorf("expected role %q, got %q", entity.RoleDoctor, resp.Role)
	}
	if resp.Email != "jane@example.com" {
		t.Errorf("unexpected email %q", resp.Email)
	}
}

func TestGetCurrentUserUnknownUser(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	uc := NewAuthUsecase(nil, log, &fakeUserRepo{}, &fakeRoleRepo{}, nil, nil, nil, nil)

	if _, err := uc.GetCurrentUser(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		constraintName string
		want           bool
	}{
		{
			name:           "unique violation on matching constraint",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			constraintName: "email",
			want:           true,
		},
		{
			name:           "unique violation on different constraint",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "patient_records_patient_number_key"},
			constraintName: "email",
			want:           false,
		},
		{
			name:           "constraint match is case insensitive",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "DOCTOR_PROFILES_LICENSE_NUMBER_KEY"},
			constraintName: "license_number",
			want:           true,
		},
		{
			name:           "foreign key violation is not a duplicate",
			err:            &pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"},
			constraintName: "email",
			want:           false,
		},
		{
			name:           "wrapped error is unwrapped",
			err:            fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}),
			constraintName: "email",
			want:           true,
		},
		{
			name:           "plain error",
			err:            errors.New("connection refused"),
			constraintName: "email",
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, tt.constraintName); got != tt.want {
				t.Errorf("isDuplicateKeyError(%v, %q) = %v, want %v", tt.err, tt.constraintName, got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyError(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_doctor_id_fkey"}
	if !isForeignKeyError(fkErr, "doctor_id") {
		t.Error("expected a foreign key violation to match")
	}
	if isForeignKeyError(fkErr, "patient_user_id") {
		t.Error("expected a different constraint not to match")
	}
	if isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "appointments_doctor_id_fkey"}, "doctor_id") {
		t.Error("expected a unique violation not to match")
	}
}
