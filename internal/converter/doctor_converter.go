package converter

import (
	"medimind-portal/internal/delivery/dto"
	"medimind-portal/internal/domain/entity"
)

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}
	return &dto.DoctorResponse{
		UserID:         profile.UserID,
		FullName:       profile.User.FullName,
		Specialization: profile.Specialization,
		Biography:      profile.Biography,
	}
}

func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = *DoctorProfileToResponse(&profile)
	}
	return responses
}
