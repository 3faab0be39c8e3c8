package contracts

import (
	"context"

	"clinic-portal/internal/app/models"
)

type DoctorClient interface {
	GetProfile(ctx context.Context, token string) (*models.Doctor, error)
	UpdateProfile(ctx context.Context, token string, profile *models.Doctor) (*models.Doctor, error)
	ListDoctors(ctx context.Context, token string) ([]models.Doctor, error)
	ListDoctorsBySpecialty(ctx context.Context, token, specialty string) ([]models.Doctor, error)
}
