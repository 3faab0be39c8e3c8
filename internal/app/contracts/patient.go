package contracts

import (
	"context"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/dto/requests"
)

type PatientClient interface {
	GetProfile(ctx context.Context, token string) (*models.PatientProfile, error)
	UpdateProfile(ctx context.Context, token string, profile *models.PatientProfile) (*models.PatientProfile, error)
	GetMedicalHistory(ctx context.Context, token string) ([]models.MedicalHistoryEntry, error)
	AddMedicalHistory(ctx context.Context, token, description string) (*models.MedicalHistoryEntry, error)
	GetEmergencyContact(ctx context.Context, token string) (*models.EmergencyContact, error)
	UpdateEmergencyContact(ctx context.Context, token string, request *requests.UpdateEmergencyContact) (*models.EmergencyContact, error)
	ListPatients(ctx context.Context, token string) ([]models.PatientProfile, error)
}
