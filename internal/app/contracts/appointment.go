package contracts

import (
	"context"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/dto/requests"
)

type AppointmentClient interface {
	ListMyAppointments(ctx context.Context, token string) ([]models.Appointment, error)
	BookAppointment(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error)
}
