package contracts

import (
	"context"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/dto/requests"
)

type AuthClient interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, request *requests.RegisterUser) error
}

type AuthUsecase interface {
	Login(ctx context.Context, sessionID string, request *requests.LoginUser) (*models.Session, error)
	Register(ctx context.Context, request *requests.RegisterUser) error
	Logout(ctx context.Context, sessionID string, session *models.Session) error
}
