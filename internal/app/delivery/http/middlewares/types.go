package middlewares

import (
	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/app/views"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionStore   contracts.SessionStore
	Table          *navigation.Table
	Views          *views.Renderer
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	sessionStore contracts.SessionStore,
	table *navigation.Table,
	renderer *views.Renderer,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionStore:   sessionStore,
		Table:          table,
		Views:          renderer,
	}
}
