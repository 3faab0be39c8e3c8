package contracts

import (
	"context"

	"clinic-portal/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.PortalEvent) error
}
