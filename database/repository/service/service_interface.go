package serviceRepo

import (
	"context"

	"homeserve/models"
)

// ServiceRepository defines persistence for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
}
