package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loon-backend/models"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) ListByCategory(ctx context.Context, category string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Where("category = ?", category).Find(&services).Error
	return services, err
}
