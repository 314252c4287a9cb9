package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
	"gorm.io/gorm"
)

// UnitService handles units of measurement
type UnitService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUnitService(db *gorm.DB, log *logger.Logger) *UnitService {
	return &UnitService{
		db:  db,
		log: log.WithComponent("unit_service"),
	}
}

func (s *UnitService) ListUnits(ctx context.Context) ([]types.UnitOfMeasurementResponse, error) {
	var units []models.UnitOfMeasurement
	if err := s.db.WithContext(ctx).Order("name ASC, id ASC").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	result := make([]types.UnitOfMeasurementResponse, 0, len(units))
	for i := range units {
		result = append(result, types.NewUnitOfMeasurementResponse(&units[i]))
	}
	return result, nil
}

func (s *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*types.UnitOfMeasurementResponse, error) {
	var unit models.UnitOfMeasurement
	if err := s.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("unit of measurement", id)
		}
		return nil, fmt.Errorf("failed to load unit: %w", err)
	}
	resp := types.NewUnitOfMeasurementResponse(&unit)
	return &resp, nil
}

func (s *UnitService) CreateUnit(ctx context.Context, req *types.CreateUnitOfMeasurementRequest) (*types.UnitOfMeasurementResponse, error) {
	unit := &models.UnitOfMeasurement{Name: req.Name}
	if err := s.db.WithContext(ctx).Create(unit).Error; err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	resp := types.NewUnitOfMeasurementResponse(unit)
	return &resp, nil
}

func (s *UnitService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	return deleteCatalogRow(ctx, s.db, &models.UnitOfMeasurement{}, "unit of measurement", id,
		&models.RecipeIngredient{}, "unit_of_measurement_id")
}
