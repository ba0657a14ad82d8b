package repository

import (
	"errors"

	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
)

// SystemRepository handles database operations for the system state row
type SystemRepository struct {
	db *gorm.DB
}

// NewSystemRepository creates a new system repository
func NewSystemRepository(db *gorm.DB) *SystemRepository {
	return &SystemRepository{db: db}
}

// Get retrieves the single system state row, creating it unpaused if absent
func (r *SystemRepository) Get() (*models.SystemState, error) {
	var state models.SystemState
	err := r.db.First(&state, "id = ?", models.SystemStateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = models.SystemState{ID: models.SystemStateID}
		if err := r.db.Create(&state).Error; err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Save updates the system state row
func (r *SystemRepository) Save(state *models.SystemState) error {
	return r.db.Save(state).Error
}
