package repository

import (
	"dao-governance-backend/internal/database/models"

	"gorm.io/gorm"
)

// AgentRepository handles database operations for agent registrations
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create creates a new agent registration
func (r *AgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// GetByAddress retrieves an agent by address
func (r *AgentRepository) GetByAddress(address string) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "address = ?", address).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAll retrieves all agents with pagination
func (r *AgentRepository) GetAll(limit, offset int) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	if err := r.db.Model(&models.Agent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&agents).Error
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// Update updates an agent registration
func (r *AgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}
