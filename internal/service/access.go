package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"dao-governance-backend/internal/database/models"
	apperrors "dao-governance-backend/internal/errors"
	"dao-governance-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AccessService owns the role-membership table, the agent registry, and the
// global pause switch
type AccessService struct {
	repos     *repository.Set
	tx        repository.TxRunner
	mu        *sync.Mutex
	validator *validator.Validate
	now       func() time.Time
}

// NewAccessService creates a new access control service
func NewAccessService(repos *repository.Set, tx repository.TxRunner, mu *sync.Mutex, validator *validator.Validate) *AccessService {
	return &AccessService{
		repos:     repos,
		tx:        tx,
		mu:        mu,
		validator: validator,
		now:       time.Now,
	}
}

// SetClock replaces the service clock, for tests
func (s *AccessService) SetClock(now func() time.Time) {
	s.now = now
}

// GrantRoleRequest represents the request to grant a role
type GrantRoleRequest struct {
	Role    models.Role `json:"role" validate:"required"`
	Address string      `json:"address" validate:"required,max=64"`
}

// RegisterAgentRequest represents the request to register an agent
type RegisterAgentRequest struct {
	Address string `json:"address" validate:"required,max=64"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
}

// AgentResponse represents the response for agent operations
type AgentResponse struct {
	ID           int64      `json:"id"`
	Address      string     `json:"address"`
	Name         string     `json:"name"`
	Active       bool       `json:"active"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
}

// AgentListResponse represents a paginated list of agents
type AgentListResponse struct {
	Agents   []AgentResponse `json:"agents"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// requireRole fails with ErrUnauthorized unless the caller holds the role
func requireRole(r *repository.Set, role models.Role, caller string) error {
	ok, err := r.Roles.Has(role, caller)
	if err != nil {
		return fmt.Errorf("failed to check role: %w", err)
	}
	if !ok {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// GrantRole grants a role to an address. Admin only.
func (s *AccessService) GrantRole(caller string, req *GrantRoleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}
	if !req.Role.IsValid() {
		return apperrors.NewValidationError("role", "unknown role")
	}
	if !validAddress(req.Address) {
		return apperrors.NewValidationError("address", "address must be a non-zero identity")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx(func(r *repository.Set) error {
		if err := requireRole(r, models.RoleAdmin, caller); err != nil {
			return err
		}
		return r.Roles.Grant(&models.RoleGrant{
			Role:      req.Role,
			Address:   req.Address,
			GrantedBy: caller,
		})
	})
}

// HasRole reports whether the address holds the role
func (s *AccessService) HasRole(role models.Role, address string) (bool, error) {
	return s.repos.Roles.Has(role, address)
}

// EnsureGenesisAdmin grants the admin role to the configured genesis address.
// Called once at startup; granting an already-held role is a no-op.
func (s *AccessService) EnsureGenesisAdmin(address string) error {
	if address == "" {
		return nil
	}
	return s.repos.Roles.Grant(&models.RoleGrant{
		Role:      models.RoleAdmin,
		Address:   address,
		GrantedBy: "genesis",
	})
}

// Pause turns the global pause switch on. Admin only.
func (s *AccessService) Pause(caller string) error {
	return s.setPaused(caller, true)
}

// Unpause turns the global pause switch off. Admin only.
func (s *AccessService) Unpause(caller string) error {
	return s.setPaused(caller, false)
}

func (s *AccessService) setPaused(caller string, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx(func(r *repository.Set) error {
		if err := requireRole(r, models.RoleAdmin, caller); err != nil {
			return err
		}
		state, err := r.System.Get()
		if err != nil {
			return fmt.Errorf("failed to load system state: %w", err)
		}
		state.Paused = paused
		state.UpdatedBy = caller
		state.UpdatedAt = s.now()
		return r.System.Save(state)
	})
}

// Paused reports the state of the global pause switch
func (s *AccessService) Paused() (bool, error) {
	state, err := s.repos.System.Get()
	if err != nil {
		return false, fmt.Errorf("failed to load system state: %w", err)
	}
	return state.Paused, nil
}

// RegisterAgent registers an agent identity. Admin only. Re-registration is
// rejected while the existing record is active; an inactive record is
// reactivated in place.
func (s *AccessService) RegisterAgent(caller string, req *RegisterAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !validAddress(req.Address) {
		return nil, apperrors.NewValidationError("address", "address must be a non-zero identity")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var agent *models.Agent
	err := s.tx(func(r *repository.Set) error {
		if err := requireRole(r, models.RoleAdmin, caller); err != nil {
			return err
		}

		existing, err := r.Agents.GetByAddress(req.Address)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing agent: %w", err)
		}
		if existing != nil {
			if existing.Active {
				return apperrors.ErrAgentExists
			}
			existing.Name = req.Name
			existing.Active = true
			existing.RegisteredAt = s.now()
			if err := r.Agents.Update(existing); err != nil {
				return fmt.Errorf("failed to reactivate agent: %w", err)
			}
			agent = existing
			return nil
		}

		agent = &models.Agent{
			Address:      req.Address,
			Name:         req.Name,
			Active:       true,
			RegisteredAt: s.now(),
		}
		if err := r.Agents.Create(agent); err != nil {
			return fmt.Errorf("failed to register agent: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toAgentResponse(agent), nil
}

// DeactivateAgent marks an agent registration inactive. Admin only.
func (s *AccessService) DeactivateAgent(caller, address string) (*AgentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var agent *models.Agent
	err := s.tx(func(r *repository.Set) error {
		if err := requireRole(r, models.RoleAdmin, caller); err != nil {
			return err
		}
		existing, err := r.Agents.GetByAddress(address)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAgentNotFound
			}
			return fmt.Errorf("failed to get agent: %w", err)
		}
		existing.Active = false
		if err := r.Agents.Update(existing); err != nil {
			return fmt.Errorf("failed to deactivate agent: %w", err)
		}
		agent = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toAgentResponse(agent), nil
}

// GetAgent retrieves an agent registration by address
func (s *AccessService) GetAgent(address string) (*AgentResponse, error) {
	agent, err := s.repos.Agents.GetByAddress(address)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return s.toAgentResponse(agent), nil
}

// GetAgents retrieves all agent registrations with pagination
func (s *AccessService) GetAgents(page, pageSize int) (*AgentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	agents, total, err := s.repos.Agents.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get agents: %w", err)
	}

	responses := make([]AgentResponse, len(agents))
	for i, agent := range agents {
		responses[i] = *s.toAgentResponse(&agent)
	}

	return &AgentListResponse{
		Agents:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toAgentResponse converts an agent model to response
func (s *AccessService) toAgentResponse(agent *models.Agent) *AgentResponse {
	return &AgentResponse{
		ID:           agent.ID,
		Address:      agent.Address,
		Name:         agent.Name,
		Active:       agent.Active,
		RegisteredAt: agent.RegisteredAt,
		LastActiveAt: agent.LastActiveAt,
	}
}
