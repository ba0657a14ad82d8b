package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StateError represents an operation attempted against an entity whose
// current lifecycle state does not allow it
type StateError struct {
	Entity  string
	Message string
}

func (e *StateError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	return e.Message
}

// Is enables errors.Is() comparison for StateError
func (e *StateError) Is(target error) bool {
	t, ok := target.(*StateError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrProposalNotFound     = &NotFoundError{Entity: "proposal"}
	ErrAgentNotFound        = &NotFoundError{Entity: "agent"}
	ErrVoteNotFound         = &NotFoundError{Entity: "vote"}
	ErrAccountNotFound      = &NotFoundError{Entity: "account"}
)

// Already Exists Errors
var (
	ErrAgentExists   = &AlreadyExistsError{Entity: "agent", Context: "with this address while still active"}
	ErrAlreadyMember = &AlreadyExistsError{Entity: "membership", Context: "for this address in the organization"}
)

// Authorization Errors
var (
	ErrUnauthorized   = &AuthorizationError{Message: "caller does not hold the required role"}
	ErrCallerNotFound = &AuthenticationError{Message: "caller address not found in context"}
)

// Lifecycle / State Errors
var (
	ErrOrganizationInactive = &StateError{Entity: "organization", Message: "organization is deactivated"}
	ErrSystemPaused         = &StateError{Entity: "system", Message: "system is paused"}
	ErrProposalNotPending   = &StateError{Entity: "proposal", Message: "proposal is not pending"}
	ErrProposalNotActive    = &StateError{Entity: "proposal", Message: "proposal is not active"}
	ErrProposalNotApproved  = &StateError{Entity: "proposal", Message: "proposal is not approved"}
	ErrExecutionNotApproved = &StateError{Entity: "proposal", Message: "execution has not been approved"}
	ErrVotingStillOpen      = &StateError{Entity: "proposal", Message: "voting period has not ended"}
	ErrVotingClosed         = &StateError{Entity: "proposal", Message: "voting period has ended"}
)

// Governance Business Logic Errors
var (
	ErrNotAMember           = errors.New("caller holds no stake in the organization")
	ErrInsufficientStake    = errors.New("stake amount is below the organization minimum")
	ErrAssetMismatch        = errors.New("sent asset or amount does not match the declared transfer")
	ErrDuplicateVote        = errors.New("caller has already voted on this proposal")
	ErrStakeTooRecent       = errors.New("stake was locked too recently to vote")
	ErrInsufficientTreasury = errors.New("treasury balance is below the requested amount")
	ErrTransferFailed       = errors.New("asset transfer failed")
	ErrAmountOverflow       = errors.New("amount arithmetic overflows")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsState checks if an error is a StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStateError creates a new StateError
func NewStateError(entity, message string) error {
	return &StateError{Entity: entity, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
