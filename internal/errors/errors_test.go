package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "organization"}
		assert.Equal(t, "organization not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "proposal"}
		err2 := &NotFoundError{Entity: "proposal"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "proposal"}
		err2 := &NotFoundError{Entity: "agent"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProposalNotFound, ErrProposalNotFound))
		assert.False(t, errors.Is(ErrProposalNotFound, ErrOrganizationNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrganizationNotFound))
		assert.False(t, IsNotFound(ErrAlreadyMember))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "membership", Context: "for this address in the organization"}
		assert.Equal(t, "membership already exists for this address in the organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "agent"}
		assert.Equal(t, "agent already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "agent", Context: "a"}
		err2 := &AlreadyExistsError{Entity: "agent", Context: "b"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAgentExists))
		assert.False(t, IsAlreadyExists(ErrAgentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "amount", Message: "must be positive"}
		assert.Equal(t, "validation error: amount - must be positive", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "must be positive"}
		assert.Equal(t, "validation error: must be positive", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("amount", "must be positive")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrProposalNotFound))
	})
}

func TestStateError(t *testing.T) {
	t.Run("Error message with entity", func(t *testing.T) {
		err := &StateError{Entity: "proposal", Message: "proposal is not active"}
		assert.Equal(t, "proposal: proposal is not active", err.Error())
	})

	t.Run("Error message without entity", func(t *testing.T) {
		err := &StateError{Message: "system is paused"}
		assert.Equal(t, "system is paused", err.Error())
	})

	t.Run("errors.Is matches identical state errors only", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProposalNotActive, ErrProposalNotActive))
		assert.False(t, errors.Is(ErrProposalNotActive, ErrProposalNotPending))
		assert.False(t, errors.Is(ErrProposalNotActive, ErrSystemPaused))
	})

	t.Run("IsState helper", func(t *testing.T) {
		assert.True(t, IsState(ErrSystemPaused))
		assert.True(t, IsState(ErrVotingClosed))
		assert.False(t, IsState(ErrNotAMember))
	})
}

func TestAuthorizationErrors(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrUnauthorized))
		assert.False(t, IsAuthorization(ErrCallerNotFound))
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrCallerNotFound))
		assert.False(t, IsAuthentication(ErrUnauthorized))
	})
}

func TestGovernanceErrors(t *testing.T) {
	t.Run("sentinel errors compare by identity", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDuplicateVote, ErrDuplicateVote))
		assert.False(t, errors.Is(ErrDuplicateVote, ErrStakeTooRecent))
	})

	t.Run("sentinel errors are not state errors", func(t *testing.T) {
		assert.False(t, IsState(ErrInsufficientTreasury))
		assert.False(t, IsNotFound(ErrTransferFailed))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("ballot")
		assert.Equal(t, "ballot not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewStateError", func(t *testing.T) {
		err := NewStateError("organization", "organization is deactivated")
		assert.True(t, IsState(err))
		assert.True(t, errors.Is(err, ErrOrganizationInactive))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.True(t, IsAuthorization(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing DATABASE_URL")
		assert.True(t, IsConfiguration(err))
		assert.False(t, IsConfiguration(ErrUnauthorized))
	})

	t.Run("helpers see through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("outer"), ErrProposalNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}
