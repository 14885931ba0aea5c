package syncing

import "errors"

// Erros específicos para o contexto de sincronização de contas
var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrCredentialMissing = errors.New("account has no platform credential")
	ErrCredentialExpired = errors.New("platform credential is expired")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrEntityIDRequired  = errors.New("entity ID is required")
)
