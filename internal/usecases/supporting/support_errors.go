package supporting

import "errors"

// Erros específicos para o contexto de suporte a pedidos
var (
	ErrStoreIDRequired   = errors.New("store ID is required")
	ErrOrderIDRequired   = errors.New("order ID is required")
	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreDisconnected = errors.New("store is disconnected")
	ErrInvalidRefund     = errors.New("invalid refund request")
)
