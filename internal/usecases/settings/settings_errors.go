package settings

import "errors"

// Erros específicos para o contexto de configurações da loja
var (
	ErrStoreIDRequired    = errors.New("store ID is required")
	ErrTemplateIDRequired = errors.New("template ID is required")
	ErrTemplateNotFound   = errors.New("email template not found")
	ErrInvalidTemplate    = errors.New("invalid email template")
	ErrInvalidCapiConfig  = errors.New("invalid CAPI settings")
	ErrGenerateID         = errors.New("error generating template ID")
)
