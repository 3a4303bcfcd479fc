package cataloging

import "errors"

// Erros específicos para o contexto de catálogo
var (
	// Erros de validação
	ErrNameRequired  = errors.New("name is required")
	ErrPhoneRequired = errors.New("phone is required")
	ErrNegativePrice = errors.New("unit price cannot be negative")

	// Erros de recurso
	ErrBakeryNotFound = errors.New("bakery not found")
	ErrItemNotFound   = errors.New("item not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// IsValidationError verifica se o erro é uma falha local de validação
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrPhoneRequired) ||
		errors.Is(err, ErrNegativePrice)
}
