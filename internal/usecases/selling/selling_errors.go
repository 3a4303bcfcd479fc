package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas
var (
	// Erros de validação do carrinho
	ErrQuantityTooLow = errors.New("quantity must be at least 1")
	ErrUnknownItem    = errors.New("item not found in catalog")
	ErrUnknownBakery  = errors.New("bakery not found")
	ErrLineOutOfRange = errors.New("cart line index out of range")

	// Erros de commit
	ErrIncompleteSale = errors.New("sale requires a bakery and at least one item")
	ErrCartConsumed   = errors.New("cart already committed")
	ErrTotalMismatch  = errors.New("cart total does not match line amounts")
	ErrFutureDate     = errors.New("historical sale date cannot be in the future")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// IsValidationError verifica se o erro é uma falha local de validação do
// carrinho: recuperável, sem mudança de estado
func IsValidationError(err error) bool {
	return errors.Is(err, ErrQuantityTooLow) ||
		errors.Is(err, ErrUnknownItem) ||
		errors.Is(err, ErrUnknownBakery) ||
		errors.Is(err, ErrLineOutOfRange) ||
		errors.Is(err, ErrFutureDate)
}

// SellingError é um erro com contexto adicional para o fluxo de venda
type SellingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SaleID  string // ID da venda envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SellingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SellingError) Unwrap() error {
	return e.Err
}

// NewSellingError cria um novo SellingError
func NewSellingError(err error, code string, details string) *SellingError {
	return &SellingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
