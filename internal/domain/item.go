package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item é um produto do catálogo do operador. Mudanças de preço não afetam
// vendas já registradas: cada linha de venda congela o preço no momento do
// commit.
type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedBy int             `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
