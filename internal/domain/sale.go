package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus indica se a venda já foi reconhecida pelo armazenamento remoto.
type SaleStatus string

const (
	// SaleStatusPending marca vendas de balcão aguardando confirmação de sincronização.
	SaleStatusPending SaleStatus = "pending"
	// SaleStatusSaved marca vendas já reconciliadas (entrada histórica ou confirmadas).
	SaleStatusSaved SaleStatus = "saved"
)

// SaleItem é uma linha embutida na venda com o preço congelado no commit.
type SaleItem struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
}

// Sale é o registro imutável de uma transação concluída. Depois de persistida
// só o reconhecimento remoto altera o status; nada mais é atualizado.
type Sale struct {
	ID          string          `json:"id"`
	BakeryID    string          `json:"bakery_id"`
	BakeryName  string          `json:"bakery_name"`
	BakeryPhone string          `json:"bakery_phone"`
	Items       []SaleItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      SaleStatus      `json:"status"`
	CreatedBy   int             `json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LineTotal soma os valores das linhas embutidas. Deve sempre bater com
// TotalAmount; a redundância existe como verificação de integridade.
func (s *Sale) LineTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// QuantitySold soma as quantidades de todas as linhas da venda.
func (s *Sale) QuantitySold() int {
	qty := 0
	for _, item := range s.Items {
		qty += item.Qty
	}
	return qty
}
