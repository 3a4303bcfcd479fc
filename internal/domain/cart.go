package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine é uma linha transitória do carrinho. Existe no máximo uma linha
// por item: adicionar um item já presente acumula a quantidade.
type CartLine struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
}

// Cart é o conjunto de trabalho de uma venda em andamento. Vive apenas em
// memória até ser consumido pelo commit ou descartado; nunca é persistido.
type Cart struct {
	BakeryID   string
	Lines      []CartLine
	TargetDate *time.Time
}

// Total soma os valores de todas as linhas do carrinho.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Amount)
	}
	return total
}

// LineIndex retorna a posição da linha do item informado, ou -1 se ausente.
func (c *Cart) LineIndex(itemID string) int {
	for i, line := range c.Lines {
		if line.ItemID == itemID {
			return i
		}
	}
	return -1
}
