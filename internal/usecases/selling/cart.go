package selling

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
)

// CartBuilder monta um carrinho precificado contra uma visão do catálogo.
// O carrinho é um objeto de valor explícito: nenhum estado global, e toda
// operação inválida deixa o carrinho exatamente como estava.
type CartBuilder struct {
	snapshot *cataloging.Snapshot
	cart     *domain.Cart
}

func NewCartBuilder(snapshot *cataloging.Snapshot) *CartBuilder {
	return &CartBuilder{
		snapshot: snapshot,
		cart:     &domain.Cart{},
	}
}

// SetBakery define a padaria alvo da venda, validando contra o catálogo.
func (b *CartBuilder) SetBakery(bakeryID string) error {
	if b.snapshot.BakeryByID(bakeryID) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownBakery, bakeryID)
	}

	b.cart.BakeryID = bakeryID
	return nil
}

// AddLine adiciona quantidade de um item ao carrinho. Se o item já tem uma
// linha, a quantidade acumula na linha existente; caso contrário uma linha
// nova é anexada congelando o preço unitário atual do catálogo.
func (b *CartBuilder) AddLine(itemID string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: %d", ErrQuantityTooLow, qty)
	}

	item := b.snapshot.ItemByID(itemID)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	if index := b.cart.LineIndex(itemID); index != -1 {
		line := &b.cart.Lines[index]
		line.Qty += qty
		line.Amount = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Qty)))
		return nil
	}

	amount := item.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	b.cart.Lines = append(b.cart.Lines, domain.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		Qty:       qty,
		UnitPrice: item.UnitPrice,
		Amount:    amount,
	})

	return nil
}

// UpdateLineQuantity substitui a quantidade de uma linha e recalcula o valor.
func (b *CartBuilder) UpdateLineQuantity(index int, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: %d", ErrQuantityTooLow, qty)
	}
	if index < 0 || index >= len(b.cart.Lines) {
		return fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}

	line := &b.cart.Lines[index]
	line.Qty = qty
	line.Amount = line.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))

	return nil
}

// RemoveLine remove a linha na posição informada.
func (b *CartBuilder) RemoveLine(index int) error {
	if index < 0 || index >= len(b.cart.Lines) {
		return fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}

	b.cart.Lines = append(b.cart.Lines[:index], b.cart.Lines[index+1:]...)
	return nil
}

// Total soma os valores de todas as linhas do carrinho.
func (b *CartBuilder) Total() decimal.Decimal {
	return b.cart.Total()
}

// Cart expõe o carrinho em construção para o commit.
func (b *CartBuilder) Cart() *domain.Cart {
	return b.cart
}
