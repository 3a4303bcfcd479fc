package selling

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/internal/usecases/cataloging"
)

func testSnapshot() *cataloging.Snapshot {
	bakeries := []*domain.Bakery{
		{ID: "BKR001", Name: "Padaria Central", Phone: "11999990001"},
		{ID: "BKR002", Name: "Padaria do Bairro", Phone: "11999990002"},
	}
	items := []*domain.Item{
		{ID: "ITM001", Name: "Pão Francês", UnitPrice: decimal.RequireFromString("0.75")},
		{ID: "ITM002", Name: "Bolo de Fubá", UnitPrice: decimal.RequireFromString("20.00")},
		{ID: "ITM003", Name: "Sonho", UnitPrice: decimal.RequireFromString("5.50")},
	}
	return cataloging.NewSnapshot(bakeries, items)
}

func TestCartBuilder_AddLine(t *testing.T) {
	t.Run("deve congelar o preço do catálogo na linha", func(t *testing.T) {
		builder := NewCartBuilder(testSnapshot())

		err := builder.AddLine("ITM002", 2)
		require.NoError(t, err)

		cart := builder.Cart()
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, "ITM002", cart.Lines[0].ItemID)
		assert.Equal(t, "Bolo de Fubá", cart.Lines[0].Name)
		assert.Equal(t, 2, cart.Lines[0].Qty)
		assert.True(t, cart.Lines[0].UnitPrice.Equal(decimal.RequireFromString("20.00")))
		assert.True(t, cart.Lines[0].Amount.Equal(decimal.RequireFromString("40.00")))
	})

	t.Run("deve acumular quantidade na linha existente do mesmo item", func(t *testing.T) {
		builder := NewCartBuilder(testSnapshot())

		require.NoError(t, builder.AddLine("ITM001", 2))
		require.NoError(t, builder.AddLine("ITM003", 1))
		require.NoError(t, builder.AddLine("ITM001", 3))

		cart := builder.Cart()
		require.Len(t, cart.Lines, 2)
		assert.Equal(t, 5, cart.Lines[0].Qty)
		assert.True(t, cart.Lines[0].Amount.Equal(decimal.RequireFromString("3.75")))
		assert.Equal(t, "ITM003", cart.Lines[1].ItemID)
	})

	t.Run("deve rejeitar quantidade menor que 1 sem alterar o carrinho", func(t *testing.T) {
		builder := NewCartBuilder(testSnapshot())
		require.NoError(t, builder.AddLine("ITM001", 1))

		err := builder.AddLine("ITM001", 0)
		assert.ErrorIs(t, err, ErrQuantityTooLow)

		err = builder.AddLine("ITM003", -2)
		assert.ErrorIs(t, err, ErrQuantityTooLow)

		cart := builder.Cart()
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Qty)
	})

	t.Run("deve rejeitar item fora do catálogo", func(t *testing.T) {
		builder := NewCartBuilder(testSnapshot())

		err := builder.AddLine("ITM999", 1)
		assert.ErrorIs(t, err, ErrUnknownItem)
		assert.Empty(t, builder.Cart().Lines)
	})
}

func TestCartBuilder_SetBakery(t *testing.T) {
	builder := NewCartBuilder(testSnapshot())

	err := builder.SetBakery("BKR999")
	assert.ErrorIs(t, err, ErrUnknownBakery)
	assert.Empty(t, builder.Cart().BakeryID)

	err = builder.SetBakery("BKR001")
	require.NoError(t, err)
	assert.Equal(t, "BKR001", builder.Cart().BakeryID)
}

func TestCartBuilder_UpdateLineQuantity(t *testing.T) {
	builder := NewCartBuilder(testSnapshot())
	require.NoError(t, builder.AddLine("ITM003", 2))

	t.Run("deve recalcular o valor da linha", func(t *testing.T) {
		err := builder.UpdateLineQuantity(0, 4)
		require.NoError(t, err)

		line := builder.Cart().Lines[0]
		assert.Equal(t, 4, line.Qty)
		assert.True(t, line.Amount.Equal(decimal.RequireFromString("22.00")))
	})

	t.Run("índice fora do intervalo não altera o carrinho", func(t *testing.T) {
		err := builder.UpdateLineQuantity(5, 1)
		assert.ErrorIs(t, err, ErrLineOutOfRange)

		err = builder.UpdateLineQuantity(-1, 1)
		assert.ErrorIs(t, err, ErrLineOutOfRange)

		line := builder.Cart().Lines[0]
		assert.Equal(t, 4, line.Qty)
	})

	t.Run("quantidade inválida não altera o carrinho", func(t *testing.T) {
		err := builder.UpdateLineQuantity(0, 0)
		assert.ErrorIs(t, err, ErrQuantityTooLow)
		assert.Equal(t, 4, builder.Cart().Lines[0].Qty)
	})
}

func TestCartBuilder_RemoveLine(t *testing.T) {
	builder := NewCartBuilder(testSnapshot())
	require.NoError(t, builder.AddLine("ITM001", 1))
	require.NoError(t, builder.AddLine("ITM002", 1))

	err := builder.RemoveLine(9)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	assert.Len(t, builder.Cart().Lines, 2)

	err = builder.RemoveLine(0)
	require.NoError(t, err)
	require.Len(t, builder.Cart().Lines, 1)
	assert.Equal(t, "ITM002", builder.Cart().Lines[0].ItemID)
}

func TestCartBuilder_Total(t *testing.T) {
	builder := NewCartBuilder(testSnapshot())
	assert.True(t, builder.Total().Equal(decimal.Zero))

	// 2 × 20.00 + 1 × 5.50 + 2 × 0.75 = 47.00
	require.NoError(t, builder.AddLine("ITM002", 2))
	require.NoError(t, builder.AddLine("ITM003", 1))
	require.NoError(t, builder.AddLine("ITM001", 2))

	assert.True(t, builder.Total().Equal(decimal.RequireFromString("47.00")))
}
