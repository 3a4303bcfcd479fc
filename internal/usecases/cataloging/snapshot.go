package cataloging

import "github.com/vfg2006/bakery-ledger-api/internal/domain"

// Snapshot é uma visão somente leitura do catálogo do operador em um instante.
// O construtor de carrinho valida itens e congela preços contra esta visão,
// não contra o banco: mudanças de preço no meio de uma venda não a afetam.
type Snapshot struct {
	Bakeries []*domain.Bakery
	Items    []*domain.Item

	itemsByID  map[string]*domain.Item
	bakeryByID map[string]*domain.Bakery
}

func NewSnapshot(bakeries []*domain.Bakery, items []*domain.Item) *Snapshot {
	snapshot := &Snapshot{
		Bakeries:   bakeries,
		Items:      items,
		itemsByID:  make(map[string]*domain.Item, len(items)),
		bakeryByID: make(map[string]*domain.Bakery, len(bakeries)),
	}

	for _, item := range items {
		snapshot.itemsByID[item.ID] = item
	}
	for _, bakery := range bakeries {
		snapshot.bakeryByID[bakery.ID] = bakery
	}

	return snapshot
}

// ItemByID retorna o item do catálogo, ou nil se desconhecido.
func (s *Snapshot) ItemByID(id string) *domain.Item {
	return s.itemsByID[id]
}

// BakeryByID retorna a padaria do catálogo, ou nil se desconhecida.
func (s *Snapshot) BakeryByID(id string) *domain.Bakery {
	return s.bakeryByID[id]
}
