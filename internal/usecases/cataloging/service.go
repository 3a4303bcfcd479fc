package cataloging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
)

// BakeryInput são os campos aceitos na criação/edição de uma padaria.
type BakeryInput struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
}

// ItemInput são os campos aceitos na criação/edição de um item do catálogo.
type ItemInput struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CatalogService expõe as visões e a manutenção dos cadastros mestres do
// operador (padarias e itens).
type CatalogService interface {
	Snapshot(ctx context.Context, ownerID int) (*Snapshot, error)
	ListBakeries(ownerID int) ([]*domain.Bakery, error)
	ListItems(ownerID int) ([]*domain.Item, error)
	CreateBakery(ownerID int, input BakeryInput) (*domain.Bakery, bool, error)
	UpdateBakery(ownerID int, id string, input BakeryInput) (*domain.Bakery, error)
	DeleteBakery(ownerID int, id string) error
	CreateItem(ownerID int, input ItemInput) (*domain.Item, error)
	UpdateItem(ownerID int, id string, input ItemInput) (*domain.Item, error)
	DeleteItem(ownerID int, id string) error
}

type Service struct {
	bakeryRepo repository.BakeryRepository
	itemRepo   repository.ItemRepository
	now        func() time.Time
}

// NewService cria uma nova instância do serviço de catálogo
func NewService(
	bakeryRepo repository.BakeryRepository,
	itemRepo repository.ItemRepository,
) *Service {
	return &Service{
		bakeryRepo: bakeryRepo,
		itemRepo:   itemRepo,
		now:        time.Now,
	}
}

// Snapshot busca padarias e itens do operador em paralelo e junta o resultado
// em uma visão imutável do catálogo.
func (s *Service) Snapshot(ctx context.Context, ownerID int) (*Snapshot, error) {
	var (
		bakeries  []*domain.Bakery
		items     []*domain.Item
		bakeryErr error
		itemErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		bakeries, bakeryErr = s.bakeryRepo.ListByOwner(ownerID)
	}()

	go func() {
		defer wg.Done()
		items, itemErr = s.itemRepo.ListByOwner(ownerID)
	}()

	wg.Wait()

	if bakeryErr != nil {
		return nil, fmt.Errorf("erro ao buscar padarias do catálogo: %w", bakeryErr)
	}
	if itemErr != nil {
		return nil, fmt.Errorf("erro ao buscar itens do catálogo: %w", itemErr)
	}

	return NewSnapshot(bakeries, items), nil
}

func (s *Service) ListBakeries(ownerID int) ([]*domain.Bakery, error) {
	return s.bakeryRepo.ListByOwner(ownerID)
}

func (s *Service) ListItems(ownerID int) ([]*domain.Item, error) {
	return s.itemRepo.ListByOwner(ownerID)
}

// CreateBakery cria uma padaria para o operador. Se já existir uma padaria com
// o mesmo telefone, ela é reaproveitada em vez de criar uma duplicata; o
// segundo retorno indica se um registro novo foi de fato criado.
func (s *Service) CreateBakery(ownerID int, input BakeryInput) (*domain.Bakery, bool, error) {
	if input.Name == "" {
		return nil, false, ErrNameRequired
	}
	if input.Phone == "" {
		return nil, false, ErrPhoneRequired
	}

	existing, err := s.bakeryRepo.GetByPhone(input.Phone, ownerID)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao verificar telefone existente: %w", err)
	}
	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"bakery_id": existing.ID,
			"phone":     existing.Phone,
		}).Info("Padaria com mesmo telefone já cadastrada, reaproveitando registro")
		return existing, false, nil
	}

	bakery := &domain.Bakery{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Phone:      input.Phone,
		Address:    input.Address,
		LastUsedAt: s.now(),
		CreatedBy:  ownerID,
	}

	if err := s.bakeryRepo.Create(bakery); err != nil {
		return nil, false, fmt.Errorf("erro ao criar padaria: %w", err)
	}

	return bakery, true, nil
}

func (s *Service) UpdateBakery(ownerID int, id string, input BakeryInput) (*domain.Bakery, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Phone == "" {
		return nil, ErrPhoneRequired
	}

	bakery, err := s.bakeryRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar padaria: %w", err)
	}
	if bakery == nil {
		return nil, ErrBakeryNotFound
	}

	bakery.Name = input.Name
	bakery.Phone = input.Phone
	if input.Address != nil {
		bakery.Address = input.Address
	}

	if err := s.bakeryRepo.Update(bakery); err != nil {
		return nil, fmt.Errorf("erro ao atualizar padaria: %w", err)
	}

	return bakery, nil
}

func (s *Service) DeleteBakery(ownerID int, id string) error {
	bakery, err := s.bakeryRepo.GetByID(id, ownerID)
	if err != nil {
		return fmt.Errorf("erro ao buscar padaria: %w", err)
	}
	if bakery == nil {
		return ErrBakeryNotFound
	}

	return s.bakeryRepo.Delete(id, ownerID)
}

func (s *Service) CreateItem(ownerID int, input ItemInput) (*domain.Item, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.UnitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	item := &domain.Item{
		ID:        uuid.NewString(),
		Name:      input.Name,
		UnitPrice: input.UnitPrice,
		CreatedBy: ownerID,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("erro ao criar item: %w", err)
	}

	return item, nil
}

// UpdateItem altera nome e preço de um item. O novo preço vale apenas para
// carrinhos futuros: linhas de vendas já registradas mantêm o preço congelado.
func (s *Service) UpdateItem(ownerID int, id string, input ItemInput) (*domain.Item, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.UnitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	item, err := s.itemRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar item: %w", err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	item.Name = input.Name
	item.UnitPrice = input.UnitPrice

	if err := s.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("erro ao atualizar item: %w", err)
	}

	return item, nil
}

func (s *Service) DeleteItem(ownerID int, id string) error {
	item, err := s.itemRepo.GetByID(id, ownerID)
	if err != nil {
		return fmt.Errorf("erro ao buscar item: %w", err)
	}
	if item == nil {
		return ErrItemNotFound
	}

	return s.itemRepo.Delete(id, ownerID)
}
