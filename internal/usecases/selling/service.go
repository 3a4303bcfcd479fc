package selling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

// Committer converte um carrinho em uma venda imutável persistida.
type Committer interface {
	Commit(ctx context.Context, ownerID int, cart *domain.Cart) (string, error)
	CommitHistorical(ctx context.Context, ownerID int, cart *domain.Cart, date time.Time) (string, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	bakeryRepo repository.BakeryRepository
	now        func() time.Time
}

// NewService cria uma nova instância do serviço de commit de vendas
func NewService(
	saleRepo repository.SaleRepository,
	bakeryRepo repository.BakeryRepository,
) *Service {
	return &Service{
		saleRepo:   saleRepo,
		bakeryRepo: bakeryRepo,
		now:        time.Now,
	}
}

// Commit registra uma venda de balcão. A venda nasce com status pending até o
// armazenamento remoto reconhecer a sincronização. Dois commits de carrinhos
// estruturalmente idênticos produzem duas vendas distintas: deduplicação é
// responsabilidade do operador, não do sistema.
func (s *Service) Commit(ctx context.Context, ownerID int, cart *domain.Cart) (string, error) {
	return s.commit(ctx, ownerID, cart, s.now(), domain.SaleStatusPending)
}

// CommitHistorical registra uma venda retroativa na data informada (meio-dia
// local, como no lançamento manual). Entradas históricas representam
// reconciliação de atividade passada, então nascem já com status saved.
func (s *Service) CommitHistorical(ctx context.Context, ownerID int, cart *domain.Cart, date time.Time) (string, error) {
	now := s.now()
	if date.After(now) {
		return "", fmt.Errorf("%w: %s", ErrFutureDate, date.Format(time.DateOnly))
	}

	createdAt := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
	return s.commit(ctx, ownerID, cart, createdAt, domain.SaleStatusSaved)
}

func (s *Service) commit(
	ctx context.Context,
	ownerID int,
	cart *domain.Cart,
	createdAt time.Time,
	status domain.SaleStatus,
) (string, error) {
	// Pré-condições: sem padaria ou sem itens não há venda e nenhum efeito
	// colateral acontece
	if cart == nil || cart.BakeryID == "" || len(cart.Lines) == 0 {
		return "", ErrIncompleteSale
	}

	bakery, err := s.bakeryRepo.GetByID(cart.BakeryID, ownerID)
	if err != nil {
		return "", NewSellingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if bakery == nil {
		return "", fmt.Errorf("%w: padaria %s não resolvida no catálogo", ErrIncompleteSale, cart.BakeryID)
	}

	total, err := verifyCartTotals(cart)
	if err != nil {
		return "", err
	}

	commitRef, _ := utils.GenerateID()
	logger := logrus.WithFields(logrus.Fields{
		"commit_ref": commitRef,
		"bakery_id":  bakery.ID,
		"owner_id":   ownerID,
		"lines":      len(cart.Lines),
		"status":     status,
	})

	items := make([]domain.SaleItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, domain.SaleItem{
			ItemID:    line.ItemID,
			Name:      line.Name,
			Qty:       line.Qty,
			UnitPrice: line.UnitPrice,
			Amount:    line.Amount,
		})
	}

	sale := &domain.Sale{
		ID:          uuid.NewString(),
		BakeryID:    bakery.ID,
		BakeryName:  bakery.Name,
		BakeryPhone: bakery.Phone,
		Items:       items,
		TotalAmount: total,
		Status:      status,
		CreatedBy:   ownerID,
		CreatedAt:   createdAt,
	}

	if err := s.saleRepo.Insert(sale); err != nil {
		logger.WithError(err).Error("Erro ao persistir venda")
		return "", NewSellingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	// A recência da padaria reflete atividade do operador, não a data da
	// transação: sempre "agora", mesmo em vendas retroativas. Falha aqui é
	// degradação aceitável e nunca desfaz a venda já persistida.
	if err := s.bakeryRepo.TouchLastUsed(bakery.ID, ownerID, s.now()); err != nil {
		logger.WithError(err).Warn("Erro ao atualizar recência da padaria; venda mantida")
	}

	// Carrinho consumido: esvaziado para que um novo commit do mesmo valor
	// falhe nas pré-condições
	cart.Lines = nil
	cart.BakeryID = ""

	logger.WithField("sale_id", sale.ID).Info("Venda registrada com sucesso")

	return sale.ID, nil
}

// verifyCartTotals reconfere cada linha (qty × preço unitário) contra o valor
// armazenado e devolve o total. A redundância é proposital: serve de
// verificação de integridade no momento do commit.
func verifyCartTotals(cart *domain.Cart) (decimal.Decimal, error) {
	total := decimal.Zero

	for i, line := range cart.Lines {
		expected := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Qty)))
		if !expected.Equal(line.Amount) {
			return decimal.Zero, fmt.Errorf(
				"%w: linha %d tem valor %s, esperado %s",
				ErrTotalMismatch, i, line.Amount.String(), expected.String(),
			)
		}
		total = total.Add(line.Amount)
	}

	if !total.Equal(cart.Total()) {
		return decimal.Zero, ErrTotalMismatch
	}

	return total, nil
}
