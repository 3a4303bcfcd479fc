package reporting

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bakery-ledger-api/infrastructure/repository"
	"github.com/vfg2006/bakery-ledger-api/internal/domain"
	"github.com/vfg2006/bakery-ledger-api/pkg/utils"
)

const (
	// dayLabelLayout é o rótulo estável dos buckets diários ("MMM dd")
	dayLabelLayout = "Jan 02"
	topItemsLimit  = 5
)

// Reporter deriva métricas de uma janela do histórico de vendas.
type Reporter interface {
	Report(ctx context.Context, ownerID int, windowStart time.Time) (*domain.AnalyticsReport, error)
	Overview(ctx context.Context, ownerID int) (*domain.Overview, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	bakeryRepo repository.BakeryRepository
	itemRepo   repository.ItemRepository
	now        func() time.Time
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	saleRepo repository.SaleRepository,
	bakeryRepo repository.BakeryRepository,
	itemRepo repository.ItemRepository,
) *Service {
	return &Service{
		saleRepo:   saleRepo,
		bakeryRepo: bakeryRepo,
		itemRepo:   itemRepo,
		now:        time.Now,
	}
}

// Report busca as vendas da janela [windowStart, agora] e agrega as métricas.
func (s *Service) Report(ctx context.Context, ownerID int, windowStart time.Time) (*domain.AnalyticsReport, error) {
	now := s.now()

	sales, err := s.saleRepo.GetByDateRange(ownerID, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas para o relatório: %w", err)
	}

	// Buckets seguem a ordem cronológica de primeira ocorrência
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].CreatedAt.Before(sales[j].CreatedAt)
	})

	return Aggregate(sales, now), nil
}

// Overview monta os contadores do painel, buscando as quatro métricas em
// paralelo e juntando o resultado.
func (s *Service) Overview(ctx context.Context, ownerID int) (*domain.Overview, error) {
	now := s.now()
	todayStart := utils.StartOfDay(now)

	var (
		bakeryCount int
		itemCount   int
		salesCount  int
		todaySales  []*domain.Sale

		bakeryErr error
		itemErr   error
		salesErr  error
		todayErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		bakeryCount, bakeryErr = s.bakeryRepo.CountByOwner(ownerID)
	}()

	go func() {
		defer wg.Done()
		itemCount, itemErr = s.itemRepo.CountByOwner(ownerID)
	}()

	go func() {
		defer wg.Done()
		salesCount, salesErr = s.saleRepo.CountByOwner(ownerID)
	}()

	go func() {
		defer wg.Done()
		todaySales, todayErr = s.saleRepo.GetByDateRange(ownerID, todayStart, now)
	}()

	wg.Wait()

	for _, err := range []error{bakeryErr, itemErr, salesErr, todayErr} {
		if err != nil {
			return nil, fmt.Errorf("erro ao montar visão geral: %w", err)
		}
	}

	todayRevenue := decimal.Zero
	for _, sale := range todaySales {
		todayRevenue = todayRevenue.Add(sale.TotalAmount)
	}

	return &domain.Overview{
		Bakeries:     bakeryCount,
		Items:        itemCount,
		TotalSales:   salesCount,
		TodayRevenue: todayRevenue,
	}, nil
}

// Aggregate deriva todas as métricas de uma coleção de vendas. É uma função
// pura sobre a entrada: sem estado escondido, re-derivável, segura para
// chamadas repetidas com janelas diferentes.
func Aggregate(sales []*domain.Sale, now time.Time) *domain.AnalyticsReport {
	report := &domain.AnalyticsReport{
		TodayRevenue: decimal.Zero,
		DailyRevenue: make([]domain.RevenueBucket, 0),
		TopItems:     make([]domain.TopItem, 0),
	}

	todayStart := utils.StartOfDay(now)

	// Métricas de hoje: vendas com createdAt em [início do dia, agora)
	for _, sale := range sales {
		if !sale.CreatedAt.Before(todayStart) && sale.CreatedAt.Before(now) {
			report.TodayRevenue = report.TodayRevenue.Add(sale.TotalAmount)
			report.TodayQuantity += sale.QuantitySold()
		}
	}

	// Receita por dia do calendário, na ordem de primeira ocorrência. Dias sem
	// venda não geram bucket: a série não é contínua de propósito.
	bucketIndex := make(map[string]int)
	for _, sale := range sales {
		label := sale.CreatedAt.Format(dayLabelLayout)
		if index, ok := bucketIndex[label]; ok {
			report.DailyRevenue[index].Revenue = report.DailyRevenue[index].Revenue.Add(sale.TotalAmount)
			continue
		}

		bucketIndex[label] = len(report.DailyRevenue)
		report.DailyRevenue = append(report.DailyRevenue, domain.RevenueBucket{
			Date:    label,
			Revenue: sale.TotalAmount,
		})
	}

	// Top itens por quantidade, chaveados pelo nome de exibição: itens
	// renomeados que compartilham nome são somados juntos (limitação conhecida)
	quantityByName := make(map[string]int)
	order := make([]string, 0)
	for _, sale := range sales {
		for _, item := range sale.Items {
			if _, ok := quantityByName[item.Name]; !ok {
				order = append(order, item.Name)
			}
			quantityByName[item.Name] += item.Qty
		}
	}

	topItems := make([]domain.TopItem, 0, len(order))
	for _, name := range order {
		topItems = append(topItems, domain.TopItem{Name: name, Quantity: quantityByName[name]})
	}

	// Ordenação estável: empates preservam a ordem de primeira ocorrência
	sort.SliceStable(topItems, func(i, j int) bool {
		return topItems[i].Quantity > topItems[j].Quantity
	})

	if len(topItems) > topItemsLimit {
		topItems = topItems[:topItemsLimit]
	}
	report.TopItems = topItems

	return report
}
