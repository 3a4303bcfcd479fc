package domain

import "github.com/shopspring/decimal"

// RevenueBucket é a receita agregada de um dia do calendário. Derivado, nunca
// persistido: é reconstruído a cada requisição de agregação.
type RevenueBucket struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopItem é a quantidade somada de um item dentro da janela de agregação,
// chaveada pelo nome de exibição do item.
type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AnalyticsReport reúne as métricas derivadas de uma coleção de vendas.
type AnalyticsReport struct {
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
	TodayQuantity int             `json:"today_quantity"`
	DailyRevenue  []RevenueBucket `json:"daily_revenue"`
	TopItems      []TopItem       `json:"top_items"`
}

// Overview são os contadores do painel inicial do operador.
type Overview struct {
	Bakeries     int             `json:"bakeries"`
	Items        int             `json:"items"`
	TotalSales   int             `json:"total_sales"`
	TodayRevenue decimal.Decimal `json:"today_revenue"`
}
