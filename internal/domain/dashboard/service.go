// Package dashboard compõe a tela principal: resumo do mês, lançamentos,
// tendência dos últimos meses e os insights da ConFinance IA.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/domain/insight"
	"github.com/ronaldorededigital/confin/internal/domain/summary"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

// trendMonths é quantos meses a série de tendência cobre, incluindo o atual.
const trendMonths = 6

type Response struct {
	Summary      summary.FinancialSummary   `json:"summary"`
	Transactions []*transaction.Transaction `json:"transactions"`
	MonthlyTrend []*TrendItem               `json:"monthlyTrend"`
	Insights     []string                   `json:"insights"`
}

type TrendItem struct {
	Year     int         `json:"year"`
	Month    int         `json:"month"`
	Income   money.Cents `json:"incomeCents"`
	Expenses money.Cents `json:"expensesCents"`
	Balance  money.Cents `json:"balanceCents"`
}

type Service struct {
	Transactions *transaction.Service
	Advisor      *insight.Advisor
}

func NewService(transactions *transaction.Service, advisor *insight.Advisor) *Service {
	return &Service{Transactions: transactions, Advisor: advisor}
}

// GetDashboard monta a visão do mês pedido. Mês e ano fora de faixa caem no
// mês corrente. A geração de insights degrada sozinha; falha dela nunca
// derruba o painel.
func (s *Service) GetDashboard(ctx context.Context, tenantID ulid.ULID, userName string, year, monthNumber int) (*Response, error) {
	now := time.Now()
	if monthNumber <= 0 || monthNumber > 12 {
		monthNumber = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}
	month := time.Month(monthNumber)

	// Uma única consulta cobre o mês exibido e a janela de tendência.
	trendStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendMonths - 1), 0)
	transactions, err := s.Transactions.ListRange(ctx, tenantID, trendStart.Year(), trendStart.Month(), trendMonths)
	if err != nil {
		return nil, err
	}

	monthTransactions := filterMonth(transactions, year, month)
	sort.Slice(monthTransactions, func(i, j int) bool {
		return monthTransactions[i].Date.After(monthTransactions[j].Date)
	})

	monthSummary := summary.ForTransactions(monthTransactions)

	return &Response{
		Summary:      monthSummary,
		Transactions: monthTransactions,
		MonthlyTrend: buildTrend(transactions, trendStart),
		Insights:     s.Advisor.Generate(ctx, userName, year, month, monthSummary, monthTransactions),
	}, nil
}

// GetInsights devolve só a lista de insights do mês, para a rota dedicada.
func (s *Service) GetInsights(ctx context.Context, tenantID ulid.ULID, userName string, year, monthNumber int) ([]string, error) {
	now := time.Now()
	if monthNumber <= 0 || monthNumber > 12 {
		monthNumber = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}
	month := time.Month(monthNumber)

	transactions, err := s.Transactions.ListMonth(ctx, tenantID, year, month)
	if err != nil {
		return nil, err
	}

	return s.Advisor.Generate(ctx, userName, year, month, summary.ForTransactions(transactions), transactions), nil
}

func filterMonth(transactions []*transaction.Transaction, year int, month time.Month) []*transaction.Transaction {
	out := make([]*transaction.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Date.Year() == year && tx.Date.Month() == month {
			out = append(out, tx)
		}
	}
	return out
}

func buildTrend(transactions []*transaction.Transaction, start time.Time) []*TrendItem {
	items := make([]*TrendItem, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		ref := start.AddDate(0, i, 0)
		s := summary.ForMonth(transactions, ref.Year(), ref.Month())
		items = append(items, &TrendItem{
			Year:     ref.Year(),
			Month:    int(ref.Month()),
			Income:   s.Income,
			Expenses: s.Income - s.Balance,
			Balance:  s.Balance,
		})
	}
	return items
}
