package contracts

import (
	"github.com/ronaldorededigital/confin/internal/domain/dashboard"
	"github.com/ronaldorededigital/confin/internal/domain/summary"
)

type SummaryResponse struct {
	Income        float64 `json:"income"`
	FixedExpenses float64 `json:"fixedExpenses"`
	Installments  float64 `json:"installments"`
	Balance       float64 `json:"balance"`
}

func ToSummaryResponse(s summary.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		Income:        s.Income.Float64(),
		FixedExpenses: s.FixedExpenses.Float64(),
		Installments:  s.Installments.Float64(),
		Balance:       s.Balance.Float64(),
	}
}

type TrendItemResponse struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

type DashboardResponse struct {
	Summary      SummaryResponse       `json:"summary"`
	Transactions []TransactionResponse `json:"transactions"`
	MonthlyTrend []TrendItemResponse   `json:"monthlyTrend"`
	Insights     []string              `json:"insights"`
}

func ToDashboardResponse(r *dashboard.Response) DashboardResponse {
	trend := make([]TrendItemResponse, 0, len(r.MonthlyTrend))
	for _, item := range r.MonthlyTrend {
		trend = append(trend, TrendItemResponse{
			Year:     item.Year,
			Month:    item.Month,
			Income:   item.Income.Float64(),
			Expenses: item.Expenses.Float64(),
			Balance:  item.Balance.Float64(),
		})
	}
	return DashboardResponse{
		Summary:      ToSummaryResponse(r.Summary),
		Transactions: ToTransactionResponses(r.Transactions),
		MonthlyTrend: trend,
		Insights:     r.Insights,
	}
}
