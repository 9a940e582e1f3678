// Package plan descreve o que cada plano da plataforma permite. Os limites
// são aplicados pelo middleware de plano antes das rotas de escrita.
package plan

import (
	"github.com/ronaldorededigital/confin/internal/domain/user"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

// PremiumMonthlyPrice é o preço de tabela do plano premium, usado no painel
// administrativo para estimar receita.
const PremiumMonthlyPrice = money.Cents(1990)

type PlanLimits struct {
	MaxTransactions int
	MaxCategories   int
	MaxInstallments int
	// MaxAIRequestsPerDay limita os insights de IA do plano gratuito;
	// premium é ilimitado.
	MaxAIRequestsPerDay int
	HasMultipleUsers    bool
}

var Limits = map[user.Plan]PlanLimits{
	user.PlanFree: {
		MaxTransactions:     100,
		MaxCategories:       10,
		MaxInstallments:     12,
		MaxAIRequestsPerDay: 10,
		HasMultipleUsers:    false,
	},
	user.PlanPremium: {
		MaxTransactions:     -1,
		MaxCategories:       -1,
		MaxInstallments:     48,
		MaxAIRequestsPerDay: -1,
		HasMultipleUsers:    true,
	},
}

func GetLimits(p user.Plan) PlanLimits {
	if limits, ok := Limits[p]; ok {
		return limits
	}
	return Limits[user.PlanFree]
}

func IsUnlimited(limit int) bool {
	return limit == -1
}
