package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/domain/plan"
	"github.com/ronaldorededigital/confin/internal/domain/user"
)

// GetUserPlan devolve o plano do usuário logado e os limites associados,
// para o banner de upgrade da interface.
func (h *Handler) GetUserPlan(c *gin.Context) {
	planValue, exists := c.Get("plan")
	currentPlan := user.PlanFree
	if exists {
		if p, ok := planValue.(user.Plan); ok {
			currentPlan = p
		}
	}

	limits := plan.GetLimits(currentPlan)

	c.JSON(http.StatusOK, gin.H{
		"plan": string(currentPlan),
		"limits": gin.H{
			"maxTransactions":     limits.MaxTransactions,
			"maxCategories":       limits.MaxCategories,
			"maxInstallments":     limits.MaxInstallments,
			"maxAiRequestsPerDay": limits.MaxAIRequestsPerDay,
			"hasMultipleUsers":    limits.HasMultipleUsers,
		},
	})
}
