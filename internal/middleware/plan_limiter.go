package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/domain/plan"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
)

type ResourceCounter interface {
	CountTransactions(tenantID string) (int64, error)
	CountCategories(tenantID string) (int64, error)
	CountUsers(tenantID string) (int64, error)
}

func respondLimit(c *gin.Context, err *appErrors.AppError) {
	payload := gin.H{
		"error":   err.Code,
		"message": err.Message,
	}
	if len(err.Details) > 0 {
		payload["details"] = err.Details
	}
	c.JSON(err.StatusCode, payload)
	c.Abort()
}

func RequireFeature(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		planValue, exists := c.Get("plan")
		if !exists {
			err := appErrors.WrapError(nil, appErrors.ErrForbidden.Code, "Plano nao encontrado", http.StatusForbidden)
			respondLimit(c, err)
			return
		}

		userPlan, ok := planValue.(user.Plan)
		if !ok {
			err := appErrors.WrapError(nil, appErrors.ErrForbidden.Code, "Plano invalido", http.StatusForbidden)
			respondLimit(c, err)
			return
		}

		limits := plan.GetLimits(userPlan)

		allowed := false
		switch feature {
		case "multiple_users":
			allowed = limits.HasMultipleUsers
		default:
			allowed = true
		}

		if !allowed {
			err := appErrors.WrapError(nil, "PLAN_LIMIT_REACHED",
				"Funcionalidade nao disponivel no seu plano. Faca upgrade para acessar.",
				http.StatusForbidden)
			err.Details = map[string]interface{}{
				"feature":      feature,
				"current_plan": string(userPlan),
			}
			respondLimit(c, err)
			return
		}

		c.Next()
	}
}

// CheckResourceLimit barra criações acima do teto do plano. Os totais são
// contados por tenant, não por usuário.
func CheckResourceLimit(resourceType string, counter ResourceCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		planValue, exists := c.Get("plan")
		if !exists {
			c.Next()
			return
		}

		userPlan, ok := planValue.(user.Plan)
		if !ok {
			c.Next()
			return
		}

		tenantIDValue, exists := c.Get("tenant_id")
		if !exists {
			c.Next()
			return
		}

		tenantID, ok := tenantIDValue.(string)
		if !ok {
			c.Next()
			return
		}

		limits := plan.GetLimits(userPlan)

		var limit int
		var count int64
		var err error

		switch resourceType {
		case "transactions":
			limit = limits.MaxTransactions
			count, err = counter.CountTransactions(tenantID)
		case "categories":
			limit = limits.MaxCategories
			count, err = counter.CountCategories(tenantID)
		case "users":
			limit = 1
			if limits.HasMultipleUsers {
				limit = -1
			}
			count, err = counter.CountUsers(tenantID)
		default:
			c.Next()
			return
		}

		if err != nil {
			c.Next()
			return
		}

		if !plan.IsUnlimited(limit) && int(count) >= limit {
			appErr := appErrors.WrapError(nil, "PLAN_LIMIT_REACHED",
				"Limite do plano atingido. Faca upgrade para criar mais recursos.",
				http.StatusForbidden)
			appErr.Details = map[string]interface{}{
				"resource":     resourceType,
				"current":      count,
				"limit":        limit,
				"current_plan": string(userPlan),
			}
			respondLimit(c, appErr)
			return
		}

		c.Next()
	}
}
