package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/pkg"
)

// GetInsights expõe a lista de insights sem o resto do painel, para o
// widget que atualiza sozinho.
func (h *Handler) GetInsights(c *gin.Context) {
	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	now := time.Now()
	monthNum := int(now.Month())
	year := now.Year()
	if m, err := pkg.ParseInt(c.DefaultQuery("month", "")); err == nil && m >= 1 && m <= 12 {
		monthNum = m
	}
	if y, err := pkg.ParseInt(c.DefaultQuery("year", "")); err == nil && y > 0 {
		year = y
	}

	userName := c.GetString("user_name")

	ctx := c.Request.Context()
	insights, err := h.DashboardService.GetInsights(ctx, tenantID, userName, year, monthNum)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":    monthNum,
		"year":     year,
		"insights": insights,
	})
}
