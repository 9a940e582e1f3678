package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/contracts"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

// GetDashboard monta a visão mensal: resumo, lançamentos, tendência e os
// insights da ConFinance IA. Mês e ano ausentes caem no mês corrente.
func (h *Handler) GetDashboard(c *gin.Context) {
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
	response, err := h.DashboardService.GetDashboard(ctx, tenantID, userName, year, monthNum)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToDashboardResponse(response))
}
