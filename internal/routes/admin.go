package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/contracts"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

func (h *Handler) GetAdminOverview(c *gin.Context) {
	ctx := c.Request.Context()
	overview, err := h.AdminService.GetOverview(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToAdminOverviewResponse(overview))
}

func (h *Handler) ListPlatformUsers(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	users, total, err := h.AdminService.ListUsers(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToAdminUserListResponse(users, total, pagination.Page, pagination.Limit))
}

func (h *Handler) SetUserPlan(c *gin.Context) {
	userID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.SetPlanRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	updated, err := h.AdminService.SetUserPlan(ctx, userID, user.Plan(body.Plan))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToUserResponse(updated))
}

func (h *Handler) ListAllTickets(c *gin.Context) {
	ctx := c.Request.Context()
	tickets, err := h.AdminService.ListTickets(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": contracts.ToTicketResponses(tickets)})
}

func (h *Handler) ResolveTicket(c *gin.Context) {
	ticketID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	resolved, err := h.AdminService.ResolveTicket(ctx, ticketID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToTicketResponse(resolved))
}
