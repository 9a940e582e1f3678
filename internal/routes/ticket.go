package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/contracts"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
)

func (h *Handler) OpenTicket(c *gin.Context) {
	var body contracts.TicketCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userName := c.GetString("user_name")

	ctx := c.Request.Context()
	ticketEntity, err := h.TicketService.Open(ctx, tenantID, userID, userName, body.Subject)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ToTicketResponse(ticketEntity))
}

func (h *Handler) ListMyTickets(c *gin.Context) {
	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	tickets, err := h.TicketService.ListByTenant(ctx, tenantID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": contracts.ToTicketResponses(tickets)})
}
