package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/domain/admin"
	"github.com/ronaldorededigital/confin/internal/domain/auth"
	"github.com/ronaldorededigital/confin/internal/domain/category"
	"github.com/ronaldorededigital/confin/internal/domain/dashboard"
	"github.com/ronaldorededigital/confin/internal/domain/installment"
	"github.com/ronaldorededigital/confin/internal/domain/ticket"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/logger"
	"github.com/ronaldorededigital/confin/internal/middleware"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type Handler struct {
	JwtService         *middleware.JwtService
	AuthService        *auth.Service
	UserService        *user.Service
	TransactionService *transaction.Service
	InstallmentService *installment.Service
	CategoryService    *category.Service
	DashboardService   *dashboard.Service
	TicketService      *ticket.Service
	AdminService       *admin.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) GetTenantIDFromContext(c *gin.Context) (ulid.ULID, error) {
	tenantIDStr, exists := c.Get("tenant_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	tenantID, err := pkg.ParseULID(tenantIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return tenantID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
