package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/contracts"
	"github.com/ronaldorededigital/confin/internal/domain/category"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryEntity := category.Category{
		TenantId: tenantID,
		Name:     body.Name,
		Type:     transaction.Types(body.Type),
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Create(ctx, &categoryEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ToCategoryResponse(&categoryEntity))
}

// ListCategories devolve padrão e personalizadas juntas. O filtro context
// separa receitas de despesas para os seletores da interface.
func (h *Handler) ListCategories(c *gin.Context) {
	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()

	var categories []*category.Category
	switch c.Query("context") {
	case "income":
		categories, err = h.CategoryService.ListByKind(ctx, tenantID, true)
	case "expense":
		categories, err = h.CategoryService.ListByKind(ctx, tenantID, false)
	default:
		categories, err = h.CategoryService.ListByTenant(ctx, tenantID)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": contracts.ToCategoryResponses(categories)})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.CategoryUpdateRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	categoryEntity := category.Category{
		Id:       categoryID,
		TenantId: tenantID,
		Name:     body.Name,
		Type:     transaction.Types(body.Type),
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Update(ctx, &categoryEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria atualizada com sucesso"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Delete(ctx, categoryID, tenantID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria removida com sucesso"})
}
