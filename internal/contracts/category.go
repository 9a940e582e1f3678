package contracts

import (
	"github.com/ronaldorededigital/confin/internal/domain/category"
)

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"required,oneof=INCOME EXPENSE_FIXED EXPENSE_INSTALLMENT EXPENSE_VARIABLE"`
}

type CategoryUpdateRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"omitempty,oneof=INCOME EXPENSE_FIXED EXPENSE_INSTALLMENT EXPENSE_VARIABLE"`
}

type CategoryResponse struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsDefault bool   `json:"isDefault"`
}

func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		Id:        c.Id.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		IsDefault: c.IsDefault,
	}
}

func ToCategoryResponses(categories []*category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
