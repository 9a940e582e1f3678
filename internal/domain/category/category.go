// Package category mantém o catálogo de categorias de cada tenant: as
// padrão embutidas (sintéticas, sem linha no banco até serem materializadas)
// e as personalizadas criadas pelos usuários.
package category

import (
	"crypto/sha256"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/domain/transaction"
)

type Category struct {
	Id        ulid.ULID         `json:"id"`
	TenantId  ulid.ULID         `json:"tenantId"`
	Name      string            `json:"name"`
	Type      transaction.Types `json:"type"`
	IsDefault bool              `json:"isDefault"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (c *Category) IsIncome() bool {
	return c.Type == transaction.Income
}

type DefaultDefinition struct {
	Name string
	Type transaction.Types
}

// BuiltinDefaults é a lista embutida de categorias padrão. Pode ser
// sobrescrita por implantação via DEFAULT_CATEGORIES.
var BuiltinDefaults = []DefaultDefinition{
	{Name: "Salário", Type: transaction.Income},
	{Name: "Freelance", Type: transaction.Income},
	{Name: "Investimentos", Type: transaction.Income},
	{Name: "Alimentação", Type: transaction.ExpenseVariable},
	{Name: "Moradia", Type: transaction.ExpenseFixed},
	{Name: "Transporte", Type: transaction.ExpenseVariable},
	{Name: "Saúde", Type: transaction.ExpenseVariable},
	{Name: "Lazer", Type: transaction.ExpenseVariable},
	{Name: "Educação", Type: transaction.ExpenseFixed},
	{Name: "Outros", Type: transaction.ExpenseVariable},
}

// DefaultsForTenant materializa as definições padrão como categorias
// sintéticas do tenant. Os ids são determinísticos: o mesmo tenant sempre
// enxerga os mesmos ids, sem precisar de linha no banco.
func DefaultsForTenant(tenantID ulid.ULID, defs []DefaultDefinition) []*Category {
	now := time.Now()
	categories := make([]*Category, 0, len(defs))
	for _, def := range defs {
		categories = append(categories, &Category{
			Id:        GenerateDeterministicID(tenantID.String(), def.Name),
			TenantId:  tenantID,
			Name:      def.Name,
			Type:      def.Type,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return categories
}

// GenerateDeterministicID deriva um ULID estável de (tenant, nome) via
// sha256, com timestamp fixo para que a ordenação não flutue.
func GenerateDeterministicID(tenantID, categoryName string) ulid.ULID {
	hash := sha256.Sum256([]byte("default_category:" + tenantID + ":" + categoryName))

	timestamp := ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	entropy := [10]byte{}
	copy(entropy[:], hash[:10])

	reader := &deterministicReader{data: entropy[:]}
	return ulid.MustNew(timestamp, reader)
}

type deterministicReader struct {
	data []byte
	pos  int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	return n, nil
}
