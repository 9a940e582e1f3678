package category

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/config"
	"github.com/ronaldorededigital/confin/internal/domain/shared"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/logger"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type Service struct {
	Repository Repository
	defaults   []DefaultDefinition
}

// NewService monta o serviço com a lista de categorias padrão: a do
// ambiente quando configurada, senão a embutida.
func NewService(repo Repository, cfg *config.Config) *Service {
	defaults := BuiltinDefaults
	if cfg != nil && len(cfg.Categories.Defaults) > 0 {
		parsed := make([]DefaultDefinition, 0, len(cfg.Categories.Defaults))
		for _, def := range cfg.Categories.Defaults {
			t := transaction.Types(def.Type)
			if !t.IsValid() {
				continue
			}
			parsed = append(parsed, DefaultDefinition{Name: shared.NormalizeName(def.Name), Type: t})
		}
		if len(parsed) > 0 {
			defaults = parsed
		}
	}
	return &Service{Repository: repo, defaults: defaults}
}

func (s *Service) Defaults() []DefaultDefinition {
	return s.defaults
}

// Create grava uma categoria personalizada do tenant. Nomes colidindo com
// uma padrão ou com outra personalizada são rejeitados.
func (s *Service) Create(ctx context.Context, cat *Category) error {
	if pkg.IsEmptyULID(cat.TenantId) {
		return appErrors.NewValidationError("tenant_id", "é obrigatório")
	}

	cat.Name = shared.NormalizeName(cat.Name)
	if cat.Name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}
	if !cat.Type.IsValid() {
		return appErrors.NewValidationError("type", "tipo de categoria inválido")
	}
	if s.isDefaultName(cat.Name) {
		return appErrors.NewConflictError("categoria")
	}

	if err := s.checkNameNotExists(ctx, cat.Name, cat.TenantId); err != nil {
		return err
	}

	cat.Id = pkg.GenerateULIDObject()
	cat.IsDefault = false
	cat.CreatedAt = time.Now()
	cat.UpdatedAt = time.Now()

	if err := s.Repository.Create(ctx, cat); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("categoria")
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, cat *Category) error {
	existing, err := s.getCustom(ctx, cat.Id, cat.TenantId)
	if err != nil {
		return err
	}

	cat.Name = shared.NormalizeName(cat.Name)
	if cat.Name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}
	if s.isDefaultName(cat.Name) {
		return appErrors.NewConflictError("categoria")
	}
	if existing.Name != cat.Name {
		if err := s.checkNameNotExists(ctx, cat.Name, cat.TenantId); err != nil {
			return err
		}
	}

	existing.Name = cat.Name
	if cat.Type.IsValid() {
		existing.Type = cat.Type
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Delete remove uma categoria personalizada. As padrão são imutáveis; o id
// determinístico de uma padrão nunca corresponde a linha custom, então cai
// em não-encontrada aqui e vira erro de validação.
func (s *Service) Delete(ctx context.Context, categoryID, tenantID ulid.ULID) error {
	if s.findDefault(tenantID, categoryID) != nil {
		return appErrors.NewValidationError("category", "categorias padrão não podem ser removidas")
	}

	if _, err := s.getCustom(ctx, categoryID, tenantID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, categoryID, tenantID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, categoryID, tenantID ulid.ULID) (*Category, error) {
	cat, err := s.Repository.GetByID(ctx, categoryID, tenantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if def := s.findDefault(tenantID, categoryID); def != nil {
			return def, nil
		}
		return nil, appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return cat, nil
}

// ListByTenant devolve as categorias persistidas do tenant, ordenadas por
// nome. Um tenant sem nenhuma linha enxerga o conjunto padrão sintético, e
// uma falha de leitura degrada para o mesmo conjunto: a lista nunca vem
// vazia e a tela sempre tem o que renderizar.
func (s *Service) ListByTenant(ctx context.Context, tenantID ulid.ULID) ([]*Category, error) {
	custom, err := s.Repository.GetAllByTenant(ctx, tenantID)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("tenant_id", tenantID.String()).
			Msg("Falha ao listar categorias, devolvendo o conjunto padrão")
		return DefaultsForTenant(tenantID, s.defaults), nil
	}
	if len(custom) == 0 {
		return DefaultsForTenant(tenantID, s.defaults), nil
	}

	sort.Slice(custom, func(i, j int) bool { return custom[i].Name < custom[j].Name })
	return custom, nil
}

// ListByKind filtra o catálogo pela partição receita/despesa.
func (s *Service) ListByKind(ctx context.Context, tenantID ulid.ULID, income bool) ([]*Category, error) {
	all, err := s.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	filtered := make([]*Category, 0, len(all))
	for _, cat := range all {
		if cat.IsIncome() == income {
			filtered = append(filtered, cat)
		}
	}
	return filtered, nil
}

func (s *Service) getCustom(ctx context.Context, categoryID, tenantID ulid.ULID) (*Category, error) {
	cat, err := s.Repository.GetByID(ctx, categoryID, tenantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return cat, nil
}

func (s *Service) findDefault(tenantID, categoryID ulid.ULID) *Category {
	for _, cat := range DefaultsForTenant(tenantID, s.defaults) {
		if cat.Id == categoryID {
			return cat
		}
	}
	return nil
}

func (s *Service) isDefaultName(name string) bool {
	for _, def := range s.defaults {
		if def.Name == name {
			return true
		}
	}
	return false
}

func (s *Service) checkNameNotExists(ctx context.Context, name string, tenantID ulid.ULID) error {
	_, err := s.Repository.GetByName(ctx, name, tenantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return appErrors.NewConflictError("categoria")
}
