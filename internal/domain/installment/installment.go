// Package installment expande uma compra parcelada em N lançamentos
// mensais datados e reconstrói grupos de parcelas para remoção.
package installment

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

const (
	MinCount = 2
	MaxCount = 48
)

// Request descreve uma compra parcelada informada pelo usuário.
type Request struct {
	TenantId    ulid.ULID
	UserId      ulid.ULID
	Description string
	Amount      money.Cents
	Date        time.Time
	Category    string

	// Count é o número de parcelas. IsTotalAmount indica que Amount é o
	// valor total da compra (a dividir por Count); falso significa valor
	// por parcela. StartNextMonth desloca a primeira parcela um mês à
	// frente da data informada.
	Count          int
	IsTotalAmount  bool
	StartNextMonth bool
}

// PerInstallment aplica a regra de rateio: Amount/Count arredondado
// half-up quando IsTotalAmount, senão o próprio Amount. O valor é
// calculado uma única vez e repetido em todas as parcelas — o desvio de
// arredondamento acumulado é determinístico e limitado a Count/2 centavos.
func (r Request) PerInstallment() money.Cents {
	if r.IsTotalAmount {
		return r.Amount.Split(r.Count)
	}
	return r.Amount
}

// Expand gera as Count linhas do grupo, datadas mês a mês a partir da data
// base (deslocada um mês quando StartNextMonth), com o dia do mês grampeado
// no último dia válido quando o mês alvo é mais curto. Cada linha recebe
// {current: i+1, total: Count} e o groupID compartilhado.
//
// Expand é pura: não valida nem persiste. Service.Create é quem valida a
// requisição e grava o lote atomicamente.
func Expand(req Request, groupID ulid.ULID, now time.Time) []*transaction.Transaction {
	perInstallment := req.PerInstallment()

	baseDate := req.Date
	if req.StartNextMonth {
		baseDate = pkg.AddMonthsClamped(baseDate, 1)
	}

	category := req.Category
	if category == "" {
		category = transaction.DefaultCategory
	}

	rows := make([]*transaction.Transaction, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		gid := groupID
		row := &transaction.Transaction{
			Id:          pkg.GenerateULIDObject(),
			TenantId:    req.TenantId,
			UserId:      req.UserId,
			Description: req.Description,
			Amount:      perInstallment,
			Date:        pkg.AddMonthsClamped(baseDate, i),
			Type:        transaction.ExpenseInstallment,
			Category:    category,
			GroupId:     &gid,
			CreatedAt:   now,
		}
		row.SetInstallments(i+1, req.Count)
		rows = append(rows, row)
	}
	return rows
}
