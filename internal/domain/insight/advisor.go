// Package insight transforma o resumo mensal em observações curtas de texto
// geradas pela ConFinance IA, com degradação controlada quando o modelo não
// responde.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ronaldorededigital/confin/internal/domain/summary"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/logger"
)

const systemInstruction = "Você é a ConFinance IA, uma assistente financeira concisa e útil. Responda sempre com uma lista JSON de strings."

// maxSampleTransactions limita quantos lançamentos recentes entram no prompt.
const maxSampleTransactions = 5

// FailureInsights é a resposta fixa quando o modelo está indisponível.
var FailureInsights = []string{
	"Não foi possível conectar à ConFinance IA no momento.",
	"Verifique sua conexão ou tente novamente mais tarde.",
}

// EmptyMonthInsights é devolvida sem consultar o modelo quando o mês não tem
// lançamento algum: o conteúdo seria sempre o mesmo convite para começar.
var EmptyMonthInsights = []string{
	"Você ainda não registrou nenhum lançamento neste mês. Comece adicionando suas receitas e despesas!",
	"Planejar o mês antes de gastar é o primeiro passo para fechar no azul.",
	"Dica: registre também os pequenos gastos do dia a dia, são eles que costumam passar despercebidos.",
}

type Advisor struct {
	generator Generator
}

func NewAdvisor(generator Generator) *Advisor {
	return &Advisor{generator: generator}
}

// Generate produz os insights do mês. Nunca devolve erro nem lista vazia:
// falha do modelo degrada para FailureInsights e mês vazio devolve
// EmptyMonthInsights direto.
func (a *Advisor) Generate(ctx context.Context, userName string, year int, month time.Month, sum summary.FinancialSummary, transactions []*transaction.Transaction) []string {
	if len(transactions) == 0 {
		return EmptyMonthInsights
	}

	prompt := BuildPrompt(userName, year, month, sum, transactions)

	raw, err := a.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		logger.Warn().Err(err).Msg("geração de insights falhou, usando resposta padrão")
		return FailureInsights
	}

	return ParseInsights(raw)
}

// BuildPrompt monta o contexto em Português com o resumo do mês e uma
// amostra dos lançamentos recentes.
func BuildPrompt(userName string, year int, month time.Month, sum summary.FinancialSummary, transactions []*transaction.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dados financeiros de %s para %s/%d:\n", userName, monthNamePT(month), year)
	fmt.Fprintf(&b, "- Receita Total: %s\n", sum.Income.FormatBRL())
	fmt.Fprintf(&b, "- Despesas Fixas: %s\n", sum.FixedExpenses.FormatBRL())
	fmt.Fprintf(&b, "- Parcelamentos: %s\n", sum.Installments.FormatBRL())
	fmt.Fprintf(&b, "- Balanço Final: %s\n\n", sum.Balance.FormatBRL())

	b.WriteString("Transações recentes:\n")
	sample := transactions
	if len(sample) > maxSampleTransactions {
		sample = sample[:maxSampleTransactions]
	}
	for _, tx := range sample {
		fmt.Fprintf(&b, "- %s | %s | %s | %s\n", tx.Date.Format("2006-01-02"), tx.Description, tx.Type, tx.Amount.FormatBRL())
	}

	b.WriteString("\nAtue como um consultor financeiro pessoal inteligente chamado \"ConFinance IA\".\n")
	b.WriteString("Gere 3 insights breves (máximo 1 frase longa cada), motivadores ou de alerta, em Português do Brasil.\n")
	b.WriteString("Foque em: saúde financeira, corte de gastos desnecessários ou parabéns por saldo positivo.")

	return b.String()
}

// ParseInsights interpreta a resposta do modelo como lista JSON de strings.
// Qualquer outra coisa vira um único insight com o texto bruto.
func ParseInsights(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"Não foi possível gerar insights no momento."}
	}

	// Modelos às vezes embrulham o JSON em cerca de código.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var insights []string
	if err := json.Unmarshal([]byte(raw), &insights); err != nil || len(insights) == 0 {
		return []string{raw}
	}
	return insights
}

var monthNamesPT = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

func monthNamePT(month time.Month) string {
	if name, ok := monthNamesPT[month]; ok {
		return name
	}
	return month.String()
}
