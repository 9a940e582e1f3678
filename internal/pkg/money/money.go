// Package money implementa aritmética monetária em centavos inteiros.
//
// Todos os valores financeiros do domínio circulam como Cents (int64) para
// que somas e divisões de parcelas sejam exatas. Floats só aparecem na borda
// JSON, convertidos com arredondamento half-up na segunda casa decimal.
package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("valor monetário inválido")

// Cents é um valor monetário em centavos de real.
type Cents int64

// FromFloat converte um valor decimal em reais (ex: 12.34) para centavos,
// com arredondamento half-up na segunda casa. Valores negativos, NaN e
// infinitos são rejeitados: no modelo, amount é sempre um custo ou receita
// não negativo.
func FromFloat(reais float64) (Cents, error) {
	if math.IsNaN(reais) || math.IsInf(reais, 0) {
		return 0, ErrInvalidAmount
	}
	if reais < 0 {
		return 0, ErrInvalidAmount
	}
	// int64 máximo ~9e18 => reais máximo ~9e16
	if reais > 9e16 {
		return 0, fmt.Errorf("%w: valor muito grande", ErrInvalidAmount)
	}
	return Cents(math.Floor(reais*100.0 + 0.5)), nil
}

// Float64 devolve o valor em reais para a borda JSON.
func (c Cents) Float64() float64 {
	return float64(c) / 100.0
}

// Split divide o valor por n com arredondamento half-up. É a regra de
// rateio de parcelas: o valor por parcela é calculado uma única vez e
// repetido em todas as linhas, então o desvio acumulado é determinístico
// e limitado a n/2 centavos.
func (c Cents) Split(n int) Cents {
	if n <= 0 {
		return c
	}
	num := int64(c)*2 + int64(n)
	return Cents(num / (2 * int64(n)))
}

// String formata como decimal com duas casas, ex: "1234.56".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// FormatBRL formata para exibição em prompts e mensagens, ex: "R$ 1234,56".
func (c Cents) FormatBRL() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("R$ %s%d,%02d", sign, v/100, v%100)
}
