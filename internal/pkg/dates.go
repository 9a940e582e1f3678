package pkg

import "time"

// AddMonthsClamped avança t em months meses de calendário mantendo o
// dia do mês. Quando o mês alvo não tem o dia original (ex: 31 de janeiro
// + 1 mês), o dia é grampeado no último dia válido do mês alvo — diferente
// de time.AddDate, que transborda para o mês seguinte.
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + months
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 && totalMonths%12 != 0 {
		targetYear--
		targetMonth = time.Month(totalMonths%12 + 13)
	}

	if last := DaysInMonth(targetYear, targetMonth); day > last {
		day = last
	}

	h, min, sec := t.Clock()
	return time.Date(targetYear, targetMonth, day, h, min, sec, t.Nanosecond(), t.Location())
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MidMonth devolve o dia 15 do mês informado. Lançamentos manuais não
// parcelados são sempre datados no dia 15.
func MidMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
}

// MonthRange devolve o primeiro instante do mês e o último instante do
// último dia do mês.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)
	return start, end
}

// MonthsRange devolve o intervalo cobrindo monthsCount meses a partir de
// (year, month), inclusive o mês final parcial.
func MonthsRange(year int, month time.Month, monthsCount int) (time.Time, time.Time) {
	if monthsCount < 1 {
		monthsCount = 1
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month+time.Month(monthsCount), 0, 23, 59, 59, 0, time.UTC)
	return start, end
}

// SameMonth informa se t cai no mês/ano indicados.
func SameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}
