// Package finance содержит актуарные расчёты кредитных продуктов:
// аннуитетный платёж (PMT), обратная задача поиска ставки (RATE),
// пересчёт периодической ставки в годовую (TEG) и обратно,
// пересчёт фиксированной маржи исламского финансирования в TEG,
// а также построение графика погашения.
package finance

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// RateIterations - фиксированное число итераций метода Ньютона
	RateIterations = 20
	// RateTolerance - точность решения по ставке
	RateTolerance = 1e-6

	scheduleScale = 10
)

var (
	ErrInvalidInput  = errors.New("invalid amortization input")
	ErrNoConvergence = errors.New("rate did not converge")
)

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Payment - аннуитетный платёж за период (PMT).
// При нулевой ставке тело кредита делится поровну.
func Payment(principal, rate float64, n int) (float64, error) {
	if !finite(principal, rate) || principal <= 0 || n < 1 || rate <= -1 {
		return 0, ErrInvalidInput
	}
	if rate == 0 {
		return principal / float64(n), nil
	}
	return principal * rate / (1 - math.Pow(1+rate, -float64(n))), nil
}

// Rate - периодическая ставка, при которой n платежей payment погашают principal (RATE).
// Метод Ньютона по уравнению f(r) = payment*(1-(1+r)^-n)/r - principal.
func Rate(principal, payment float64, n int) (float64, error) {
	if !finite(principal, payment) || principal <= 0 || payment <= 0 || n < 1 {
		return 0, ErrInvalidInput
	}
	nf := float64(n)
	total := payment * nf
	// платежи не покрывают тело кредита - отрицательная ставка, такие кредиты не выдаём
	if total < principal-RateTolerance {
		return 0, ErrInvalidInput
	}
	if math.Abs(total-principal) <= RateTolerance {
		return 0, nil
	}

	// начальное приближение из простой (линейной) маржи
	r := 2 * (total - principal) / (principal * (nf + 1))
	for i := 0; i < RateIterations; i++ {
		pow := math.Pow(1+r, -nf)
		f := payment*(1-pow)/r - principal
		df := payment * (nf*math.Pow(1+r, -nf-1)*r - (1 - pow)) / (r * r)
		if df == 0 || !finite(f, df) {
			return 0, ErrNoConvergence
		}
		next := r - f/df
		if next <= -1 {
			next = r / 2
		}
		// шаг и невязка малы одновременно: при большой марже одного шага недостаточно
		if math.Abs(next-r) < RateTolerance && math.Abs(f) < RateTolerance*principal {
			return next, nil
		}
		r = next
	}
	return 0, ErrNoConvergence
}

// PeriodicRate - периодическая ставка, эквивалентная годовой: (1+annual)^(1/ppy) - 1
func PeriodicRate(annual float64, periodsPerYear int) (float64, error) {
	if !finite(annual) || annual <= -1 || periodsPerYear < 1 {
		return 0, ErrInvalidInput
	}
	return math.Pow(1+annual, 1/float64(periodsPerYear)) - 1, nil
}

// AnnualRate - годовая эффективная ставка (TEG) по периодической: (1+periodic)^ppy - 1
func AnnualRate(periodic float64, periodsPerYear int) (float64, error) {
	if !finite(periodic) || periodic <= -1 || periodsPerYear < 1 {
		return 0, ErrInvalidInput
	}
	return math.Pow(1+periodic, float64(periodsPerYear)) - 1, nil
}

// TEGFromMargin - TEG для фиксированной маржи: клиент платит principal*(1+margin) равными долями.
func TEGFromMargin(principal, margin float64, n, periodsPerYear int) (float64, error) {
	if !finite(margin) || margin < 0 {
		return 0, ErrInvalidInput
	}
	payment := principal * (1 + margin) / float64(n)
	periodic, err := Rate(principal, payment, n)
	if err != nil {
		return 0, err
	}
	return AnnualRate(periodic, periodsPerYear)
}

// MarginFromTEG - фиксированная маржа, эквивалентная заданному TEG на n периодов.
func MarginFromTEG(teg float64, n, periodsPerYear int) (float64, error) {
	periodic, err := PeriodicRate(teg, periodsPerYear)
	if err != nil {
		return 0, err
	}
	// маржа не зависит от суммы, считаем на единицу
	payment, err := Payment(1, periodic, n)
	if err != nil {
		return 0, err
	}
	return payment*float64(n) - 1, nil
}

// Installment - строка графика погашения
type Installment struct {
	Number    int             `json:"number"`
	DueDate   time.Time       `json:"due_date"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Schedule - график погашения с округлением до копеек.
// Последний платёж поглощает ошибку округления: сумма тел равна principal.
func Schedule(principal decimal.Decimal, rate float64, n int, start time.Time, months int) ([]Installment, error) {
	p, _ := principal.Float64()
	pmt, err := Payment(p, rate, n)
	if err != nil {
		return nil, err
	}
	if months < 1 {
		months = 1
	}

	exactPayment := decimal.NewFromFloat(pmt)
	payment := exactPayment.Round(2)
	r := decimal.NewFromFloat(rate)
	remaining := principal.Round(2)
	// точный остаток без округления, иначе ошибка копеек растёт как (1+r)^n
	exact := remaining

	plan := make([]Installment, 0, n)
	for i := 1; i <= n; i++ {
		exactInterest := exact.Mul(r)
		exact = exact.Add(exactInterest).Sub(exactPayment).Round(scheduleScale)
		interest := exactInterest.Round(2)
		part := payment.Sub(interest)
		if i == n || part.GreaterThan(remaining) {
			part = remaining
		}
		if part.IsNegative() {
			part = decimal.Zero
		}
		remaining = remaining.Sub(part)
		plan = append(plan, Installment{
			Number:    i,
			DueDate:   start.AddDate(0, months*i, 0),
			Payment:   part.Add(interest),
			Principal: part,
			Interest:  interest,
			Remaining: remaining,
		})
	}
	return plan, nil
}

// Simulation - результат расчёта кредита
type Simulation struct {
	Principal    decimal.Decimal `json:"principal"`
	Installments int             `json:"installments"`
	PeriodicRate float64         `json:"periodic_rate"`
	TEG          float64         `json:"teg"`
	Installment  decimal.Decimal `json:"installment"`
	TotalDue     decimal.Decimal `json:"total_due"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Plan         []Installment   `json:"plan"`
}

// Simulate - полный расчёт по периодической ставке
func Simulate(principal decimal.Decimal, rate float64, n, periodsPerYear int, start time.Time) (*Simulation, error) {
	if !principal.IsPositive() {
		return nil, ErrInvalidInput
	}
	teg, err := AnnualRate(rate, periodsPerYear)
	if err != nil {
		return nil, err
	}
	months := 12 / periodsPerYear
	plan, err := Schedule(principal, rate, n, start, months)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, item := range plan {
		total = total.Add(item.Payment)
	}
	return &Simulation{
		Principal:    principal.Round(2),
		Installments: n,
		PeriodicRate: rate,
		TEG:          teg,
		Installment:  plan[0].Payment,
		TotalDue:     total,
		TotalCost:    total.Sub(principal.Round(2)),
		Plan:         plan,
	}, nil
}

// SimulateMargin - расчёт с фиксированной маржой (исламское финансирование):
// маржа пересчитывается в эквивалентную периодическую ставку.
func SimulateMargin(principal decimal.Decimal, margin float64, n, periodsPerYear int, start time.Time) (*Simulation, error) {
	p, _ := principal.Float64()
	if !finite(margin) || margin < 0 || p <= 0 || n < 1 {
		return nil, ErrInvalidInput
	}
	payment := p * (1 + margin) / float64(n)
	rate, err := Rate(p, payment, n)
	if err != nil {
		return nil, err
	}
	return Simulate(principal, rate, n, periodsPerYear, start)
}
