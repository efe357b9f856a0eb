package models

import (
	"time"

	"github.com/denmor86/paytik/internal/finance"
	"github.com/shopspring/decimal"
)

// Виды кредитных продуктов
const (
	CreditKindBNPL    = "bnpl"
	CreditKindIslamic = "islamic"
)

// Статусы заявок
const (
	CreditStatusPending  = "pending"
	CreditStatusReview   = "review"
	CreditStatusApproved = "approved"
	CreditStatusRejected = "rejected"
	CreditStatusRepaid   = "repaid"
)

// CreditRequest - заявка на рассрочку (BNPL) или исламское финансирование
type CreditRequest struct {
	ID            string                `json:"id"`
	Kind          string                `json:"kind"`
	UserID        string                `json:"-"`
	Alias         string                `json:"alias"`
	MerchantID    string                `json:"-"`
	Merchant      string                `json:"merchant"`
	Amount        decimal.Decimal       `json:"amount"`
	Installments  int                   `json:"installments"`
	PeriodicRate  float64               `json:"periodic_rate"`
	TEG           float64               `json:"teg"`
	TotalDue      decimal.Decimal       `json:"total_due"`
	RepaidAmount  decimal.Decimal       `json:"repaid_amount"`
	Status        string                `json:"status"`
	Reason        string                `json:"reason"`
	Score         int                   `json:"score,omitempty"`
	Decision      string                `json:"decision,omitempty"`
	RepaymentPlan []finance.Installment `json:"repayment_plan,omitempty"`
	RequestDate   time.Time             `json:"request_date"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// Outstanding - остаток к погашению
func (c *CreditRequest) Outstanding() decimal.Decimal {
	rest := c.TotalDue.Sub(c.RepaidAmount)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// CreditSimulationRequest - расчёт без сохранения заявки
type CreditSimulationRequest struct {
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
}

// CreditSubmitRequest - подача заявки
type CreditSubmitRequest struct {
	Kind         string          `json:"kind"`
	Merchant     string          `json:"merchant"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
	Reason       string          `json:"reason"`
}

// RepayRequest - досрочное или плановое погашение
type RepayRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// DecisionRequest - решение администратора
type DecisionRequest struct {
	Reason string `json:"reason"`
}

// Assessment - результат оценки заявки сервисом скоринга
type Assessment struct {
	Score    int
	Decision string
	Reason   string
}

// Решения сервиса скоринга
const (
	DecisionEligible   = "ELIGIBLE"
	DecisionIneligible = "INELIGIBLE"
	DecisionProcessing = "PROCESSING"
)

// Approval - проводки по одобренной заявке
type Approval struct {
	CreditID    string
	AdminAlias  string
	DownPayment decimal.Decimal
}
