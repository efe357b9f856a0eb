package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/paytik/internal/client"
	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/finance"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidKind         = errors.New("unknown credit kind")
	ErrInvalidInstallments = errors.New("invalid number of installments")
	ErrAmountOutOfRange    = errors.New("credit amount out of allowed range")
	ErrInvalidMerchant     = errors.New("merchant not found")
	ErrInvalidTransition   = errors.New("credit request status does not allow this operation")
	ErrOverpayment         = errors.New("repayment exceeds outstanding amount")
	ErrCreditNotFound      = errors.New("credit request not found")
	ErrInvalidStatus       = errors.New("unknown credit status")
)

const (
	ReasonNotAccepted = "request not accepted by scoring service"

	recordFailureTimeout = 5 * time.Second
)

type CreditService interface {
	Simulate(kind string, amount decimal.Decimal, installments int) (*finance.Simulation, error)
	Submit(ctx context.Context, alias string, request models.CreditSubmitRequest) (*models.CreditRequest, error)
	GetCredit(ctx context.Context, alias string, id string) (*models.CreditRequest, error)
	GetCredits(ctx context.Context, alias string) ([]models.CreditRequest, error)
	GetCreditsByStatus(ctx context.Context, status string) ([]models.CreditRequest, error)
	ClaimCreditsForAssessment(ctx context.Context, count int) ([]string, error)
	AssessCredit(ctx context.Context, id string) error
	Approve(ctx context.Context, id string, admin string) (*models.CreditRequest, error)
	Reject(ctx context.Context, id string, admin string, reason string) error
	Repay(ctx context.Context, alias string, id string, amount decimal.Decimal) (*models.CreditRequest, error)
}

type Credit struct {
	Credits storage.CreditsStorage
	Users   storage.UsersStorage
	Scoring client.ScoringService
	Config  config.CreditConfig
	Now     func() time.Time
}

// Создание сервиса
func NewCredit(cfg config.CreditConfig, credits storage.CreditsStorage, users storage.UsersStorage, scoring client.ScoringService) CreditService {
	return &Credit{
		Credits: credits,
		Users:   users,
		Scoring: scoring,
		Config:  cfg,
		Now:     time.Now,
	}
}

// Simulate - расчёт графика и TEG без сохранения заявки.
// BNPL считается от годовой ставки, исламское финансирование - от фиксированной маржи.
func (s *Credit) Simulate(kind string, amount decimal.Decimal, installments int) (*finance.Simulation, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if installments < 1 || installments > s.Config.MaxInstallments {
		return nil, ErrInvalidInstallments
	}
	if amount.LessThan(decimal.NewFromFloat(s.Config.MinAmount)) || amount.GreaterThan(decimal.NewFromFloat(s.Config.MaxAmount)) {
		return nil, ErrAmountOutOfRange
	}

	start := s.Now()
	switch kind {
	case models.CreditKindBNPL:
		rate, err := finance.PeriodicRate(s.Config.BNPLAnnualRate, s.Config.PeriodsPerYear)
		if err != nil {
			return nil, fmt.Errorf("bnpl rate: %w", err)
		}
		return finance.Simulate(amount, rate, installments, s.Config.PeriodsPerYear, start)
	case models.CreditKindIslamic:
		return finance.SimulateMargin(amount, s.Config.IslamicMargin, installments, s.Config.PeriodsPerYear, start)
	default:
		return nil, ErrInvalidKind
	}
}

// Submit - подача заявки. Заявка сохраняется в статусе pending
// и уходит на оценку в фоновый воркер.
func (s *Credit) Submit(ctx context.Context, alias string, request models.CreditSubmitRequest) (*models.CreditRequest, error) {
	sim, err := s.Simulate(request.Kind, request.Amount, request.Installments)
	if err != nil {
		return nil, err
	}
	if request.Merchant == alias {
		return nil, ErrInvalidMerchant
	}

	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}
	merchant, err := s.Users.GetUser(ctx, request.Merchant)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidMerchant
		}
		return nil, err
	}
	if merchant.Role != models.RoleMerchant {
		return nil, ErrInvalidMerchant
	}

	credit := models.CreditRequest{
		ID:            uuid.New().String(),
		Kind:          request.Kind,
		UserID:        user.UserID,
		Alias:         user.Alias,
		MerchantID:    merchant.UserID,
		Merchant:      merchant.Alias,
		Amount:        sim.Principal,
		Installments:  sim.Installments,
		PeriodicRate:  sim.PeriodicRate,
		TEG:           sim.TEG,
		TotalDue:      sim.TotalDue,
		RepaidAmount:  decimal.Zero,
		Status:        models.CreditStatusPending,
		Reason:        trimReason(request.Reason),
		RepaymentPlan: sim.Plan,
		RequestDate:   s.Now(),
	}
	if err := s.Credits.AddCredit(ctx, credit); err != nil {
		logger.Error("Failed to add credit request", zap.Error(err))
		return nil, err
	}
	logger.Infow("Credit request submitted", "id", credit.ID, "alias", alias, "kind", credit.Kind, "amount", credit.Amount.String())
	return &credit, nil
}

// GetCredit - заявка пользователя; чужие заявки не видны
func (s *Credit) GetCredit(ctx context.Context, alias string, id string) (*models.CreditRequest, error) {
	credit, err := s.Credits.GetCredit(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCreditNotFound) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}
	if credit.Alias != alias {
		return nil, ErrCreditNotFound
	}
	return credit, nil
}

func (s *Credit) GetCredits(ctx context.Context, alias string) ([]models.CreditRequest, error) {
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return nil, err
	}
	return s.Credits.GetCredits(ctx, user.UserID)
}

func (s *Credit) GetCreditsByStatus(ctx context.Context, status string) ([]models.CreditRequest, error) {
	switch status {
	case models.CreditStatusPending, models.CreditStatusReview, models.CreditStatusApproved,
		models.CreditStatusRejected, models.CreditStatusRepaid:
	default:
		return nil, ErrInvalidStatus
	}
	return s.Credits.GetCreditsByStatus(ctx, status)
}

// ClaimCreditsForAssessment - выборка заявок для оценки.
// Пока сервис скоринга просит подождать (429), заявки не выбираются.
func (s *Credit) ClaimCreditsForAssessment(ctx context.Context, count int) ([]string, error) {
	if !s.Scoring.Ready() {
		logger.Debug("Scoring service is rate limited, skip claim")
		return nil, nil
	}
	return s.Credits.ClaimCreditsForAssessment(ctx, count)
}

// AssessCredit - оценка заявки внешним сервисом скоринга.
// Решение PROCESSING и ответ 429 оставляют заявку в pending до следующего опроса,
// попыткой считается только сбой сервиса.
func (s *Credit) AssessCredit(ctx context.Context, id string) error {
	credit, err := s.Credits.GetCredit(ctx, id)
	if err != nil {
		return err
	}
	if credit.Status != models.CreditStatusPending {
		return nil
	}

	var status string
	assessment, err := s.Scoring.Assess(ctx, *credit)
	switch {
	case errors.Is(err, client.ErrRequestNotAccepted):
		// сервис отказался оценивать заявку, повтор даст тот же ответ
		status = models.CreditStatusRejected
		assessment = models.Assessment{Reason: ReasonNotAccepted}
	case errors.Is(err, context.Canceled):
		// остановка сервиса, попытка не засчитывается
		return err
	case err != nil:
		s.recordAssessmentFailure(ctx, id)
		return err
	}

	switch {
	case status != "":
	case assessment.Decision == models.DecisionProcessing:
		logger.Debug("Assessment in progress", id)
		return nil
	case assessment.Decision == models.DecisionIneligible:
		status = models.CreditStatusRejected
	case assessment.Score < s.Config.AutoRejectScore:
		status = models.CreditStatusRejected
		if assessment.Reason == "" {
			assessment.Reason = fmt.Sprintf("score %d below threshold %d", assessment.Score, s.Config.AutoRejectScore)
		}
	default:
		status = models.CreditStatusReview
	}

	err = s.Credits.UpdateAssessment(ctx, id, status, assessment)
	if errors.Is(err, storage.ErrStatusConflict) {
		// заявку уже обработал другой экземпляр или администратор
		return nil
	}
	if err == nil {
		logger.Infow("Credit request assessed", "id", id, "status", status, "score", assessment.Score)
	}
	return err
}

// recordAssessmentFailure - учёт неудачной попытки; исчерпав попытки, заявка уходит в review
func (s *Credit) recordAssessmentFailure(ctx context.Context, id string) {
	// контекст оценки мог истечь по таймауту, попытку фиксируем отдельно
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordFailureTimeout)
	defer cancel()

	reason := fmt.Sprintf("scoring failed after %d attempts, manual review", s.Config.MaxAssessmentAttempts)
	status, err := s.Credits.RecordAssessmentFailure(ctx, id, s.Config.MaxAssessmentAttempts, reason)
	if err != nil {
		if !errors.Is(err, storage.ErrStatusConflict) {
			logger.Error("Failed to record assessment failure:", id, zap.Error(err))
		}
		return
	}
	if status == models.CreditStatusReview {
		logger.Infow("Credit request moved to manual review", "id", id, "attempts", s.Config.MaxAssessmentAttempts)
	}
}

// Approve - одобрение заявки администратором.
// Первый взнос по графику списывается с клиента в той же транзакции, что и зачисление продавцу.
func (s *Credit) Approve(ctx context.Context, id string, admin string) (*models.CreditRequest, error) {
	credit, err := s.Credits.GetCredit(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCreditNotFound) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}
	if credit.Status != models.CreditStatusReview {
		return nil, ErrInvalidTransition
	}

	downPayment := decimal.Zero
	if len(credit.RepaymentPlan) > 0 {
		downPayment = credit.RepaymentPlan[0].Payment
	}

	approved, err := s.Credits.ApproveCredit(ctx, models.Approval{
		CreditID:    id,
		AdminAlias:  admin,
		DownPayment: downPayment,
	})
	if err != nil {
		return nil, mapCreditError(err)
	}
	logger.Infow("Credit request approved", "id", id, "admin", admin)
	return approved, nil
}

// Reject - отклонение заявки администратором (из review или зависшей в pending)
func (s *Credit) Reject(ctx context.Context, id string, admin string, reason string) error {
	credit, err := s.Credits.GetCredit(ctx, id)
	if err != nil {
		return mapCreditError(err)
	}
	if credit.Status != models.CreditStatusReview && credit.Status != models.CreditStatusPending {
		return ErrInvalidTransition
	}
	reason = trimReason(reason)
	if reason == "" {
		reason = "rejected by " + admin
	}
	if err := s.Credits.RejectCredit(ctx, id, reason); err != nil {
		return mapCreditError(err)
	}
	logger.Infow("Credit request rejected", "id", id, "admin", admin)
	return nil
}

// Repay - погашение. Сумма не может превышать остаток к оплате.
func (s *Credit) Repay(ctx context.Context, alias string, id string, amount decimal.Decimal) (*models.CreditRequest, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}
	credit, err := s.GetCredit(ctx, alias, id)
	if err != nil {
		return nil, err
	}
	if credit.Status != models.CreditStatusApproved {
		return nil, ErrInvalidTransition
	}
	if amount.GreaterThan(credit.Outstanding()) {
		return nil, ErrOverpayment
	}
	repaid, err := s.Credits.RepayCredit(ctx, id, credit.UserID, amount)
	if err != nil {
		return nil, mapCreditError(err)
	}
	return repaid, nil
}

func mapCreditError(err error) error {
	switch {
	case errors.Is(err, storage.ErrCreditNotFound):
		return ErrCreditNotFound
	case errors.Is(err, storage.ErrStatusConflict):
		return ErrInvalidTransition
	case errors.Is(err, storage.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, storage.ErrOverpayment):
		return ErrOverpayment
	default:
		return err
	}
}
