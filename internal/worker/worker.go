package worker

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/paytik/internal/client"
	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/services"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	BreakerName     = "scoring-service"
	BreakerTimeout  = 30 * time.Second
	BreakerFailures = 5
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    BreakerName,
		Timeout: BreakerTimeout, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= BreakerFailures
		},
		// отказ в приёме конкретной заявки не говорит о недоступности сервиса
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, client.ErrRequestNotAccepted)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// AssessmentWorker - фоновая оценка заявок со статусом pending
type AssessmentWorker struct {
	Credits           services.CreditService
	Breaker           *gobreaker.CircuitBreaker
	BatchSize         int
	PollInterval      time.Duration
	ProcessingTimeout time.Duration
}

// NewAssessmentWorker - конструктор воркера оценки заявок
func NewAssessmentWorker(cfg config.ScoringConfig, credits services.CreditService) *AssessmentWorker {
	return &AssessmentWorker{
		Credits:           credits,
		Breaker:           InitCircuitBreaker(),
		BatchSize:         cfg.BatchSize,
		PollInterval:      cfg.PollInterval,
		ProcessingTimeout: cfg.ProcessingTimeout,
	}
}

// Run - основной цикл, завершается при отмене контекста
func (w *AssessmentWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("AssessmentWorker signal stop")
			return nil
		case <-ticker.C:
			w.ProcessCredits(ctx)
		}
	}
}

// ProcessCredits - обработка пачки заявок
func (w *AssessmentWorker) ProcessCredits(ctx context.Context) int {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return 0
	}

	ids, err := w.Credits.ClaimCreditsForAssessment(ctx, w.BatchSize)
	if err != nil {
		logger.Error("Error claim credits for assessment", zap.Error(err))
		return 0
	}

	processed := 0
	for _, id := range ids {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			assessCtx, cancel := context.WithTimeout(ctx, w.ProcessingTimeout)
			defer cancel()
			return nil, w.Credits.AssessCredit(assessCtx, id)
		})
		if err != nil {
			logger.With("credit", id).Errorw("Error credit assessment", zap.Error(err))
			// сервис недоступен, остальные заявки пачки дождутся следующего опроса
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				break
			}
			continue
		}
		processed++
	}
	return processed
}
