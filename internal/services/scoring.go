package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/denmor86/paytik/internal/client"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
)

type ScoringService struct {
	Client  *client.Client
	Limiter *client.RateLimiter
}

func NewScoringService(baseURL string, httpClient *http.Client) client.ScoringService {
	return &ScoringService{
		Client:  client.NewClient(baseURL, httpClient),
		Limiter: client.NewRateLimiter(),
	}
}

func (s *ScoringService) Ready() bool {
	return !s.Limiter.Blocked()
}

func (s *ScoringService) Assess(ctx context.Context, credit models.CreditRequest) (models.Assessment, error) {
	// пока действует Retry-After, заявки остаются в очереди
	if s.Limiter.Blocked() {
		return models.Assessment{Decision: models.DecisionProcessing}, nil
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return models.Assessment{}, err
	}

	amount, _ := credit.Amount.Float64()
	totalDue, _ := credit.TotalDue.Float64()
	resp, err := s.Client.Assess(ctx, client.AssessmentRequest{
		RequestID:    credit.ID,
		Kind:         credit.Kind,
		Alias:        credit.Alias,
		Merchant:     credit.Merchant,
		Amount:       amount,
		TotalDue:     totalDue,
		Installments: credit.Installments,
	})
	if err != nil {
		// проверка большого количеста запросов
		var rateLimitErr *client.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to scoring service:", credit.ID)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return models.Assessment{Decision: models.DecisionProcessing}, nil
		}
		return models.Assessment{}, err
	}
	// проверяем возможные решения
	switch resp.Decision {
	case models.DecisionEligible, models.DecisionIneligible, models.DecisionProcessing:
	default:
		logger.Error("Undefined decision:", resp.Decision)
		return models.Assessment{}, fmt.Errorf("undefined decision %s", resp.Decision)
	}
	return models.Assessment{
		Score:    resp.Score,
		Decision: resp.Decision,
		Reason:   resp.Reason,
	}, nil
}
