package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/paytik/internal/models"
)

//go:generate mockgen -destination=mocks/client_mock.go -package=mocks github.com/denmor86/paytik/internal/client HTTPClient,ScoringService

// AssessmentRequest - данные заявки, передаваемые в сервис скоринга
type AssessmentRequest struct {
	RequestID    string  `json:"request_id"`
	Kind         string  `json:"kind"`
	Alias        string  `json:"alias"`
	Merchant     string  `json:"merchant"`
	Amount       float64 `json:"amount"`
	TotalDue     float64 `json:"total_due"`
	Installments int     `json:"installments"`
}

// AssessmentResponse - ответ сервиса скоринга
type AssessmentResponse struct {
	RequestID string `json:"request_id"`
	Decision  string `json:"decision"`
	Score     int    `json:"score"`
	Reason    string `json:"reason,omitempty"`
}

type ScoringService interface {
	Assess(ctx context.Context, credit models.CreditRequest) (models.Assessment, error)
	// Ready - сервис готов принимать запросы (нет действующего Retry-After)
	Ready() bool
}

var (
	ErrServiceUnavailable = errors.New("scoring service unavailable")
	ErrRequestNotAccepted = errors.New("assessment request not accepted")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
