package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/paytik/internal/client"
	mocks "github.com/denmor86/paytik/internal/client/mocks"
	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	storagemocks "github.com/denmor86/paytik/internal/storage/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAssess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	credit := models.CreditRequest{
		ID:           "c1",
		Kind:         models.CreditKindBNPL,
		Alias:        "mda",
		Merchant:     "boutique",
		Amount:       decimal.RequireFromString("30000"),
		TotalDue:     decimal.RequireFromString("30600"),
		Installments: 3,
	}

	testCases := []struct {
		TestName           string
		SetupMocks         func()
		ExpectedAssessment models.Assessment
		ExpectedError      error
	}{
		{
			TestName: "Success. Eligible #1",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					if req.Method != http.MethodPost || req.URL.Path != "/api/assessments" {
						return nil, errors.New("unexpected request")
					}
					body, _ := io.ReadAll(req.Body)
					if !strings.Contains(string(body), `"request_id":"c1"`) || !strings.Contains(string(body), `"amount":30000`) {
						return nil, errors.New("unexpected body")
					}
					return &http.Response{
						Status:     "200 OK",
						StatusCode: http.StatusOK,
						Body:       io.NopCloser(bytes.NewBufferString(`{"request_id":"c1","decision":"ELIGIBLE","score":720}`)),
						Header:     make(http.Header),
					}, nil
				})
			},
			ExpectedAssessment: models.Assessment{Score: 720, Decision: models.DecisionEligible},
			ExpectedError:      nil,
		},
		{
			TestName: "Success. Ineligible with reason #2",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "200 OK",
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`{"request_id":"c1","decision":"INELIGIBLE","score":410,"reason":"debt ratio"}`)),
					Header:     make(http.Header),
				}, nil)
			},
			ExpectedAssessment: models.Assessment{Score: 410, Decision: models.DecisionIneligible, Reason: "debt ratio"},
			ExpectedError:      nil,
		},
		{
			TestName: "Error. Too many requests #3",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "429 Too Many Requests",
					StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(bytes.NewBufferString("No more than N requests per minute allowed")),
					Header: http.Header{
						"Retry-After":  []string{"120"},
						"Content-Type": []string{"application/json"},
					},
				}, nil)
			},
			ExpectedAssessment: models.Assessment{Decision: models.DecisionProcessing},
			ExpectedError:      nil,
		},
		{
			TestName: "Error. Scoring service error #4",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "500",
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(bytes.NewBufferString("")),
					Header:     make(http.Header),
				}, nil)
			},
			ExpectedAssessment: models.Assessment{},
			ExpectedError:      client.ErrServiceUnavailable,
		},
		{
			TestName: "Error. Invalid decision #5",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "200 OK",
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`{"request_id":"c1","decision":"UNKNOWN","score":500}`)),
					Header:     make(http.Header),
				}, nil)
			},
			ExpectedAssessment: models.Assessment{},
			ExpectedError:      errors.New("undefined decision UNKNOWN"),
		},
		{
			TestName: "Error. Request not accepted #6",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
					Status:     "422",
					StatusCode: http.StatusUnprocessableEntity,
					Body:       io.NopCloser(bytes.NewBufferString("")),
					Header:     make(http.Header),
				}, nil)
			},
			ExpectedAssessment: models.Assessment{},
			ExpectedError:      client.ErrRequestNotAccepted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			service := &ScoringService{
				Client:  client.NewClient("", mockHTTPClient),
				Limiter: client.NewRateLimiter(),
			}

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			assessment, err := service.Assess(ctx, credit)

			if assessment != tc.ExpectedAssessment {
				t.Errorf("Expected assessment: '%v', got: '%v'", tc.ExpectedAssessment, assessment)
			}
			if tc.ExpectedError != nil {
				if err == nil {
					t.Errorf("Expected error: '%v', got: nil", tc.ExpectedError)
				} else if !strings.Contains(err.Error(), tc.ExpectedError.Error()) {
					t.Errorf("Expected error containing: '%v', got '%v'", tc.ExpectedError.Error(), err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
		})
	}
}

func TestAssessBlockedAfterRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	service := &ScoringService{
		Client:  client.NewClient("", mockHTTPClient),
		Limiter: client.NewRateLimiter(),
	}

	// единственный вызов: после 429 сервис не опрашивается до истечения Retry-After
	mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusTooManyRequests,
		Body:       io.NopCloser(bytes.NewBufferString("")),
		Header:     http.Header{"Retry-After": []string{"60"}},
	}, nil).Times(1)

	for i := 0; i < 3; i++ {
		assessment, err := service.Assess(context.Background(), models.CreditRequest{ID: "c1"})
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if assessment.Decision != models.DecisionProcessing {
			t.Errorf("Expected decision %s, got: %s", models.DecisionProcessing, assessment.Decision)
		}
	}
	if !service.Limiter.Blocked() {
		t.Errorf("Expected limiter to be blocked")
	}
	if service.Ready() {
		t.Errorf("Expected service not ready while Retry-After is active")
	}
}

func TestAssessRecoversAfterRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockCredits := storagemocks.NewMockCreditsStorage(ctrl)

	scoring := &ScoringService{
		Client:  client.NewClient("http://scoring", mockHTTPClient),
		Limiter: client.NewRateLimiter(),
	}
	service := &Credit{
		Credits: mockCredits,
		Scoring: scoring,
		Config:  config.Credit,
		Now:     time.Now,
	}
	pending := &models.CreditRequest{ID: "c1", Status: models.CreditStatusPending}
	ctx := context.Background()

	// 1. первая выборка, сервис отвечает 429
	mockCredits.EXPECT().ClaimCreditsForAssessment(gomock.Any(), 10).Return([]string{"c1"}, nil)
	mockCredits.EXPECT().GetCredit(gomock.Any(), "c1").Return(pending, nil).Times(4)
	mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusTooManyRequests,
		Body:       io.NopCloser(bytes.NewBufferString("")),
		Header:     http.Header{"Retry-After": []string{"60"}},
	}, nil)

	ids, err := service.ClaimCreditsForAssessment(ctx, 10)
	if err != nil || len(ids) != 1 {
		t.Fatalf("Expected one claimed credit, got: %v '%v'", ids, err)
	}
	if err := service.AssessCredit(ctx, "c1"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	// 2. пока действует Retry-After: выборка пустая, оценки не тратят попытки
	ids, err = service.ClaimCreditsForAssessment(ctx, 10)
	if err != nil || len(ids) != 0 {
		t.Fatalf("Expected no claimed credits while rate limited, got: %v '%v'", ids, err)
	}
	for i := 0; i < 3; i++ {
		if err := service.AssessCredit(ctx, "c1"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
	}

	// 3. Retry-After истёк, заявка оценивается
	scoring.Limiter.BlockFor(time.Millisecond)
	deadline := time.Now().Add(time.Second)
	for !scoring.Ready() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if !scoring.Ready() {
		t.Fatal("Expected scoring service to recover")
	}

	mockCredits.EXPECT().ClaimCreditsForAssessment(gomock.Any(), 10).Return([]string{"c1"}, nil)
	mockCredits.EXPECT().GetCredit(gomock.Any(), "c1").Return(pending, nil)
	mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(`{"request_id":"c1","decision":"ELIGIBLE","score":720}`)),
		Header:     make(http.Header),
	}, nil)
	mockCredits.EXPECT().UpdateAssessment(gomock.Any(), "c1", models.CreditStatusReview, models.Assessment{Score: 720, Decision: models.DecisionEligible}).Return(nil)

	ids, err = service.ClaimCreditsForAssessment(ctx, 10)
	if err != nil || len(ids) != 1 {
		t.Fatalf("Expected one claimed credit, got: %v '%v'", ids, err)
	}
	if err := service.AssessCredit(ctx, "c1"); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}
}
