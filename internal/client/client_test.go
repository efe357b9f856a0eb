package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		TestName string
		Header   string
		Expected time.Duration
	}{
		{
			TestName: "Success. Seconds #1",
			Header:   "120",
			Expected: 2 * time.Minute,
		},
		{
			TestName: "Success. Empty header #2",
			Header:   "",
			Expected: time.Minute,
		},
		{
			TestName: "Success. Invalid header #3",
			Header:   "soon",
			Expected: time.Minute,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			headers := http.Header{}
			if tc.Header != "" {
				headers.Set("Retry-After", tc.Header)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected: %v, got: %v", tc.Expected, got)
			}
		})
	}
}

func TestHandleErrorResponse(t *testing.T) {
	testCases := []struct {
		TestName      string
		Status        int
		ExpectedError error
	}{
		{
			TestName:      "Error. Bad request #1",
			Status:        http.StatusBadRequest,
			ExpectedError: ErrRequestNotAccepted,
		},
		{
			TestName:      "Error. Unprocessable #2",
			Status:        http.StatusUnprocessableEntity,
			ExpectedError: ErrRequestNotAccepted,
		},
		{
			TestName:      "Error. Internal error #3",
			Status:        http.StatusInternalServerError,
			ExpectedError: ErrServiceUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			err := HandleErrorResponse(&http.Response{StatusCode: tc.Status, Header: http.Header{}})
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}

	t.Run("Error. Too many requests #4", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Retry-After", "30")
		err := HandleErrorResponse(&http.Response{StatusCode: http.StatusTooManyRequests, Header: headers})
		var rateErr *RateLimitError
		if !errors.As(err, &rateErr) {
			t.Fatalf("Expected RateLimitError, got: '%v'", err)
		}
		if rateErr.RetryAfter != 30*time.Second {
			t.Errorf("Expected retry after: 30s, got: %v", rateErr.RetryAfter)
		}
	})
}

func TestRateLimiterBlockFor(t *testing.T) {
	limiter := NewRateLimiterWithLimit(rate.Inf, 1)
	if limiter.Blocked() {
		t.Fatal("New limiter must not be blocked")
	}

	limiter.BlockFor(20 * time.Millisecond)
	if !limiter.Blocked() {
		t.Fatal("Limiter must be blocked after BlockFor")
	}

	deadline := time.Now().Add(time.Second)
	for limiter.Blocked() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if limiter.Blocked() {
		t.Fatal("Limiter must be unblocked after timeout")
	}
	if err := limiter.Wait(context.Background()); err != nil {
		t.Errorf("Unexpected wait error: '%v'", err)
	}
}
