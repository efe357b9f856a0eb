package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env"
)

func TestArgumentsFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SCORING_POLL_INTERVAL", "2s")
	t.Setenv("CREDIT_AUTO_REJECT_SCORE", "450")

	var args Arguments
	if err := env.Parse(&args); err != nil {
		t.Fatalf("Unexpected error: '%v'", err)
	}
	if args.ListenAddr != "0.0.0.0:9090" {
		t.Errorf("Expected listen address: '0.0.0.0:9090', got: '%s'", args.ListenAddr)
	}
	if args.ScoringInterval != 2*time.Second {
		t.Errorf("Expected poll interval: 2s, got: %v", args.ScoringInterval)
	}
	if args.AutoRejectScore != 450 {
		t.Errorf("Expected auto reject score: 450, got: %d", args.AutoRejectScore)
	}
	// значения по умолчанию совпадают с DefaultConfig
	def := DefaultConfig()
	if args.MaxInstallments != def.Credit.MaxInstallments || args.BNPLAnnualRate != def.Credit.BNPLAnnualRate {
		t.Errorf("Defaults differ from DefaultConfig: %d %v", args.MaxInstallments, args.BNPLAnnualRate)
	}
	if args.MaxAssessments != def.Credit.MaxAssessmentAttempts {
		t.Errorf("Expected max assessment attempts: %d, got: %d", def.Credit.MaxAssessmentAttempts, args.MaxAssessments)
	}
}
