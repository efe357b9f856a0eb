package storage

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Тесты работают с настоящей БД.
// Запуск: DATABASE_DSN=postgres://... go test ./internal/storage

func testStorage(t *testing.T) (*Database, Storage) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		t.Skip("DATABASE_DSN not set, skipping integration test")
	}
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := NewDatabase(dsn)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Initialize(context.Background()); err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	return db, NewStorage(db)
}

func testUser(t *testing.T, s Storage, role string, deposit int64) *models.UserData {
	t.Helper()
	ctx := context.Background()
	alias := role + "_" + uuid.New().String()[:8]
	if err := s.Users.AddUser(ctx, alias, "hash", role); err != nil {
		t.Fatalf("failed to add user: %v", err)
	}
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if deposit > 0 {
		if err := s.Transactions.Deposit(ctx, user.UserID, decimal.NewFromInt(deposit), "versement"); err != nil {
			t.Fatalf("failed to deposit: %v", err)
		}
	}
	return user
}

func testCredit(t *testing.T, s Storage, user, merchant *models.UserData, status string, totalDue int64) string {
	t.Helper()
	id := uuid.New().String()
	err := s.Credits.AddCredit(context.Background(), models.CreditRequest{
		ID:           id,
		Kind:         models.CreditKindBNPL,
		UserID:       user.UserID,
		MerchantID:   merchant.UserID,
		Amount:       decimal.NewFromInt(totalDue),
		Installments: 3,
		TotalDue:     decimal.NewFromInt(totalDue),
		RepaidAmount: decimal.Zero,
		Status:       status,
		RequestDate:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to add credit: %v", err)
	}
	// заявки не должны оставаться в очереди оценки после теста
	t.Cleanup(func() {
		err := s.Credits.RejectCredit(context.Background(), id, "test cleanup")
		if err != nil && !errors.Is(err, ErrStatusConflict) {
			t.Errorf("failed to cleanup credit: %v", err)
		}
	})
	return id
}

func balance(t *testing.T, s Storage, alias string) decimal.Decimal {
	t.Helper()
	b, err := s.Users.GetUserBalance(context.Background(), alias)
	if err != nil {
		t.Fatalf("failed to get balance: %v", err)
	}
	return b.Current
}

func transactions(t *testing.T, s Storage, userID string) int {
	t.Helper()
	items, err := s.Transactions.GetTransactions(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to get transactions: %v", err)
	}
	return len(items)
}

func TestApproveCreditInsufficientDownPayment(t *testing.T) {
	_, s := testStorage(t)
	ctx := context.Background()

	user := testUser(t, s, models.RoleUser, 100)
	merchant := testUser(t, s, models.RoleMerchant, 0)
	id := testCredit(t, s, user, merchant, models.CreditStatusReview, 1000)

	_, err := s.Credits.ApproveCredit(ctx, models.Approval{
		CreditID:    id,
		AdminAlias:  "root",
		DownPayment: decimal.NewFromInt(300),
	})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("approve error = %v, want %v", err, ErrInsufficientFunds)
	}

	// зачисление продавцу откатывается вместе с неудачным списанием
	if got := balance(t, s, merchant.Alias); !got.IsZero() {
		t.Errorf("merchant balance = %s, want 0", got)
	}
	if got := balance(t, s, user.Alias); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("user balance = %s, want 100", got)
	}
	if got := transactions(t, s, merchant.UserID); got != 0 {
		t.Errorf("merchant transactions = %d, want 0", got)
	}
	if got := transactions(t, s, user.UserID); got != 1 {
		t.Errorf("user transactions = %d, want 1", got)
	}
	c, err := s.Credits.GetCredit(ctx, id)
	if err != nil {
		t.Fatalf("failed to get credit: %v", err)
	}
	if c.Status != models.CreditStatusReview || !c.RepaidAmount.IsZero() {
		t.Errorf("credit status = %s repaid = %s, want review and 0", c.Status, c.RepaidAmount)
	}
}

func TestApproveCreditMovements(t *testing.T) {
	_, s := testStorage(t)
	ctx := context.Background()

	user := testUser(t, s, models.RoleUser, 500)
	merchant := testUser(t, s, models.RoleMerchant, 0)
	id := testCredit(t, s, user, merchant, models.CreditStatusReview, 1000)

	c, err := s.Credits.ApproveCredit(ctx, models.Approval{
		CreditID:    id,
		AdminAlias:  "root",
		DownPayment: decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if c.Status != models.CreditStatusApproved || !c.RepaidAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("credit status = %s repaid = %s, want approved and 200", c.Status, c.RepaidAmount)
	}
	if got := balance(t, s, merchant.Alias); !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("merchant balance = %s, want 1000", got)
	}
	if got := balance(t, s, user.Alias); !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("user balance = %s, want 300", got)
	}
	// versement + выдача + первый взнос
	if got := transactions(t, s, user.UserID); got != 3 {
		t.Errorf("user transactions = %d, want 3", got)
	}
	if got := transactions(t, s, merchant.UserID); got != 1 {
		t.Errorf("merchant transactions = %d, want 1", got)
	}
}

func TestRepayCreditConcurrent(t *testing.T) {
	_, s := testStorage(t)
	ctx := context.Background()

	user := testUser(t, s, models.RoleUser, 2000)
	merchant := testUser(t, s, models.RoleMerchant, 0)
	id := testCredit(t, s, user, merchant, models.CreditStatusReview, 1000)
	if _, err := s.Credits.ApproveCredit(ctx, models.Approval{CreditID: id, AdminAlias: "root", DownPayment: decimal.Zero}); err != nil {
		t.Fatalf("approve error: %v", err)
	}

	const workers = 4
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Credits.RepayCredit(ctx, id, user.UserID, decimal.NewFromInt(600))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrOverpayment):
		default:
			t.Errorf("unexpected repay error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("succeeded repays = %d, want 1", succeeded)
	}

	c, err := s.Credits.GetCredit(ctx, id)
	if err != nil {
		t.Fatalf("failed to get credit: %v", err)
	}
	if c.RepaidAmount.GreaterThan(c.TotalDue) {
		t.Errorf("repaid %s exceeds total due %s", c.RepaidAmount, c.TotalDue)
	}
	if !c.RepaidAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("repaid = %s, want 600", c.RepaidAmount)
	}
	if got := balance(t, s, user.Alias); !got.Equal(decimal.NewFromInt(1400)) {
		t.Errorf("user balance = %s, want 1400", got)
	}
}

func TestClaimCreditsSkipsLocked(t *testing.T) {
	db, s := testStorage(t)
	ctx := context.Background()

	user := testUser(t, s, models.RoleUser, 0)
	merchant := testUser(t, s, models.RoleMerchant, 0)
	locked := testCredit(t, s, user, merchant, models.CreditStatusPending, 1000)
	free := testCredit(t, s, user, merchant, models.CreditStatusPending, 1000)

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)
	if _, err := tx.Exec(ctx, `SELECT id FROM CREDITS WHERE id = $1 FOR UPDATE;`, locked); err != nil {
		t.Fatalf("failed to lock credit: %v", err)
	}

	ids, err := s.Credits.ClaimCreditsForAssessment(ctx, 1000)
	if err != nil {
		t.Fatalf("claim error: %v", err)
	}
	claimed := make(map[string]bool, len(ids))
	for _, id := range ids {
		claimed[id] = true
	}
	if claimed[locked] {
		t.Errorf("locked credit %s was claimed", locked)
	}
	if !claimed[free] {
		t.Errorf("free credit %s was not claimed", free)
	}

	// выборка не меняет статус и не считается попыткой
	c, err := s.Credits.GetCredit(ctx, free)
	if err != nil {
		t.Fatalf("failed to get credit: %v", err)
	}
	if c.Status != models.CreditStatusPending {
		t.Errorf("claimed credit status = %s, want pending", c.Status)
	}
}

func TestRecordAssessmentFailure(t *testing.T) {
	_, s := testStorage(t)
	ctx := context.Background()

	user := testUser(t, s, models.RoleUser, 0)
	merchant := testUser(t, s, models.RoleMerchant, 0)
	id := testCredit(t, s, user, merchant, models.CreditStatusPending, 1000)

	const reason = "scoring failed after 3 attempts, manual review"
	want := []string{models.CreditStatusPending, models.CreditStatusPending, models.CreditStatusReview}
	for i, status := range want {
		got, err := s.Credits.RecordAssessmentFailure(ctx, id, 3, reason)
		if err != nil {
			t.Fatalf("attempt %d: record failure error: %v", i+1, err)
		}
		if got != status {
			t.Errorf("attempt %d: status = %s, want %s", i+1, got, status)
		}
	}
	if _, err := s.Credits.RecordAssessmentFailure(ctx, id, 3, reason); !errors.Is(err, ErrStatusConflict) {
		t.Errorf("record failure after review = %v, want %v", err, ErrStatusConflict)
	}

	c, err := s.Credits.GetCredit(ctx, id)
	if err != nil {
		t.Fatalf("failed to get credit: %v", err)
	}
	if c.Reason != reason {
		t.Errorf("reason = %q, want %q", c.Reason, reason)
	}
}
