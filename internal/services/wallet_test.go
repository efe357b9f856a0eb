package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/denmor86/paytik/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestWalletService_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	wallet := NewWallet(mockUsers, mockTransactions)

	testCases := []struct {
		TestName      string
		Amount        decimal.Decimal
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Success. Cash deposit #1",
			Amount:   decimal.RequireFromString("5000"),
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockTransactions.EXPECT().Deposit(gomock.Any(), "1", decimal.RequireFromString("5000"), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			TestName:      "Error. Negative amount #2",
			Amount:        decimal.RequireFromString("-1"),
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			TestName:      "Error. Fractional cents #3",
			Amount:        decimal.RequireFromString("10.005"),
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
		{
			TestName: "Error. User not found #4",
			Amount:   decimal.RequireFromString("100"),
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := wallet.Deposit(ctx, "mda", tc.Amount)

			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestWalletService_Transfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	pinHash, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	sender := &models.UserData{UserID: "1", Alias: "mda", Balance: decimal.RequireFromString("1000")}
	senderWithPin := &models.UserData{UserID: "1", Alias: "mda", Balance: decimal.RequireFromString("1000"), PinHash: string(pinHash)}
	receiver := &models.UserData{UserID: "2", Alias: "awa"}

	wallet := NewWallet(mockUsers, mockTransactions)

	testCases := []struct {
		TestName      string
		Request       models.TransferRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Success. Transfer #1",
			Request:  models.TransferRequest{To: "awa", Amount: decimal.RequireFromString("250.50"), Reason: "loyer"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(sender, nil)
				mockUsers.EXPECT().GetUser(gomock.Any(), "awa").Return(receiver, nil)
				mockTransactions.EXPECT().Transfer(gomock.Any(), models.Transfer{
					FromUserID:   "1",
					ToUserID:     "2",
					FromAlias:    "mda",
					ToAlias:      "awa",
					Amount:       decimal.RequireFromString("250.50"),
					Reason:       "loyer",
					SentType:     models.TransactionSent,
					ReceivedType: models.TransactionReceived,
				}).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Success. Transfer with pin #2",
			Request:  models.TransferRequest{To: "awa", Amount: decimal.RequireFromString("10"), Pin: "1234"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(senderWithPin, nil)
				mockUsers.EXPECT().GetUser(gomock.Any(), "awa").Return(receiver, nil)
				mockTransactions.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Error. Wrong pin #3",
			Request:  models.TransferRequest{To: "awa", Amount: decimal.RequireFromString("10"), Pin: "0000"},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(senderWithPin, nil)
			},
			ExpectedError: ErrInvalidPIN,
		},
		{
			TestName:      "Error. Self transfer #4",
			Request:       models.TransferRequest{To: "mda", Amount: decimal.RequireFromString("10")},
			SetupMocks:    func() {},
			ExpectedError: ErrSelfTransfer,
		},
		{
			TestName: "Error. Insufficient funds #5",
			Request:  models.TransferRequest{To: "awa", Amount: decimal.RequireFromString("1000.01")},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(sender, nil)
			},
			ExpectedError: ErrInsufficientFunds,
		},
		{
			TestName: "Error. Balance changed concurrently #6",
			Request:  models.TransferRequest{To: "awa", Amount: decimal.RequireFromString("900")},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(sender, nil)
				mockUsers.EXPECT().GetUser(gomock.Any(), "awa").Return(receiver, nil)
				mockTransactions.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(storage.ErrInsufficientFunds)
			},
			ExpectedError: ErrInsufficientFunds,
		},
		{
			TestName: "Error. Receiver not found #7",
			Request:  models.TransferRequest{To: "nobody", Amount: decimal.RequireFromString("10")},
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(sender, nil)
				mockUsers.EXPECT().GetUser(gomock.Any(), "nobody").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
		{
			TestName:      "Error. Zero amount #8",
			Request:       models.TransferRequest{To: "awa", Amount: decimal.Zero},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := wallet.Transfer(ctx, "mda", tc.Request)

			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestWalletService_GetTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)
	mockTransactions := mocks.NewMockTransactionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	wallet := NewWallet(mockUsers, mockTransactions)
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		TestName             string
		SetupMocks           func()
		ExpectedError        error
		ExpectedTransactions []models.TransactionData
	}{
		{
			TestName: "Error. User not found #1",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError:        storage.ErrUserNotFound,
			ExpectedTransactions: nil,
		},
		{
			TestName: "Error. Failed get transactions #2",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockTransactions.EXPECT().GetTransactions(gomock.Any(), "1").Return(nil, errors.New("failed to get transactions"))
			},
			ExpectedError:        errors.New("failed to get transactions"),
			ExpectedTransactions: nil,
		},
		{
			TestName: "Success. Transactions #3",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockTransactions.EXPECT().GetTransactions(gomock.Any(), "1").Return([]models.TransactionData{
					{ID: "t1", Type: models.TransactionVersement, Amount: decimal.RequireFromString("5000"), Status: models.TransactionStatusCompleted, CreatedAt: date},
				}, nil)
			},
			ExpectedError: nil,
			ExpectedTransactions: []models.TransactionData{
				{ID: "t1", Type: models.TransactionVersement, Amount: decimal.RequireFromString("5000"), Status: models.TransactionStatusCompleted, CreatedAt: date},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			transactions, err := wallet.GetTransactions(ctx, "mda")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedTransactions, transactions)
			if len(diff) != 0 {
				t.Errorf("expected transactions mismatch:\n %s", diff)
			}
		})
	}
}

func TestTrimReason(t *testing.T) {
	long := strings.Repeat("é", MaxReasonLength+10)
	got := trimReason("  " + long + "  ")
	if n := len([]rune(got)); n != MaxReasonLength {
		t.Errorf("Expected %d runes, got: %d", MaxReasonLength, n)
	}
	if trimReason("  loyer ") != "loyer" {
		t.Errorf("Expected trimmed reason")
	}
}
