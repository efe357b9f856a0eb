package storage

import (
	"context"
	"errors"

	"github.com/denmor86/paytik/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/storage_mock.go -package=mocks github.com/denmor86/paytik/internal/storage UsersStorage,TransactionsStorage,CreditsStorage,SavingsStorage

type UsersStorage interface {
	AddUser(ctx context.Context, alias string, password string, role string) error
	GetUser(ctx context.Context, alias string) (*models.UserData, error)
	GetUserBalance(ctx context.Context, alias string) (*models.UserBalance, error)
	SetPin(ctx context.Context, userID string, pinHash string) error
	GetManagedUsers(ctx context.Context) ([]models.ManagedUser, error)
	GetManagedUser(ctx context.Context, alias string) (*models.ManagedUser, error)
}

type TransactionsStorage interface {
	Deposit(ctx context.Context, userID string, amount decimal.Decimal, reason string) error
	Transfer(ctx context.Context, transfer models.Transfer) error
	GetTransactions(ctx context.Context, userID string) ([]models.TransactionData, error)
}

type CreditsStorage interface {
	AddCredit(ctx context.Context, credit models.CreditRequest) error
	GetCredit(ctx context.Context, id string) (*models.CreditRequest, error)
	GetCredits(ctx context.Context, userID string) ([]models.CreditRequest, error)
	GetCreditsByStatus(ctx context.Context, status string) ([]models.CreditRequest, error)
	ClaimCreditsForAssessment(ctx context.Context, count int) ([]string, error)
	UpdateAssessment(ctx context.Context, id string, status string, assessment models.Assessment) error
	RecordAssessmentFailure(ctx context.Context, id string, maxAttempts int, reason string) (string, error)
	ApproveCredit(ctx context.Context, approval models.Approval) (*models.CreditRequest, error)
	RejectCredit(ctx context.Context, id string, reason string) error
	RepayCredit(ctx context.Context, id string, userID string, amount decimal.Decimal) (*models.CreditRequest, error)
}

type SavingsStorage interface {
	AddVault(ctx context.Context, vault models.VaultData) error
	GetVaults(ctx context.Context, userID string) ([]models.VaultData, error)
	DepositVault(ctx context.Context, movement models.Movement) error
	WithdrawVault(ctx context.Context, movement models.Movement) error
	AddTontine(ctx context.Context, tontine models.TontineData) error
	GetTontines(ctx context.Context, userID string) ([]models.TontineData, error)
	ContributeTontine(ctx context.Context, movement models.Movement) error
	AddCard(ctx context.Context, card models.CardData) error
	GetCard(ctx context.Context, userID string) (*models.CardData, error)
	RechargeCard(ctx context.Context, movement models.Movement) error
}

type Storage struct {
	Users        UsersStorage
	Transactions TransactionsStorage
	Credits      CreditsStorage
	Savings      SavingsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:        NewUsersStorage(db),
		Transactions: NewTransactionsStorage(db),
		Credits:      NewCreditsStorage(db),
		Savings:      NewSavingsStorage(db),
	}
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCreditNotFound  = errors.New("credit request not found")
	ErrVaultNotFound   = errors.New("vault not found")
	ErrTontineNotFound = errors.New("tontine not found")
	ErrCardNotFound    = errors.New("card not found")

	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStatusConflict    = errors.New("credit request status changed")
	ErrOverpayment       = errors.New("repayment exceeds outstanding amount")
)
