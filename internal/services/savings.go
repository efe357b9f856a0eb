package services

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/denmor86/paytik/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidName         = errors.New("name must not be empty")
	ErrVaultNotFound       = errors.New("vault not found")
	ErrTontineNotFound     = errors.New("tontine not found")
	ErrCardNotFound        = errors.New("card not found")
	ErrCardAlreadyIssued   = errors.New("card already issued")
	ErrInvalidContribution = errors.New("invalid contribution amount")
)

const (
	// CardPrefix - BIN виртуальных карт
	CardPrefix     = "539923"
	CardLength     = 16
	CardValidYears = 3
)

type SavingsService interface {
	CreateVault(ctx context.Context, alias string, request models.VaultRequest) (*models.VaultData, error)
	GetVaults(ctx context.Context, alias string) ([]models.VaultData, error)
	DepositVault(ctx context.Context, alias string, id string, amount decimal.Decimal) error
	WithdrawVault(ctx context.Context, alias string, id string, amount decimal.Decimal) error
	CreateTontine(ctx context.Context, alias string, request models.TontineRequest) (*models.TontineData, error)
	GetTontines(ctx context.Context, alias string) ([]models.TontineData, error)
	ContributeTontine(ctx context.Context, alias string, id string) error
	IssueCard(ctx context.Context, alias string) (*models.CardData, error)
	GetCard(ctx context.Context, alias string) (*models.CardData, error)
	RechargeCard(ctx context.Context, alias string, amount decimal.Decimal) error
}

type Savings struct {
	Users   storage.UsersStorage
	Savings storage.SavingsStorage
	NewPAN  func() (string, error)
	Now     func() time.Time
}

// Создание сервиса
func NewSavings(users storage.UsersStorage, savings storage.SavingsStorage) SavingsService {
	return &Savings{
		Users:   users,
		Savings: savings,
		NewPAN:  GeneratePAN,
		Now:     time.Now,
	}
}

// GeneratePAN - случайный номер карты с контрольной цифрой по алгоритму Луна
func GeneratePAN() (string, error) {
	var b strings.Builder
	b.WriteString(CardPrefix)
	for b.Len() < CardLength-1 {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteString(n.String())
	}
	digit, ok := validators.LuhnDigit(b.String())
	if !ok {
		return "", errors.New("failed to compute check digit")
	}
	b.WriteString(strconv.Itoa(digit))
	return b.String(), nil
}

func (s *Savings) CreateVault(ctx context.Context, alias string, request models.VaultRequest) (*models.VaultData, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if request.Target.IsNegative() || !request.Target.Equal(request.Target.Round(2)) {
		return nil, ErrInvalidAmount
	}
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return nil, err
	}
	vault := models.VaultData{
		ID:        uuid.New().String(),
		UserID:    user.UserID,
		Name:      name,
		Target:    request.Target,
		Balance:   decimal.Zero,
		CreatedAt: s.Now(),
	}
	if err := s.Savings.AddVault(ctx, vault); err != nil {
		logger.Error("Failed to add vault", zap.Error(err))
		return nil, err
	}
	return &vault, nil
}

func (s *Savings) GetVaults(ctx context.Context, alias string) ([]models.VaultData, error) {
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return nil, err
	}
	return s.Savings.GetVaults(ctx, user.UserID)
}

// DepositVault - перевод из кошелька в копилку
func (s *Savings) DepositVault(ctx context.Context, alias string, id string, amount decimal.Decimal) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return err
	}
	err = s.Savings.DepositVault(ctx, models.Movement{
		UserID:       user.UserID,
		TargetID:     id,
		Amount:       amount,
		Type:         models.TransactionVault,
		Counterparty: "vault",
		Reason:       "vault deposit",
	})
	return mapSavingsError(err)
}

// WithdrawVault - возврат из копилки в кошелёк
func (s *Savings) WithdrawVault(ctx context.Context, alias string, id string, amount decimal.Decimal) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return err
	}
	err = s.Savings.WithdrawVault(ctx, models.Movement{
		UserID:       user.UserID,
		TargetID:     id,
		Amount:       amount,
		Type:         models.TransactionVault,
		Counterparty: "vault",
		Reason:       "vault withdrawal",
	})
	return mapSavingsError(err)
}

func (s *Savings) CreateTontine(ctx context.Context, alias string, request models.TontineRequest) (*models.TontineData, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !validAmount(request.Contribution) {
		return nil, ErrInvalidContribution
	}
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return nil, err
	}
	tontine := models.TontineData{
		ID:           uuid.New().String(),
		UserID:       user.UserID,
		Name:         name,
		Contribution: request.Contribution,
		Balance:      decimal.Zero,
		CreatedAt:    s.Now(),
	}
	if err := s.Savings.AddTontine(ctx, tontine); err != nil {
		logger.Error("Failed to add tontine", zap.Error(err))
		return nil, err
	}
	return &tontine, nil
}

func (s *Savings) GetTontines(ctx context.Context, alias string) ([]models.TontineData, error) {
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return nil, err
	}
	return s.Savings.GetTontines(ctx, user.UserID)
}

// ContributeTontine - взнос фиксированной суммы участия
func (s *Savings) ContributeTontine(ctx context.Context, alias string, id string) error {
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return err
	}
	err = s.Savings.ContributeTontine(ctx, models.Movement{
		UserID:   user.UserID,
		TargetID: id,
		Type:     models.TransactionTontine,
		Reason:   "tontine contribution",
	})
	return mapSavingsError(err)
}

// IssueCard - выпуск виртуальной карты, не более одной на пользователя
func (s *Savings) IssueCard(ctx context.Context, alias string) (*models.CardData, error) {
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return nil, err
	}
	number, err := s.NewPAN()
	if err != nil {
		return nil, err
	}
	now := s.Now()
	card := models.CardData{
		ID:        uuid.New().String(),
		UserID:    user.UserID,
		Number:    number,
		Holder:    user.Alias,
		ExpiresAt: now.AddDate(CardValidYears, 0, 0),
		Balance:   decimal.Zero,
		CreatedAt: now,
	}
	if err := s.Savings.AddCard(ctx, card); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrCardAlreadyIssued
		}
		logger.Error("Failed to add card", zap.Error(err))
		return nil, err
	}
	logger.Infow("Card issued", "alias", alias, "number", card.MaskedNumber())
	return &card, nil
}

func (s *Savings) GetCard(ctx context.Context, alias string) (*models.CardData, error) {
	user, err := s.Users.GetUser(ctx, alias)
	if err != nil {
		return nil, err
	}
	card, err := s.Savings.GetCard(ctx, user.UserID)
	if err != nil {
		return nil, mapSavingsError(err)
	}
	return card, nil
}

// RechargeCard - пополнение карты с кошелька
func (s *Savings) RechargeCard(ctx context.Context, alias string, amount decimal.Decimal) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	card, err := s.GetCard(ctx, alias)
	if err != nil {
		return err
	}
	err = s.Savings.RechargeCard(ctx, models.Movement{
		UserID:       card.UserID,
		TargetID:     card.ID,
		Amount:       amount,
		Type:         models.TransactionCardRecharge,
		Counterparty: card.MaskedNumber(),
		Reason:       "card recharge",
	})
	return mapSavingsError(err)
}

func mapSavingsError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrVaultNotFound):
		return ErrVaultNotFound
	case errors.Is(err, storage.ErrTontineNotFound):
		return ErrTontineNotFound
	case errors.Is(err, storage.ErrCardNotFound):
		return ErrCardNotFound
	case errors.Is(err, storage.ErrInsufficientFunds):
		return ErrInsufficientFunds
	default:
		return err
	}
}
