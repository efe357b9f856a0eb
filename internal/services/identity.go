package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/helpers"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/denmor86/paytik/internal/validators"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=mocks/services_mock.go -package=mocks github.com/denmor86/paytik/internal/services IdentityService,WalletService,CreditService,SavingsService,DirectoryService

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error)
	SetPin(ctx context.Context, alias string, pin string) error
	EnsureAdmin(ctx context.Context, alias string, password string) error
	GenerateJWT(alias string, role string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.UsersStorage
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid alias or password")
	ErrInvalidAlias       = errors.New("invalid alias format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidPassword    = errors.New("password must not be empty")
	ErrInvalidPINFormat   = errors.New("pin must be 4 digits")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового пользователя.
// Роль admin через публичную регистрацию не выдаётся.
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	logger.Info("Register user:", user.Alias)

	if !validators.CheckAlias(user.Alias) {
		return ErrInvalidAlias
	}
	if user.Password == "" {
		return ErrInvalidPassword
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Role != models.RoleUser && user.Role != models.RoleMerchant {
		return ErrInvalidRole
	}

	existing, err := i.Storage.GetUser(ctx, user.Alias)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		logger.Error("Error getting user", zap.Error(err))
		return err
	}
	if existing != nil {
		logger.Warn("User already exist", user.Alias)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	err = i.Storage.AddUser(ctx, user.Alias, string(hashedPassword), user.Role)
	if err != nil {
		// гонка двух регистраций с одним алиасом
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Alias, err)
		return err
	}
	return nil
}

// EnsureAdmin - создаёт учётную запись администратора при старте, если её ещё нет
func (i *Identity) EnsureAdmin(ctx context.Context, alias string, password string) error {
	if alias == "" || password == "" {
		return nil
	}
	if !validators.CheckAlias(alias) {
		return ErrInvalidAlias
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = i.Storage.AddUser(ctx, alias, string(hashedPassword), models.RoleAdmin)
	if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		return err
	}
	return nil
}

// Аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error) {
	logger.Info("Authenticate user", user.Alias)

	stored, err := i.Storage.GetUser(ctx, user.Alias)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("Unknown user", user.Alias)
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting user", err)
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(user.Password))
	if err != nil {
		logger.Warn("Invalid password", user.Alias)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", user.Alias)
	return stored, nil
}

// SetPin - установка или смена PIN для исходящих переводов
func (i *Identity) SetPin(ctx context.Context, alias string, pin string) error {
	if !validators.CheckPin(pin) {
		return ErrInvalidPINFormat
	}
	user, err := i.Storage.GetUser(ctx, alias)
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return i.Storage.SetPin(ctx, user.UserID, string(hashed))
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(alias string, role string) (string, error) {
	claims := map[string]interface{}{
		helpers.ClaimAlias: alias,
		helpers.ClaimRole:  role,
	}
	jwtauth.SetExpiryIn(claims, TokenExpirationTime)
	_, tokenString, err := i.JWTAuth.Encode(claims)
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
