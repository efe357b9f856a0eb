package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/paytik/internal/config"
	"github.com/denmor86/paytik/internal/helpers"
	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/storage"
	"github.com/denmor86/paytik/internal/storage/mocks"
	"golang.org/x/crypto/bcrypt"

	"go.uber.org/mock/gomock"
)

func TestNewIdentityService(t *testing.T) {
	t.Run("Identity_CreatesService", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockUsers := mocks.NewMockUsersStorage(ctrl)

		config := config.DefaultConfig()
		identity := NewIdentity(config, mockUsers)
		baseService, ok := identity.(*Identity)
		if !ok {
			t.Fatalf("Expected *Identity, got: '%T'", identity)
		}
		if baseService == nil || baseService.JWTAuth == nil {
			t.Errorf("Expected Identity to be initialized with JWTAuth")
		}
		if baseService.Storage != mockUsers {
			t.Errorf("Expected Identity to be initialized with provided storage")
		}
	})
}

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
		user          models.UserRequest
	}{
		{
			name: "Register User: Success #1",
			setupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "+22507080910").Return(nil, storage.ErrUserNotFound)
				mockUsers.EXPECT().AddUser(gomock.Any(), "+22507080910", gomock.Any(), models.RoleUser).Return(nil)
			},
			expectedError: nil,
			user:          models.UserRequest{Alias: "+22507080910", Password: "test_pass"},
		},
		{
			name: "Register User: Merchant success #2",
			setupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "boutique.awa").Return(nil, storage.ErrUserNotFound)
				mockUsers.EXPECT().AddUser(gomock.Any(), "boutique.awa", gomock.Any(), models.RoleMerchant).Return(nil)
			},
			expectedError: nil,
			user:          models.UserRequest{Alias: "boutique.awa", Password: "test_pass", Role: models.RoleMerchant},
		},
		{
			name: "Register User: ErrUserAlreadyExists #3",
			setupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{Alias: "mda"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
			user:          models.UserRequest{Alias: "mda", Password: "test_pass"},
		},
		{
			name: "Register User: Concurrent registration #4",
			setupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
				mockUsers.EXPECT().AddUser(gomock.Any(), "mda", gomock.Any(), models.RoleUser).Return(storage.ErrAlreadyExists)
			},
			expectedError: ErrUserAlreadyExists,
			user:          models.UserRequest{Alias: "mda", Password: "test_pass"},
		},
		{
			name: "Register User: Undefined error #5",
			setupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
				mockUsers.EXPECT().AddUser(gomock.Any(), "mda", gomock.Any(), models.RoleUser).Return(errors.New("failed to add user"))
			},
			expectedError: errors.New("failed to add user"),
			user:          models.UserRequest{Alias: "mda", Password: "test_pass"},
		},
		{
			name:          "Register User: Invalid alias #6",
			setupMocks:    func() {},
			expectedError: ErrInvalidAlias,
			user:          models.UserRequest{Alias: "M D", Password: "test_pass"},
		},
		{
			name:          "Register User: Admin role denied #7",
			setupMocks:    func() {},
			expectedError: ErrInvalidRole,
			user:          models.UserRequest{Alias: "mda", Password: "test_pass", Role: models.RoleAdmin},
		},
		{
			name:          "Register User: Empty password #8",
			setupMocks:    func() {},
			expectedError: ErrInvalidPassword,
			user:          models.UserRequest{Alias: "mda"},
		},
		{
			name:          "Register User: Phone without plus #9",
			setupMocks:    func() {},
			expectedError: ErrInvalidAlias,
			user:          models.UserRequest{Alias: "22507080910", Password: "test_pass"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := identity.RegisterUser(ctx, tc.user)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("test_pass"), bcrypt.MinCost)

	testCases := []struct {
		name          string
		mockReturn    func(ctx context.Context, alias string) (*models.UserData, error)
		user          models.UserRequest
		expectedAuth  bool
		expectedError error
	}{
		{
			name: "AuthenticateUser Success #1",
			mockReturn: func(ctx context.Context, alias string) (*models.UserData, error) {
				return &models.UserData{UserID: "1", Alias: "mda", Role: models.RoleUser, PasswordHash: string(passwordHash)}, nil
			},
			user:          models.UserRequest{Alias: "mda", Password: "test_pass"},
			expectedAuth:  true,
			expectedError: nil,
		},
		{
			name: "AuthenticateUser UserNotFound #2",
			mockReturn: func(ctx context.Context, alias string) (*models.UserData, error) {
				return nil, storage.ErrUserNotFound
			},
			user:          models.UserRequest{Alias: "mda", Password: "test_pass"},
			expectedAuth:  false,
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "AuthenticateUser InvalidPassword #3",
			mockReturn: func(ctx context.Context, alias string) (*models.UserData, error) {
				return &models.UserData{UserID: "1", Alias: "mda", PasswordHash: "test_pass"}, nil
			},
			user:          models.UserRequest{Alias: "mda", Password: "test_pass"},
			expectedAuth:  false,
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "AuthenticateUser Storage failure #4",
			mockReturn: func(ctx context.Context, alias string) (*models.UserData, error) {
				return nil, errors.New("connection refused")
			},
			user:          models.UserRequest{Alias: "mda", Password: "test_pass"},
			expectedAuth:  false,
			expectedError: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUsers.EXPECT().GetUser(gomock.Any(), gomock.Any()).DoAndReturn(tc.mockReturn)

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			user, err := identity.AuthenticateUser(ctx, tc.user)

			if authenticated := user != nil; authenticated != tc.expectedAuth {
				t.Errorf("Expected authenticated %v, got %v", tc.expectedAuth, authenticated)
			}

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestSetPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		pin           string
		setupMocks    func()
		expectedError error
	}{
		{
			name: "SetPin Success #1",
			pin:  "1234",
			setupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1", Alias: "mda"}, nil)
				mockUsers.EXPECT().SetPin(gomock.Any(), "1", gomock.Any()).DoAndReturn(
					func(ctx context.Context, userID string, pinHash string) error {
						return bcrypt.CompareHashAndPassword([]byte(pinHash), []byte("1234"))
					})
			},
			expectedError: nil,
		},
		{
			name:          "SetPin Invalid format #2",
			pin:           "12a4",
			setupMocks:    func() {},
			expectedError: ErrInvalidPINFormat,
		},
		{
			name: "SetPin User not found #3",
			pin:  "4321",
			setupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			expectedError: storage.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)
			err := identity.SetPin(context.Background(), "mda", tc.pin)

			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestEnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	identity := NewIdentity(config, mockUsers)

	t.Run("EnsureAdmin Not configured #1", func(t *testing.T) {
		if err := identity.EnsureAdmin(context.Background(), "", ""); err != nil {
			t.Errorf("Expected no error, got: '%v'", err)
		}
	})
	t.Run("EnsureAdmin Created #2", func(t *testing.T) {
		mockUsers.EXPECT().AddUser(gomock.Any(), "admin", gomock.Any(), models.RoleAdmin).Return(nil)
		if err := identity.EnsureAdmin(context.Background(), "admin", "secret"); err != nil {
			t.Errorf("Expected no error, got: '%v'", err)
		}
	})
	t.Run("EnsureAdmin Already exists #3", func(t *testing.T) {
		mockUsers.EXPECT().AddUser(gomock.Any(), "admin", gomock.Any(), models.RoleAdmin).Return(storage.ErrAlreadyExists)
		if err := identity.EnsureAdmin(context.Background(), "admin", "secret"); err != nil {
			t.Errorf("Expected no error, got: '%v'", err)
		}
	})
}

func TestGenerateJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	identity := NewIdentity(config.DefaultConfig(), mockUsers)

	tokenString, err := identity.GenerateJWT("mda", models.RoleMerchant)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	token, err := identity.GetTokenAuth().Decode(tokenString)
	if err != nil {
		t.Fatalf("Failed decode token: '%v'", err)
	}
	claims := token.PrivateClaims()
	if claims[helpers.ClaimAlias] != "mda" {
		t.Errorf("Expected alias claim 'mda', got: '%v'", claims[helpers.ClaimAlias])
	}
	if claims[helpers.ClaimRole] != models.RoleMerchant {
		t.Errorf("Expected role claim '%s', got: '%v'", models.RoleMerchant, claims[helpers.ClaimRole])
	}
	if token.Expiration().Before(time.Now().Add(TokenExpirationTime - time.Minute)) {
		t.Errorf("Expected token expiration about %v, got: '%v'", TokenExpirationTime, token.Expiration())
	}
}
