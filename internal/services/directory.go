package services

import (
	"context"
	"errors"

	"github.com/denmor86/paytik/internal/logger"
	"github.com/denmor86/paytik/internal/models"
	"github.com/denmor86/paytik/internal/storage"
	"go.uber.org/zap"
)

type DirectoryService interface {
	ListUsers(ctx context.Context) ([]models.ManagedUser, error)
	GetUser(ctx context.Context, alias string) (*models.ManagedUser, error)
}

type Directory struct {
	Users storage.UsersStorage
}

// Создание сервиса
func NewDirectory(users storage.UsersStorage) DirectoryService {
	return &Directory{Users: users}
}

// ListUsers - сводка по всем пользователям для администратора
func (d *Directory) ListUsers(ctx context.Context) ([]models.ManagedUser, error) {
	users, err := d.Users.GetManagedUsers(ctx)
	if err != nil {
		logger.Error("Failed to get managed users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (d *Directory) GetUser(ctx context.Context, alias string) (*models.ManagedUser, error) {
	user, err := d.Users.GetManagedUser(ctx, alias)
	if err != nil {
		if !errors.Is(err, storage.ErrUserNotFound) {
			logger.Error("Failed to get managed user", zap.Error(err))
		}
		return nil, err
	}
	return user, nil
}
