package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	// FindUserByEmail returns (nil, nil) when no document matches.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindDoctors(ctx context.Context) ([]models.User, error)
}
