package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) error
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	LogoutUser(ctx context.Context, request *requests.LogoutUser) error
	FindAllDoctors(ctx context.Context) ([]responses.Doctor, error)
}
