package usecase

import (
	"context"

	"rentbaaz/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (entity.User, error)
	GetByMobileNumber(ctx context.Context, mobile string) (entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	MobileTaken(ctx context.Context, mobile string) (bool, error)
	IDTaken(ctx context.Context, id string) (bool, error)
	UpdatePassword(ctx context.Context, userID, hash string) error
	UpdateProfile(ctx context.Context, u entity.User) error
	UpdatePlan(ctx context.Context, userID, planID string) error
	Delete(ctx context.Context, userID string) error
	AddProduct(ctx context.Context, userID, productID string) error
	ProductIDs(ctx context.Context, userID string) ([]string, error)
}
