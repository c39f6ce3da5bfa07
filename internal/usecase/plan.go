package usecase

import (
	"context"

	"rentbaaz/internal/entity"
)

type PlanRepository interface {
	Create(ctx context.Context, p *entity.Plan) error
	Get(ctx context.Context, planID string) (entity.Plan, error)
	List(ctx context.Context) ([]entity.Plan, error)
	IDTaken(ctx context.Context, planID string) (bool, error)
	UpdateCost(ctx context.Context, planID string, cost float64) error
	UpdateName(ctx context.Context, planID, name string) error
	UpdateDescription(ctx context.Context, planID, description string) error
	Delete(ctx context.Context, planID string) error
	AddProduct(ctx context.Context, planID, productName string) error
	RemoveProduct(ctx context.Context, planID, productName string) error
	Products(ctx context.Context, planID string) ([]entity.PlanProduct, error)
	HasProduct(ctx context.Context, planID, productName string) (bool, error)
	UsersOnPlan(ctx context.Context, planID string) ([]entity.User, error)
}
