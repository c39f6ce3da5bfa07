package usecase

import (
	"context"

	"rentbaaz/internal/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	Get(ctx context.Context, productID string) (entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	IDTaken(ctx context.Context, productID string) (bool, error)
	Update(ctx context.Context, p entity.Product) error
	Delete(ctx context.Context, productID string) error
	AddFault(ctx context.Context, productID, fault string) error
	RemoveFault(ctx context.Context, productID, fault string) error
	Faults(ctx context.Context, productID string) ([]entity.ProductFault, error)
}
