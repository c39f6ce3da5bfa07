package usecase

import (
	"context"

	"rentbaaz/internal/entity"
)

type ComplaintRepository interface {
	Create(ctx context.Context, c *entity.Complaint) error
	Get(ctx context.Context, complaintID string) (entity.Complaint, error)
	IDTaken(ctx context.Context, complaintID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Complaint, error)
	ListByStatus(ctx context.Context, status int) ([]entity.Complaint, error)
	UpdateStatus(ctx context.Context, complaintID string, status int) error
	UpdateCost(ctx context.Context, complaintID string, cost float64) error
	Update(ctx context.Context, c entity.Complaint) error
	Delete(ctx context.Context, complaintID string) error
}
