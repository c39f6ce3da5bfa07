package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/usecase"
)

const complaintColumns = `id, user_id, product_id, faults, problem_desc,
	date_of_complaint, date_of_maintenance, status, cost`

type ComplaintPG struct {
	db *pgxpool.Pool
}

func NewComplaintPG(db *pgxpool.Pool) *ComplaintPG {
	return &ComplaintPG{db: db}
}

func scanComplaint(row pgx.Row) (entity.Complaint, error) {
	var c entity.Complaint
	err := row.Scan(
		&c.ID, &c.UserID, &c.ProductID, &c.Faults, &c.ProblemDesc,
		&c.DateOfComplaint, &c.DateOfMaintenance, &c.Status, &c.Cost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Complaint{}, usecase.ErrNotFound
		}
		return entity.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintPG) Create(ctx context.Context, c *entity.Complaint) error {
	const query = `
	INSERT INTO complaints (id, user_id, product_id, faults, problem_desc,
		date_of_complaint, date_of_maintenance, status, cost)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.UserID, c.ProductID, c.Faults, c.ProblemDesc,
		c.DateOfComplaint, c.DateOfMaintenance, c.Status, c.Cost,
	)
	return err
}

func (r *ComplaintPG) Get(ctx context.Context, complaintID string) (entity.Complaint, error) {
	const query = `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1 LIMIT 1`
	return scanComplaint(r.db.QueryRow(ctx, query, complaintID))
}

func (r *ComplaintPG) IDTaken(ctx context.Context, complaintID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM complaints WHERE id = $1)`
	var taken bool
	err := r.db.QueryRow(ctx, query, complaintID).Scan(&taken)
	return taken, err
}

func (r *ComplaintPG) listQuery(ctx context.Context, query string, args ...any) ([]entity.Complaint, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []entity.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

func (r *ComplaintPG) ListByUser(ctx context.Context, userID string) ([]entity.Complaint, error) {
	const query = `SELECT ` + complaintColumns + ` FROM complaints WHERE user_id = $1 ORDER BY date_of_complaint DESC`
	return r.listQuery(ctx, query, userID)
}

func (r *ComplaintPG) ListByStatus(ctx context.Context, status int) ([]entity.Complaint, error) {
	const query = `SELECT ` + complaintColumns + ` FROM complaints WHERE status = $1 ORDER BY date_of_complaint DESC`
	return r.listQuery(ctx, query, status)
}

func (r *ComplaintPG) UpdateStatus(ctx context.Context, complaintID string, status int) error {
	return r.update(ctx, `UPDATE complaints SET status = $1 WHERE id = $2`, status, complaintID)
}

func (r *ComplaintPG) UpdateCost(ctx context.Context, complaintID string, cost float64) error {
	return r.update(ctx, `UPDATE complaints SET cost = $1 WHERE id = $2`, cost, complaintID)
}

func (r *ComplaintPG) Update(ctx context.Context, c entity.Complaint) error {
	const query = `
	UPDATE complaints SET faults = $1, problem_desc = $2, date_of_complaint = $3,
		date_of_maintenance = $4, status = $5, cost = $6
	WHERE id = $7
	`
	return r.update(ctx, query,
		c.Faults, c.ProblemDesc, c.DateOfComplaint, c.DateOfMaintenance,
		c.Status, c.Cost, c.ID,
	)
}

func (r *ComplaintPG) Delete(ctx context.Context, complaintID string) error {
	return r.update(ctx, `DELETE FROM complaints WHERE id = $1`, complaintID)
}

func (r *ComplaintPG) update(ctx context.Context, query string, args ...any) error {
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
