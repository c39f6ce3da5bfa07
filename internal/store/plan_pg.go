package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/usecase"
)

type PlanPG struct {
	db *pgxpool.Pool
}

func NewPlanPG(db *pgxpool.Pool) *PlanPG {
	return &PlanPG{db: db}
}

func (r *PlanPG) Create(ctx context.Context, plan *entity.Plan) error {
	const query = `INSERT INTO plans (id, name, cost, description) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, plan.ID, plan.Name, plan.Cost, plan.Description)
	return err
}

func (r *PlanPG) Get(ctx context.Context, planID string) (entity.Plan, error) {
	const query = `SELECT id, name, cost, description FROM plans WHERE id = $1 LIMIT 1`
	var plan entity.Plan
	err := r.db.QueryRow(ctx, query, planID).Scan(&plan.ID, &plan.Name, &plan.Cost, &plan.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Plan{}, usecase.ErrNotFound
		}
		return entity.Plan{}, err
	}
	return plan, nil
}

func (r *PlanPG) List(ctx context.Context) ([]entity.Plan, error) {
	const query = `SELECT id, name, cost, description FROM plans ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []entity.Plan
	for rows.Next() {
		var plan entity.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.Cost, &plan.Description); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *PlanPG) IDTaken(ctx context.Context, planID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM plans WHERE id = $1)`
	var taken bool
	err := r.db.QueryRow(ctx, query, planID).Scan(&taken)
	return taken, err
}

func (r *PlanPG) UpdateCost(ctx context.Context, planID string, cost float64) error {
	return r.update(ctx, `UPDATE plans SET cost = $1 WHERE id = $2`, cost, planID)
}

func (r *PlanPG) UpdateName(ctx context.Context, planID, name string) error {
	return r.update(ctx, `UPDATE plans SET name = $1 WHERE id = $2`, name, planID)
}

func (r *PlanPG) UpdateDescription(ctx context.Context, planID, description string) error {
	return r.update(ctx, `UPDATE plans SET description = $1 WHERE id = $2`, description, planID)
}

func (r *PlanPG) update(ctx context.Context, query string, args ...any) error {
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *PlanPG) Delete(ctx context.Context, planID string) error {
	return r.update(ctx, `DELETE FROM plans WHERE id = $1`, planID)
}

func (r *PlanPG) AddProduct(ctx context.Context, planID, productName string) error {
	const query = `INSERT INTO plan_products (plan_id, product_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, query, planID, productName)
	return err
}

func (r *PlanPG) RemoveProduct(ctx context.Context, planID, productName string) error {
	return r.update(ctx, `DELETE FROM plan_products WHERE plan_id = $1 AND product_name = $2`, planID, productName)
}

func (r *PlanPG) Products(ctx context.Context, planID string) ([]entity.PlanProduct, error) {
	const query = `SELECT plan_id, product_name FROM plan_products WHERE plan_id = $1`
	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.PlanProduct
	for rows.Next() {
		var p entity.PlanProduct
		if err := rows.Scan(&p.PlanID, &p.ProductName); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PlanPG) HasProduct(ctx context.Context, planID, productName string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM plan_products WHERE plan_id = $1 AND product_name = $2)`
	var has bool
	err := r.db.QueryRow(ctx, query, planID, productName).Scan(&has)
	return has, err
}

func (r *PlanPG) UsersOnPlan(ctx context.Context, planID string) ([]entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE plan_id = $1 AND role = 'user'`
	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
