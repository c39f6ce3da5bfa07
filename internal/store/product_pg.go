package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/usecase"
)

type ProductPG struct {
	db *pgxpool.Pool
}

func NewProductPG(db *pgxpool.Pool) *ProductPG {
	return &ProductPG{db: db}
}

func (r *ProductPG) Create(ctx context.Context, product *entity.Product) error {
	const query = `INSERT INTO products (id, name, model) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, product.ID, product.Name, product.Model)
	return err
}

func (r *ProductPG) Get(ctx context.Context, productID string) (entity.Product, error) {
	const query = `SELECT id, name, model FROM products WHERE id = $1 LIMIT 1`
	var product entity.Product
	err := r.db.QueryRow(ctx, query, productID).Scan(&product.ID, &product.Name, &product.Model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Product{}, usecase.ErrNotFound
		}
		return entity.Product{}, err
	}
	return product, nil
}

func (r *ProductPG) List(ctx context.Context) ([]entity.Product, error) {
	const query = `SELECT id, name, model FROM products ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Model); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductPG) IDTaken(ctx context.Context, productID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`
	var taken bool
	err := r.db.QueryRow(ctx, query, productID).Scan(&taken)
	return taken, err
}

func (r *ProductPG) Update(ctx context.Context, product entity.Product) error {
	const query = `UPDATE products SET name = $1, model = $2 WHERE id = $3`
	result, err := r.db.Exec(ctx, query, product.Name, product.Model, product.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ProductPG) Delete(ctx context.Context, productID string) error {
	const query = `DELETE FROM products WHERE id = $1`
	result, err := r.db.Exec(ctx, query, productID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ProductPG) AddFault(ctx context.Context, productID, fault string) error {
	const query = `INSERT INTO product_faults (product_id, fault) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, query, productID, fault)
	return err
}

func (r *ProductPG) RemoveFault(ctx context.Context, productID, fault string) error {
	const query = `DELETE FROM product_faults WHERE product_id = $1 AND fault = $2`
	result, err := r.db.Exec(ctx, query, productID, fault)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ProductPG) Faults(ctx context.Context, productID string) ([]entity.ProductFault, error) {
	const query = `SELECT product_id, fault FROM product_faults WHERE product_id = $1`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faults []entity.ProductFault
	for rows.Next() {
		var f entity.ProductFault
		if err := rows.Scan(&f.ProductID, &f.Fault); err != nil {
			return nil, err
		}
		faults = append(faults, f)
	}
	return faults, rows.Err()
}
