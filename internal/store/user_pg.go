package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentbaaz/internal/entity"
	"rentbaaz/internal/usecase"
)

const userColumns = `id, role, person_contact, mobile_number, email, business_name,
	street_address1, street_address2, city, state, country, pincode,
	password, plan_id, created_at`

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Role, &u.PersonContact, &u.MobileNumber, &u.Email,
		&u.BusinessName, &u.StreetAddress1, &u.StreetAddress2, &u.City,
		&u.State, &u.Country, &u.Pincode, &u.Password, &u.PlanID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}

func (r *UserPG) Create(ctx context.Context, user *entity.User) error {
	const query = `
	INSERT INTO users (id, role, person_contact, mobile_number, email, business_name,
		street_address1, street_address2, city, state, country, pincode,
		password, plan_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING created_at
	`
	return r.db.QueryRow(ctx, query,
		user.ID, user.Role, user.PersonContact, user.MobileNumber, user.Email,
		user.BusinessName, user.StreetAddress1, user.StreetAddress2, user.City,
		user.State, user.Country, user.Pincode, user.Password, user.PlanID,
	).Scan(&user.CreatedAt)
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserPG) GetByMobileNumber(ctx context.Context, mobile string) (entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE mobile_number = $1 LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, query, mobile))
}

func (r *UserPG) List(ctx context.Context) ([]entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
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

func (r *UserPG) EmailTaken(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	var taken bool
	err := r.db.QueryRow(ctx, query, email).Scan(&taken)
	return taken, err
}

func (r *UserPG) MobileTaken(ctx context.Context, mobile string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE mobile_number = $1)`
	var taken bool
	err := r.db.QueryRow(ctx, query, mobile).Scan(&taken)
	return taken, err
}

func (r *UserPG) IDTaken(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var taken bool
	err := r.db.QueryRow(ctx, query, id).Scan(&taken)
	return taken, err
}

func (r *UserPG) UpdatePassword(ctx context.Context, userID, hash string) error {
	const query = `UPDATE users SET password = $1 WHERE id = $2`
	result, err := r.db.Exec(ctx, query, hash, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *UserPG) UpdateProfile(ctx context.Context, u entity.User) error {
	const query = `
	UPDATE users SET person_contact = $1, business_name = $2,
		street_address1 = $3, street_address2 = $4, city = $5, state = $6,
		country = $7, pincode = $8
	WHERE id = $9
	`
	result, err := r.db.Exec(ctx, query,
		u.PersonContact, u.BusinessName, u.StreetAddress1, u.StreetAddress2,
		u.City, u.State, u.Country, u.Pincode, u.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *UserPG) UpdatePlan(ctx context.Context, userID, planID string) error {
	const query = `UPDATE users SET plan_id = $1 WHERE id = $2 AND role = 'user'`
	result, err := r.db.Exec(ctx, query, planID, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// Delete removes the user; sessions and product links go with it via
// ON DELETE CASCADE.
func (r *UserPG) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM users WHERE id = $1`
	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *UserPG) AddProduct(ctx context.Context, userID, productID string) error {
	const query = `INSERT INTO user_products (user_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, query, userID, productID)
	return err
}

func (r *UserPG) ProductIDs(ctx context.Context, userID string) ([]string, error) {
	const query = `SELECT product_id FROM user_products WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
