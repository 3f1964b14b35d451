package product

import (
	"context"
	"database/sql"

	"digipasal-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, slug, price, image_url, category, description, rating, created_at, updated_at
		FROM products
		ORDER BY created_at
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Price, &p.ImageURL,
			&p.Category, &p.Description, &p.Rating, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, slug, price, image_url, category, description, rating, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Price, &p.ImageURL,
		&p.Category, &p.Description, &p.Rating, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (id, title, slug, price, image_url, category, description, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, p.ID, p.Title, p.Slug, p.Price, p.ImageURL, p.Category, p.Description, p.Rating,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("title", p.Title),
			zap.Error(err),
		)
	}

	return p, err
}

func (r *repository) Update(ctx context.Context, p Product) (Product, error) {
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET title = $2, slug = $3, price = $4, image_url = $5,
		    category = $6, description = $7, rating = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, p.ID, p.Title, p.Slug, p.Price, p.ImageURL, p.Category, p.Description, p.Rating,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
