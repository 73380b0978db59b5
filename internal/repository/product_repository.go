package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"support-kb/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ProductRepository stores knowledge records in the products table.
type ProductRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProductRepository(db *pgxpool.Pool, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger,
	}
}

// LoadAll returns every stored knowledge record ordered by SKU.
func (r *ProductRepository) LoadAll(ctx context.Context) ([]*models.KnowledgeRecord, error) {
	query := squirrel.Select("sku", "knowledge").
		From("products").
		OrderBy("sku ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var records []*models.KnowledgeRecord
	for rows.Next() {
		var sku string
		var knowledge []byte
		if err := rows.Scan(&sku, &knowledge); err != nil {
			return nil, err
		}

		rec, err := DecodeKnowledge(knowledge, ".json")
		if err != nil {
			r.logger.Error("Failed to decode stored product knowledge", zap.String("sku", sku), zap.Error(err))
			continue
		}
		rec.Identifier = sku
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Info("Loaded product knowledge from database", zap.Int("products", len(records)))

	return records, nil
}

// GetIDBySKU returns the id of the product with the given SKU, or nil when no
// such product exists.
func (r *ProductRepository) GetIDBySKU(ctx context.Context, sku string) (*uuid.UUID, error) {
	query := squirrel.Select("id").
		From("products").
		Where(squirrel.Eq{"sku": sku}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &id, nil
}

// Upsert inserts rec or replaces the stored knowledge of an existing SKU.
func (r *ProductRepository) Upsert(ctx context.Context, rec *models.KnowledgeRecord) error {
	if rec.Identifier == "" {
		return errors.New("knowledge record has no SKU")
	}

	knowledge, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode knowledge: %w", err)
	}

	now := time.Now()
	query := squirrel.Insert("products").
		Columns("id", "sku", "model", "full_name", "category", "knowledge", "created_at", "updated_at").
		Values(uuid.New(), rec.Identifier, rec.Product.Model, rec.Product.FullName, rec.Product.Category, knowledge, now, now).
		Suffix("ON CONFLICT (sku) DO UPDATE SET model = EXCLUDED.model, full_name = EXCLUDED.full_name, " +
			"category = EXCLUDED.category, knowledge = EXCLUDED.knowledge, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
