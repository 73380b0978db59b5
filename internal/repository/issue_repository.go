package repository

import (
	"context"
	"errors"

	"support-kb/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrIssueTableMissing is returned when support_issues has not been created.
var ErrIssueTableMissing = errors.New("support_issues table does not exist")

// undefinedTable is the Postgres SQLSTATE for a missing relation.
const undefinedTable = "42P01"

var issueColumns = []string{
	"id", "product_id", "sku", "issue", "caller_info", "severity", "notes", "source", "status", "created_at",
}

type IssueRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewIssueRepository(db *pgxpool.Pool, logger *zap.Logger) *IssueRepository {
	return &IssueRepository{
		db:     db,
		logger: logger,
	}
}

func (r *IssueRepository) Create(ctx context.Context, issue *models.SupportIssue) error {
	query := squirrel.Insert("support_issues").
		Columns(issueColumns...).
		Values(issue.ID, issue.ProductID, issue.SKU, issue.Issue, issue.CallerInfo, issue.Severity,
			issue.Notes, issue.Source, issue.Status, issue.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			r.logger.Error("support_issues table needs to be created; run the migrations")
			return ErrIssueTableMissing
		}
		return err
	}
	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SupportIssue, error) {
	query := squirrel.Select(issueColumns...).
		From("support_issues").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var issue models.SupportIssue
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&issue.ID, &issue.ProductID, &issue.SKU, &issue.Issue, &issue.CallerInfo, &issue.Severity,
		&issue.Notes, &issue.Source, &issue.Status, &issue.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &issue, nil
}
