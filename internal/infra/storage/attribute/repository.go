package attribute

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Truckify-BookingService/pkg/psqlbuilder"
)

var columns = []string{"id", "name", "description", "price", "is_active", "created_at"}

// Repository репозиторий дополнительных опций
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, attr *domain.Attribute) (*domain.Attribute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("attributes").
		Columns("name", "description", "price", "is_active").
		Values(attr.Name, attr.Description, attr.Price, attr.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&attr.ID, &attr.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return attr, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Attribute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("attributes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	attr, err := scanAttribute(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttributeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan attribute: %v", ErrScanRow, err)
	}

	return attr, nil
}

// GetByIDs опции по списку ID; отсутствующие ID просто не попадают в результат
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Attribute, error) {
	if len(ids) == 0 {
		return []*domain.Attribute{}, nil
	}
	return r.list(ctx, "GetByIDs", squirrel.Eq{"id": ids})
}

// List список опций; неактивные только при includeInactive
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Attribute, error) {
	if includeInactive {
		return r.list(ctx, "List", nil)
	}
	return r.list(ctx, "List", squirrel.Eq{"is_active": true})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Attribute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("attributes").
		OrderBy("name ASC", "id ASC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	attrs := make([]*domain.Attribute, 0)
	for rows.Next() {
		attr, err := scanAttribute(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		attrs = append(attrs, attr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return attrs, nil
}

func (r *Repository) Update(ctx context.Context, attr *domain.Attribute) (*domain.Attribute, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("attributes").
		Set("name", attr.Name).
		Set("description", attr.Description).
		Set("price", attr.Price).
		Set("is_active", attr.IsActive).
		Where(squirrel.Eq{"id": attr.ID}).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&attr.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttributeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return attr, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("attributes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAttributeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAttribute(row rowScanner) (*domain.Attribute, error) {
	var attr domain.Attribute
	var createdAt sql.NullTime

	err := row.Scan(
		&attr.ID,
		&attr.Name,
		&attr.Description,
		&attr.Price,
		&attr.IsActive,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	attr.CreatedAt = createdAt.Time
	return &attr, nil
}
