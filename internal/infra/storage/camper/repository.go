package camper

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Truckify-BookingService/pkg/psqlbuilder"
)

const foreignKeyViolation = "23503"

var columns = []string{
	"id",
	"name",
	"license_plate",
	"price_per_day",
	"color",
	"description",
	"facilities",
	"images",
	"max_passengers",
	"year",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий кемперов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает кемпера
func (r *Repository) Create(ctx context.Context, camper *domain.Camper) (*domain.Camper, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("campers").
		Columns(
			"name",
			"license_plate",
			"price_per_day",
			"color",
			"description",
			"facilities",
			"images",
			"max_passengers",
			"year",
			"is_active",
		).
		Values(
			camper.Name,
			camper.LicensePlate,
			camper.PricePerDay,
			camper.Color,
			camper.Description,
			pq.Array(nonNil(camper.Facilities)),
			pq.Array(nonNil(camper.Images)),
			camper.MaxPassengers,
			camper.Year,
			camper.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&camper.ID, &camper.CreatedAt, &camper.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return camper, nil
}

// GetByID получает кемпера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Camper, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("campers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	camper, err := scanCamper(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCamperNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan camper: %v", ErrScanRow, err)
	}

	return camper, nil
}

// List список кемперов по имени; неактивные только при includeInactive
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Camper, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("campers").
		OrderBy("name ASC", "id ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	campers := make([]*domain.Camper, 0)
	for rows.Next() {
		camper, err := scanCamper(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		campers = append(campers, camper)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return campers, nil
}

// Update сохраняет все поля кемпера
func (r *Repository) Update(ctx context.Context, camper *domain.Camper) (*domain.Camper, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("campers").
		Set("name", camper.Name).
		Set("license_plate", camper.LicensePlate).
		Set("price_per_day", camper.PricePerDay).
		Set("color", camper.Color).
		Set("description", camper.Description).
		Set("facilities", pq.Array(nonNil(camper.Facilities))).
		Set("images", pq.Array(nonNil(camper.Images))).
		Set("max_passengers", camper.MaxPassengers).
		Set("year", camper.Year).
		Set("is_active", camper.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": camper.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&camper.CreatedAt, &camper.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCamperNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return camper, nil
}

// Delete удаляет кемпера. Кемпера с бронированиями удалить нельзя (ON DELETE RESTRICT).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("campers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return ErrCamperInUse
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCamperNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCamper(row rowScanner) (*domain.Camper, error) {
	var camper domain.Camper
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&camper.ID,
		&camper.Name,
		&camper.LicensePlate,
		&camper.PricePerDay,
		&camper.Color,
		&camper.Description,
		pq.Array(&camper.Facilities),
		pq.Array(&camper.Images),
		&camper.MaxPassengers,
		&camper.Year,
		&camper.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	camper.CreatedAt = createdAt.Time
	camper.UpdatedAt = updatedAt.Time

	return &camper, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
