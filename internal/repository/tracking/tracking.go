package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"swiftship/internal/entities"
	"swiftship/internal/repository"
	"swiftship/internal/service/ledger"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create добавляет событие в журнал. Журнал append-only: ни UPDATE,
// ни DELETE по parcel_tracking в коде нет.
func (r *Repository) Create(ctx context.Context, eventModifyEntity entities.TrackingEventModify) (*entities.TrackingEvent, error) {
	eventModifyModel := FromDomainModify(&eventModifyEntity)
	query := `INSERT INTO parcel_tracking (parcel_id, status, location, description, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, parcel_id, status, location, description, timestamp`

	var eventModel TrackingEventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		eventModifyModel.ParcelID,
		eventModifyModel.Status,
		eventModifyModel.Location,
		eventModifyModel.Description,
		eventModifyModel.Timestamp,
	).Scan(
		&eventModel.ID,
		&eventModel.ParcelID,
		&eventModel.Status,
		&eventModel.Location,
		&eventModel.Description,
		&eventModel.Timestamp,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, ledger.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository create error: %w", err)
	}

	return ToDomain(&eventModel), nil
}

// GetCurrentStatus выводит текущий статус: последнее событие по
// (timestamp, id), либо 'pending' если событий нет. Несуществующая
// посылка - ErrParcelNotFound.
func (r *Repository) GetCurrentStatus(ctx context.Context, parcelID int64) (entities.ParcelStatusType, error) {
	query := `
	SELECT COALESCE(
		(SELECT t.status
		 FROM parcel_tracking t
		 WHERE t.parcel_id = p.id
		 ORDER BY t.timestamp DESC, t.id DESC
		 LIMIT 1),
		'pending')
	FROM parcels p
	WHERE p.id = $1`

	var status string
	err := r.querier.QueryRow(ctx, query, parcelID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ledger.ErrParcelNotFound
		}
		return "", fmt.Errorf("unexpected tracking repository getcurrentstatus error: %w", err)
	}

	return entities.ParcelStatusType(status), nil
}

func (r *Repository) ListByParcel(ctx context.Context, parcelID int64) ([]entities.TrackingEvent, error) {
	query := `
	SELECT id, parcel_id, status, location, description, timestamp
	FROM parcel_tracking
	WHERE parcel_id = $1
	ORDER BY timestamp ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository listbyparcel error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]TrackingEventDB, 0, 8)
	for rows.Next() {
		var eventModel TrackingEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.ParcelID,
			&eventModel.Status,
			&eventModel.Location,
			&eventModel.Description,
			&eventModel.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository listbyparcel error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository listbyparcel error: %w", err)
	}

	return ToDomainList(eventModels), nil
}
