package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"swiftship/internal/entities"
	"swiftship/internal/repository"
	"swiftship/internal/service/ledger"
	"swiftship/internal/service/query"
	"swiftship/internal/service/registry"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// latestEventJoin подтягивает последнее событие трекинга посылки.
// Разрешение ничьей по (timestamp, id) - как в выводе текущего статуса.
const latestEventJoin = `
	LEFT JOIN LATERAL (
		SELECT status, timestamp AS last_updated
		FROM parcel_tracking
		WHERE parcel_id = p.id
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	) t ON true`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет посылку. tracking_id - generated-колонка от id,
// поэтому идентификатор выводится атомарно в самой вставке, отдельного
// чтения "следующего id" нет.
func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)
	query := `INSERT INTO parcels (sender_id, receiver_name, receiver_phone, pickup_address, delivery_address, weight, dimensions, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, tracking_id, sender_id, receiver_name, receiver_phone, pickup_address, delivery_address, weight, dimensions, description, created_at`

	var parcelModel ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.SenderID,
		parcelModifyModel.ReceiverName,
		parcelModifyModel.ReceiverPhone,
		parcelModifyModel.PickupAddress,
		parcelModifyModel.DeliveryAddress,
		parcelModifyModel.Weight,
		parcelModifyModel.Dimensions,
		parcelModifyModel.Description,
	).Scan(
		&parcelModel.ID,
		&parcelModel.TrackingID,
		&parcelModel.SenderID,
		&parcelModel.ReceiverName,
		&parcelModel.ReceiverPhone,
		&parcelModel.PickupAddress,
		&parcelModel.DeliveryAddress,
		&parcelModel.Weight,
		&parcelModel.Dimensions,
		&parcelModel.Description,
		&parcelModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, registry.ErrSenderNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) (*entities.ParcelDetail, error) {
	sqlQuery := `
	SELECT p.id, p.tracking_id, p.sender_id, p.receiver_name, p.receiver_phone,
		p.pickup_address, p.delivery_address, p.weight, p.dimensions, p.description, p.created_at,
		COALESCE(t.status, 'pending'),
		COALESCE(t.last_updated, p.created_at)
	FROM parcels p` + latestEventJoin + `
	WHERE p.tracking_id = $1`

	var parcelModel ParcelWithStatusDB
	err := r.querier.QueryRow(ctx, sqlQuery, trackingID).
		Scan(
			&parcelModel.ID,
			&parcelModel.TrackingID,
			&parcelModel.SenderID,
			&parcelModel.ReceiverName,
			&parcelModel.ReceiverPhone,
			&parcelModel.PickupAddress,
			&parcelModel.DeliveryAddress,
			&parcelModel.Weight,
			&parcelModel.Dimensions,
			&parcelModel.Description,
			&parcelModel.CreatedAt,
			&parcelModel.Status,
			&parcelModel.LastUpdated,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, query.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository getbytrackingid error: %w", err)
	}

	return ToDetailDomain(&parcelModel), nil
}

func (r *Repository) GetIDByTrackingID(ctx context.Context, trackingID string) (int64, error) {
	query := `SELECT id FROM parcels WHERE tracking_id = $1`

	var id int64
	err := r.querier.QueryRow(ctx, query, trackingID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ledger.ErrParcelNotFound
		}
		return 0, fmt.Errorf("unexpected parcel repository getidbytrackingid error: %w", err)
	}

	return id, nil
}

func (r *Repository) ListBySender(ctx context.Context, senderID int64) ([]entities.ParcelSummary, error) {
	sqlQuery := `
	SELECT p.id, p.tracking_id, p.sender_id, p.pickup_address, p.delivery_address, p.description,
		COALESCE(t.status, 'pending'),
		p.created_at,
		COALESCE(t.last_updated, p.created_at)
	FROM parcels p` + latestEventJoin + `
	WHERE p.sender_id = $1
	ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.querier.Query(ctx, sqlQuery, senderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository listbysender error: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// ListAll - админский листинг с опциональными фильтрами.
func (r *Repository) ListAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.ParcelSummary, error) {
	builder := qb.
		Select(
			"p.id", "p.tracking_id", "p.sender_id", "p.pickup_address", "p.delivery_address", "p.description",
			"COALESCE(t.status, 'pending')",
			"p.created_at",
			"COALESCE(t.last_updated, p.created_at)",
		).
		From("parcels p").
		JoinClause(latestEventJoin)

	// опциональные фильтры
	if filter.SenderID != nil {
		builder = builder.Where(sq.Eq{"p.sender_id": *filter.SenderID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"COALESCE(t.status, 'pending')": filter.Status.String()})
	}

	builder = builder.OrderBy("p.created_at DESC", "p.id DESC")

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository listall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository listall error: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.ParcelStatusType]int64, error) {
	sqlQuery := `
	SELECT COALESCE(t.status, 'pending'), COUNT(*)
	FROM parcels p` + latestEventJoin + `
	GROUP BY 1`

	rows, err := r.querier.Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.ParcelStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository countbystatus error: %w", err)
		}
		counts[entities.ParcelStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository countbystatus error: %w", err)
	}

	return counts, nil
}

func scanSummaries(rows pgx.Rows) ([]entities.ParcelSummary, error) {
	summaryModels := make([]ParcelSummaryDB, 0, 8)
	for rows.Next() {
		var summaryModel ParcelSummaryDB
		err := rows.Scan(
			&summaryModel.ID,
			&summaryModel.TrackingID,
			&summaryModel.SenderID,
			&summaryModel.PickupAddress,
			&summaryModel.DeliveryAddress,
			&summaryModel.Description,
			&summaryModel.Status,
			&summaryModel.CreatedAt,
			&summaryModel.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository scan error: %w", err)
		}
		summaryModels = append(summaryModels, summaryModel)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository scan error: %w", err)
	}

	return ToSummaryDomainList(summaryModels), nil
}
