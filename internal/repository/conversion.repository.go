package repository

import (
	"database/sql"
	"fmt"
	"time"

	"channelmix/internal/db/models/postgres/public/model"
	"channelmix/internal/db/models/postgres/public/table"
	"channelmix/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ConversionRepository interface {
	Add(tx *sql.Tx, event model.ConversionEvent, touches []model.TouchEvent) error
	ListRange(start, end time.Time) ([]domain.ConversionEvent, error)
}

type conversionRepositoryHandler struct {
	Db *sql.DB
}

func NewConversionRepository(db *sql.DB) ConversionRepository {
	return conversionRepositoryHandler{Db: db}
}

func (h conversionRepositoryHandler) Add(tx *sql.Tx, event model.ConversionEvent, touches []model.TouchEvent) error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	event.CreatedAt = time.Now().UTC()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	query := table.ConversionEvent.
		INSERT(table.ConversionEvent.AllColumns).
		MODEL(event)
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert conversion event: %w", err)
	}

	if len(touches) == 0 {
		return nil
	}

	for i := range touches {
		if touches[i].TouchEventID == uuid.Nil {
			touches[i].TouchEventID = uuid.New()
		}
		touches[i].EventID = event.EventID
		touches[i].Position = int32(i)
		touches[i].CreatedAt = time.Now().UTC()
	}

	touchQuery := table.TouchEvent.
		INSERT(table.TouchEvent.AllColumns).
		MODELS(touches)
	_, err = touchQuery.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert touch events: %w", err)
	}

	return nil
}

func (h conversionRepositoryHandler) ListRange(start, end time.Time) ([]domain.ConversionEvent, error) {
	eventQuery := table.ConversionEvent.
		SELECT(table.ConversionEvent.AllColumns).
		WHERE(
			postgres.AND(
				table.ConversionEvent.OccurredAt.GT_EQ(postgres.TimestampzT(start)),
				table.ConversionEvent.OccurredAt.LT_EQ(postgres.TimestampzT(end)),
			),
		).
		ORDER_BY(table.ConversionEvent.OccurredAt.ASC())

	events := []model.ConversionEvent{}
	err := eventQuery.Query(h.Db, &events)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversion events: %w", err)
	}
	if len(events) == 0 {
		return []domain.ConversionEvent{}, nil
	}

	eventIDs := make([]postgres.Expression, 0, len(events))
	for _, e := range events {
		eventIDs = append(eventIDs, postgres.UUID(e.EventID))
	}

	touchQuery := table.TouchEvent.
		SELECT(table.TouchEvent.AllColumns).
		WHERE(table.TouchEvent.EventID.IN(eventIDs...)).
		ORDER_BY(table.TouchEvent.EventID.ASC(), table.TouchEvent.Position.ASC())

	touches := []model.TouchEvent{}
	err = touchQuery.Query(h.Db, &touches)
	if err != nil {
		return nil, fmt.Errorf("failed to list touch events: %w", err)
	}

	touchesByEvent := map[uuid.UUID][]domain.Touch{}
	for _, t := range touches {
		touchesByEvent[t.EventID] = append(touchesByEvent[t.EventID], domain.Touch{
			Channel:    t.Channel,
			Kind:       domain.TouchKind(t.Kind),
			OccurredAt: t.OccurredAt,
		})
	}

	out := make([]domain.ConversionEvent, 0, len(events))
	for _, e := range events {
		out = append(out, domain.ConversionEvent{
			EventID:    e.EventID,
			Revenue:    e.Revenue,
			OccurredAt: e.OccurredAt,
			Touches:    touchesByEvent[e.EventID],
		})
	}

	return out, nil
}
