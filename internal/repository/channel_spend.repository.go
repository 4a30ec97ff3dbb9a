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

type ChannelSpendRepository interface {
	Add(tx *sql.Tx, rows []model.ChannelSpend) error
	ListRange(start, end time.Time) ([]domain.DailyChannelSpend, error)
	ListChannels() ([]string, error)
}

type channelSpendRepositoryHandler struct {
	Db *sql.DB
}

func NewChannelSpendRepository(db *sql.DB) ChannelSpendRepository {
	return channelSpendRepositoryHandler{Db: db}
}

func (h channelSpendRepositoryHandler) Add(tx *sql.Tx, rows []model.ChannelSpend) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ChannelSpendID == uuid.Nil {
			rows[i].ChannelSpendID = uuid.New()
		}
		rows[i].CreatedAt = time.Now().UTC()
		rows[i].UpdatedAt = time.Now().UTC()
	}

	query := table.ChannelSpend.
		INSERT(table.ChannelSpend.MutableColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.ChannelSpend.Date, table.ChannelSpend.Channel,
		).DO_UPDATE(
		postgres.SET(
			table.ChannelSpend.Spend.SET(table.ChannelSpend.EXCLUDED.Spend),
			table.ChannelSpend.Revenue.SET(table.ChannelSpend.EXCLUDED.Revenue),
			table.ChannelSpend.UpdatedAt.SET(table.ChannelSpend.EXCLUDED.UpdatedAt),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add channel spend rows: %w", err)
	}

	return nil
}

func (h channelSpendRepositoryHandler) ListRange(start, end time.Time) ([]domain.DailyChannelSpend, error) {
	query := table.ChannelSpend.
		SELECT(table.ChannelSpend.AllColumns).
		WHERE(
			postgres.AND(
				table.ChannelSpend.Date.GT_EQ(postgres.DateT(start)),
				table.ChannelSpend.Date.LT_EQ(postgres.DateT(end)),
			),
		).
		ORDER_BY(table.ChannelSpend.Date.ASC(), table.ChannelSpend.Channel.ASC())

	results := []model.ChannelSpend{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel spend: %w", err)
	}

	out := make([]domain.DailyChannelSpend, 0, len(results))
	for _, r := range results {
		out = append(out, domain.DailyChannelSpend{
			Date:    r.Date,
			Channel: r.Channel,
			Spend:   r.Spend,
			Revenue: r.Revenue,
		})
	}

	return out, nil
}

func (h channelSpendRepositoryHandler) ListChannels() ([]string, error) {
	query := postgres.
		SELECT(table.ChannelSpend.Channel).
		DISTINCT().
		FROM(table.ChannelSpend).
		ORDER_BY(table.ChannelSpend.Channel.ASC())

	results := []model.ChannelSpend{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Channel)
	}

	return out, nil
}
