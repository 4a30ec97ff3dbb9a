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

type CoefficientRepository interface {
	AddMany(tx *sql.Tx, runID string, modelVersion string, curves map[string]domain.ResponseCurve) error
	GetByRunID(runID string) (map[string]domain.ResponseCurve, error)
}

type coefficientRepositoryHandler struct {
	Db *sql.DB
}

func NewCoefficientRepository(db *sql.DB) CoefficientRepository {
	return coefficientRepositoryHandler{Db: db}
}

func (h coefficientRepositoryHandler) AddMany(tx *sql.Tx, runID string, modelVersion string, curves map[string]domain.ResponseCurve) error {
	if len(curves) == 0 {
		return nil
	}

	rows := make([]model.MixModelCoefficient, 0, len(curves))
	for channel, curve := range curves {
		hillAlpha := curve.HillAlpha
		hillHalfSaturation := curve.HillHalfSaturation
		rows = append(rows, model.MixModelCoefficient{
			MixModelCoefficientID: uuid.New(),
			RunID:                 runID,
			Channel:               channel,
			Coefficient:           curve.Coefficient,
			HalfLife:              curve.HalfLife,
			Saturation:            string(curve.Saturation),
			HillAlpha:             &hillAlpha,
			HillHalfSaturation:    &hillHalfSaturation,
			ModelVersion:          modelVersion,
			CreatedAt:             time.Now().UTC(),
		})
	}

	query := table.MixModelCoefficient.
		INSERT(table.MixModelCoefficient.AllColumns).
		MODELS(rows)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert mix model coefficients: %w", err)
	}

	return nil
}

func (h coefficientRepositoryHandler) GetByRunID(runID string) (map[string]domain.ResponseCurve, error) {
	query := table.MixModelCoefficient.
		SELECT(table.MixModelCoefficient.AllColumns).
		WHERE(table.MixModelCoefficient.RunID.EQ(postgres.String(runID))).
		ORDER_BY(table.MixModelCoefficient.Channel.ASC())

	results := []model.MixModelCoefficient{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to get coefficients for run %s: %w", runID, err)
	}

	out := map[string]domain.ResponseCurve{}
	for _, r := range results {
		curve := domain.ResponseCurve{
			HalfLife:    r.HalfLife,
			Saturation:  domain.SaturationKind(r.Saturation),
			Coefficient: r.Coefficient,
		}
		if r.HillAlpha != nil {
			curve.HillAlpha = *r.HillAlpha
		}
		if r.HillHalfSaturation != nil {
			curve.HillHalfSaturation = *r.HillHalfSaturation
		}
		out[r.Channel] = curve
	}

	return out, nil
}
