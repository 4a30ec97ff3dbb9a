package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"channelmix/internal/db/models/postgres/public/model"
	"channelmix/internal/db/models/postgres/public/table"
	"channelmix/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type DecisionRepository interface {
	Add(tx *sql.Tx, decision domain.Decision) (*domain.Decision, error)
	Get(decisionID uuid.UUID) (*domain.Decision, error)
	List(filter DecisionListFilter) ([]domain.Decision, error)
	UpdateStatus(tx *sql.Tx, decisionID uuid.UUID, status domain.DecisionStatus) (*domain.Decision, error)
}

type decisionRepositoryHandler struct {
	Db *sql.DB
}

func NewDecisionRepository(db *sql.DB) DecisionRepository {
	return decisionRepositoryHandler{Db: db}
}

func (h decisionRepositoryHandler) Add(tx *sql.Tx, decision domain.Decision) (*domain.Decision, error) {
	if decision.DecisionID == uuid.Nil {
		decision.DecisionID = uuid.New()
	}
	if decision.Status == "" {
		decision.Status = domain.DecisionStatus_Pending
	}
	decision.CreatedAt = time.Now().UTC()

	m, err := decisionToModel(decision)
	if err != nil {
		return nil, err
	}
	m.UpdatedAt = m.CreatedAt

	query := table.Decision.
		INSERT(table.Decision.AllColumns).
		MODEL(m).
		RETURNING(table.Decision.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Decision{}
	err = query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert decision: %w", err)
	}

	return decisionFromModel(out)
}

func (h decisionRepositoryHandler) Get(decisionID uuid.UUID) (*domain.Decision, error) {
	query := table.Decision.
		SELECT(table.Decision.AllColumns).
		WHERE(table.Decision.DecisionID.EQ(postgres.UUID(decisionID)))

	result := model.Decision{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get decision %s: %w", decisionID.String(), err)
	}

	return decisionFromModel(result)
}

type DecisionListFilter struct {
	RunID  *string
	Status *domain.DecisionStatus
}

func (h decisionRepositoryHandler) List(filter DecisionListFilter) ([]domain.Decision, error) {
	query := table.Decision.
		SELECT(table.Decision.AllColumns)

	expressions := []postgres.BoolExpression{}
	if filter.RunID != nil {
		expressions = append(expressions, table.Decision.RunID.EQ(postgres.String(*filter.RunID)))
	}
	if filter.Status != nil {
		expressions = append(expressions, table.Decision.Status.EQ(postgres.String(string(*filter.Status))))
	}
	if len(expressions) > 0 {
		query = query.WHERE(postgres.AND(expressions...))
	}
	query = query.ORDER_BY(table.Decision.CreatedAt.DESC())

	results := []model.Decision{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	out := make([]domain.Decision, 0, len(results))
	for _, r := range results {
		d, err := decisionFromModel(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

func (h decisionRepositoryHandler) UpdateStatus(tx *sql.Tx, decisionID uuid.UUID, status domain.DecisionStatus) (*domain.Decision, error) {
	current, err := h.Get(decisionID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("decision %s cannot transition from %s to %s", decisionID.String(), current.Status, status)
	}

	query := table.Decision.
		UPDATE(table.Decision.Status, table.Decision.UpdatedAt).
		SET(string(status), time.Now().UTC()).
		WHERE(table.Decision.DecisionID.EQ(postgres.UUID(decisionID))).
		RETURNING(table.Decision.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Decision{}
	err = query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update decision status: %w", err)
	}

	return decisionFromModel(out)
}

func decisionToModel(d domain.Decision) (model.Decision, error) {
	riskFlags, err := json.Marshal(d.RiskFlags)
	if err != nil {
		return model.Decision{}, fmt.Errorf("failed to marshal risk flags: %w", err)
	}
	versions, err := json.Marshal(d.ModelVersions)
	if err != nil {
		return model.Decision{}, fmt.Errorf("failed to marshal model versions: %w", err)
	}

	return model.Decision{
		DecisionID:      d.DecisionID,
		EntityType:      d.EntityType,
		EntityID:        d.EntityID,
		DecisionType:    string(d.DecisionType),
		ReasonCode:      d.ReasonCode,
		ExplanationText: d.ExplanationText,
		ProjectedImpact: d.ProjectedImpact,
		ConfidenceScore: d.ConfidenceScore,
		RiskFlags:       string(riskFlags),
		Status:          string(d.Status),
		ModelVersions:   string(versions),
		RunID:           d.RunID,
		CreatedAt:       d.CreatedAt,
	}, nil
}

func decisionFromModel(m model.Decision) (*domain.Decision, error) {
	status, err := domain.NewDecisionStatus(m.Status)
	if err != nil {
		return nil, err
	}

	riskFlags := []string{}
	if m.RiskFlags != "" {
		err = json.Unmarshal([]byte(m.RiskFlags), &riskFlags)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal risk flags: %w", err)
		}
	}

	versions := domain.ModelVersions{}
	if m.ModelVersions != "" {
		err = json.Unmarshal([]byte(m.ModelVersions), &versions)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal model versions: %w", err)
		}
	}

	return &domain.Decision{
		DecisionID:      m.DecisionID,
		EntityType:      m.EntityType,
		EntityID:        m.EntityID,
		DecisionType:    domain.DecisionType(m.DecisionType),
		ReasonCode:      m.ReasonCode,
		ExplanationText: m.ExplanationText,
		ProjectedImpact: m.ProjectedImpact,
		ConfidenceScore: m.ConfidenceScore,
		RiskFlags:       riskFlags,
		Status:          *status,
		ModelVersions:   versions,
		RunID:           m.RunID,
		CreatedAt:       m.CreatedAt,
	}, nil
}
