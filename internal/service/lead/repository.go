package lead

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

// Repository persists leads.
type Repository interface {
	Insert(ctx context.Context, lead *domain.Lead) error
	Get(ctx context.Context, id int64) (*domain.Lead, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Lead, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
	SetAdvisorBrief(ctx context.Context, id int64, brief *domain.AdvisorBrief) error
}

// ListFilter selects leads newest first. An empty Status matches all.
type ListFilter struct {
	Status domain.LeadStatus
	Limit  int
	Offset int
}

type PostgresRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresRepository(db *sql.DB, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}
}

const leadColumns = `id, name, email, phone, destination, status, modality,
	emotional_answers, emotional_profile_id, package_slug, language,
	advisor_brief, created_at`

func (r *PostgresRepository) Insert(ctx context.Context, lead *domain.Lead) error {
	answersJSON, err := marshalNullable(lead.EmotionalAnswers, len(lead.EmotionalAnswers) > 0)
	if err != nil {
		return fmt.Errorf("failed to marshal emotional answers: %w", err)
	}
	briefJSON, err := marshalNullable(lead.AdvisorBrief, lead.AdvisorBrief != nil)
	if err != nil {
		return fmt.Errorf("failed to marshal advisor brief: %w", err)
	}

	query := `
		INSERT INTO leads (` + leadColumns + `, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
	`
	_, err = r.db.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Destination, string(lead.Status),
		string(lead.Modality), answersJSON, string(lead.EmotionalProfileID), lead.PackageSlug,
		string(lead.Language), briefJSON, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	r.logger.Debug("Lead inserted", zap.Int64("id", lead.ID))
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("lead", fmt.Sprint(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}
	return lead, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]*domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, string(filter.Status), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0, filter.Limit)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}
	return leads, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE leads SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	return requireAffected(res, id)
}

func (r *PostgresRepository) SetAdvisorBrief(ctx context.Context, id int64, brief *domain.AdvisorBrief) error {
	briefJSON, err := json.Marshal(brief)
	if err != nil {
		return fmt.Errorf("failed to marshal advisor brief: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE leads SET advisor_brief = $2, updated_at = NOW() WHERE id = $1`,
		id, string(briefJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to store advisor brief: %w", err)
	}
	return requireAffected(res, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	var (
		lead        domain.Lead
		status      string
		modality    string
		answersJSON []byte
		profileID   string
		language    string
		briefJSON   []byte
		createdAt   time.Time
	)

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Destination, &status, &modality,
		&answersJSON, &profileID, &lead.PackageSlug, &language, &briefJSON, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Status = domain.LeadStatus(status)
	lead.Modality = domain.Modality(modality)
	lead.EmotionalProfileID = domain.ProfileID(profileID)
	lead.Language = domain.Language(language)
	lead.CreatedAt = createdAt.UTC()

	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &lead.EmotionalAnswers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal emotional answers: %w", err)
		}
	}
	if len(briefJSON) > 0 {
		var brief domain.AdvisorBrief
		if err := json.Unmarshal(briefJSON, &brief); err != nil {
			return nil, fmt.Errorf("failed to unmarshal advisor brief: %w", err)
		}
		lead.AdvisorBrief = &brief
	}
	return &lead, nil
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return errors.NewNotFoundError("lead", fmt.Sprint(id))
	}
	return nil
}

// marshalNullable encodes v as a JSONB parameter, or SQL NULL when present
// is false. JSON goes out as a string since lib/pq sends []byte as bytea.
func marshalNullable(v any, present bool) (any, error) {
	if !present {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
