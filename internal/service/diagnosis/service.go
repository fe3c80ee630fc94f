package diagnosis

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/scoring"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

// Request is one questionnaire submission. AgeBands, when present, imply
// Meta.HasSmallKids.
type Request struct {
	Modality    domain.Modality     `json:"modality"`
	Respondents []domain.Respondent `json:"respondents"`
	AgeBands    []domain.AgeBand    `json:"ageBands,omitempty"`
	Meta        domain.ScoringMeta  `json:"meta"`
}

type Service struct {
	store   cache.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewService(store cache.Store, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// Diagnose scores a submission. Unknown modalities still resolve to the
// group default; oversized payloads and negative weights are rejected.
func (s *Service) Diagnose(ctx context.Context, req Request) (*domain.ScoringResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Respondents) > constants.DiagnosisLimits.MaxRespondents {
		return nil, errors.NewValidationError("too many respondents", "respondents", len(req.Respondents))
	}

	respondents := make([]domain.Respondent, len(req.Respondents))
	for i, r := range req.Respondents {
		if len(r.Answers) > constants.DiagnosisLimits.MaxAnswers {
			return nil, errors.NewValidationError("too many answers", fmt.Sprintf("respondents[%d].answers", i), len(r.Answers))
		}
		if r.Weight < 0 || math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) {
			return nil, errors.NewValidationError("weight must be a positive number", fmt.Sprintf("respondents[%d].weight", i), r.Weight)
		}
		respondents[i] = s.normalize(req.Modality, r)
	}

	meta := req.Meta
	if domain.HasSmallKids(req.AgeBands) {
		meta.HasSmallKids = true
	}

	if !req.Modality.IsValid() {
		s.logger.Warn("Unknown modality, using default profile", zap.String("modality", string(req.Modality)))
	}

	result := scoring.Score(req.Modality, respondents, meta)

	confidence := ""
	if result.Diagnosis != nil {
		confidence = string(result.Diagnosis.Confidence)
	}
	s.metrics.ObserveDiagnosis(string(req.Modality), string(result.Status), confidence)

	fields := []zap.Field{
		zap.String("modality", string(req.Modality)),
		zap.Int("respondents", len(respondents)),
		zap.String("status", string(result.Status)),
	}
	if result.Diagnosis != nil {
		fields = append(fields,
			zap.String("profile", string(result.Diagnosis.ProfileID)),
			zap.String("confidence", confidence),
		)
	}
	s.logger.Debug("Diagnosis resolved", fields...)

	return result, nil
}

// normalize copies a respondent, filling an omitted (zero) weight with the
// role default. Foreign question ids are kept and logged;
// they count toward the total possible weight like any other answer.
func (s *Service) normalize(m domain.Modality, r domain.Respondent) domain.Respondent {
	out := domain.Respondent{
		ID:      r.ID,
		Role:    r.Role,
		Weight:  r.Weight,
		Answers: make(map[string]string, len(r.Answers)),
	}
	if !out.Role.IsValid() {
		out.Role = domain.RoleFlex
	}
	if out.Weight == 0 {
		out.Weight = out.Role.DefaultWeight()
	}

	for questionID, answer := range r.Answers {
		if m.IsValid() && !scoring.IsKnownQuestion(m, questionID) {
			s.logger.Warn("Answer for foreign question",
				zap.String("modality", string(m)),
				zap.String("respondent", r.ID),
				zap.String("question", questionID),
			)
		}
		out.Answers[questionID] = answer
	}
	return out
}
