package diagnosis

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/constants"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

func wizardKey(id string) string {
	return constants.CacheKeys.WizardPrefix + id
}

// SaveSession stores a wizard snapshot under its id, refreshing the ttl.
func (s *Service) SaveSession(ctx context.Context, session *domain.WizardSession) error {
	if err := validateSession(session); err != nil {
		return err
	}

	snapshot := *session
	snapshot.UpdatedAt = time.Now().UTC()

	if err := s.store.Set(ctx, wizardKey(session.ID), snapshot, constants.CacheTTL.WizardSession); err != nil {
		return errors.NewServiceError("failed to save wizard session", "diagnosis", "save_session", err)
	}
	session.UpdatedAt = snapshot.UpdatedAt

	s.logger.Debug("Wizard session saved",
		zap.String("session", session.ID),
		zap.String("phase", string(session.Phase)),
	)
	return nil
}

func (s *Service) LoadSession(ctx context.Context, id string) (*domain.WizardSession, error) {
	if !sessionIDPattern.MatchString(id) {
		return nil, errors.NewValidationError("invalid session id", "id", id)
	}

	var session domain.WizardSession
	found, err := s.store.Get(ctx, wizardKey(id), &session)
	if err != nil {
		return nil, errors.NewServiceError("failed to load wizard session", "diagnosis", "load_session", err)
	}
	if !found {
		return nil, errors.NewNotFoundError("wizard session", id)
	}
	return &session, nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if !sessionIDPattern.MatchString(id) {
		return errors.NewValidationError("invalid session id", "id", id)
	}
	if err := s.store.Del(ctx, wizardKey(id)); err != nil {
		return errors.NewServiceError("failed to delete wizard session", "diagnosis", "delete_session", err)
	}
	return nil
}

func validateSession(session *domain.WizardSession) error {
	if session == nil {
		return errors.NewValidationError("session is required", "session", nil)
	}
	if !sessionIDPattern.MatchString(session.ID) {
		return errors.NewValidationError("invalid session id", "id", session.ID)
	}
	if session.Modality != "" && !session.Modality.IsValid() {
		return errors.NewValidationError("unknown modality", "modality", session.Modality)
	}
	if session.Phase != "" && !session.Phase.IsValid() {
		return errors.NewValidationError("unknown phase", "phase", session.Phase)
	}
	if len(session.Respondents) > constants.DiagnosisLimits.MaxRespondents {
		return errors.NewValidationError("too many respondents", "respondents", len(session.Respondents))
	}
	if n := len(session.Respondents); n > 0 && (session.ActiveRespondentIndex < 0 || session.ActiveRespondentIndex >= n) {
		return errors.NewValidationError(
			fmt.Sprintf("active respondent index must be within 0..%d", n-1),
			"activeRespondentIndex", session.ActiveRespondentIndex,
		)
	}
	return nil
}
