package diagnosis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

func TestWizardSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	session := &domain.WizardSession{
		ID:       "wiz_abc12345",
		Modality: domain.ModalityFamily,
		AgeBands: []domain.AgeBand{domain.AgeBand4To7},
		Phase:    domain.PhaseQuestions,
		Respondents: []domain.Respondent{
			{ID: "R1", Role: domain.RoleLeader, Weight: 1.2, Answers: map[string]string{"FAM_Q1": "Se rompe el sueño/horario base"}},
			{ID: "R2", Role: domain.RoleCaregiver, Weight: 1, Answers: map[string]string{}},
		},
		ActiveRespondentIndex: 1,
	}
	require.NoError(t, svc.SaveSession(ctx, session))
	assert.False(t, session.UpdatedAt.IsZero())

	loaded, err := svc.LoadSession(ctx, "wiz_abc12345")
	require.NoError(t, err)
	assert.Equal(t, session.Modality, loaded.Modality)
	assert.Equal(t, session.Respondents, loaded.Respondents)
	assert.Equal(t, 1, loaded.ActiveRespondentIndex)
	assert.True(t, session.UpdatedAt.Equal(loaded.UpdatedAt))

	require.NoError(t, svc.DeleteSession(ctx, "wiz_abc12345"))
	_, err = svc.LoadSession(ctx, "wiz_abc12345")
	assert.Equal(t, 404, errors.StatusOf(err))
}

func TestSaveSessionValidation(t *testing.T) {
	svc := newTestService()
	cases := map[string]*domain.WizardSession{
		"nil":          nil,
		"short id":     {ID: "abc"},
		"bad id chars": {ID: "../../etc/passwd"},
		"modality":     {ID: "wiz_abc12345", Modality: "cruise"},
		"phase":        {ID: "wiz_abc12345", Phase: "done"},
		"index":        {ID: "wiz_abc12345", Respondents: []domain.Respondent{{ID: "R1"}}, ActiveRespondentIndex: 1},
	}
	for name, session := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.SaveSession(context.Background(), session)
			require.Error(t, err)
			assert.Equal(t, 400, errors.StatusOf(err))
		})
	}
}

func TestLoadSessionRejectsBadID(t *testing.T) {
	_, err := newTestService().LoadSession(context.Background(), "a b")
	assert.Equal(t, 400, errors.StatusOf(err))
}
