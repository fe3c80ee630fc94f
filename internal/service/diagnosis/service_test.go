package diagnosis

import (
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/metrics"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/cache"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

func newTestService() *Service {
	return NewService(cache.NewMemoryStore(), metrics.MustNew(prometheus.NewRegistry()), nil)
}

func TestDiagnoseSolo(t *testing.T) {
	svc := newTestService()

	res, err := svc.Diagnose(context.Background(), Request{
		Modality: domain.ModalitySolo,
		Respondents: []domain.Respondent{{
			ID:   "R1",
			Role: domain.RoleLeader,
			Answers: map[string]string{
				"IND_Q1": "Bajas estímulo y te escondes un poco",
				"IND_Q2": "Que apaguen el ruido y quede vacío",
			},
		}},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, res.Status)
	assert.Equal(t, domain.ProfileID("IND_01"), res.Profile.ID)
	// missing weight falls back to the leader default
	assert.InDelta(t, 2.4, res.Diagnosis.Scores["IND_01"], 1e-9)
	assert.Equal(t, domain.ConfidenceHigh, res.Diagnosis.Confidence)
}

func TestDiagnoseAgeBandsImplySmallKids(t *testing.T) {
	svc := newTestService()

	res, err := svc.Diagnose(context.Background(), Request{
		Modality: domain.ModalityFamily,
		AgeBands: []domain.AgeBand{domain.AgeBandAdult, domain.AgeBand0To3},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileID("FAM_01"), res.Profile.ID)
	assert.Equal(t, 1.5, res.Diagnosis.Scores["FAM_01"])
}

func TestDiagnoseDoesNotMutateRequest(t *testing.T) {
	svc := newTestService()
	req := Request{
		Modality: domain.ModalityCouple,
		Respondents: []domain.Respondent{{
			ID:      "R1",
			Role:    "",
			Weight:  0,
			Answers: map[string]string{"COU_Q1": "Silencio cómodo, sin prisa", "XX": "ruido"},
		}},
	}

	res, err := svc.Diagnose(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileID("COU_01"), res.Profile.ID)
	assert.Equal(t, 1.0, res.Diagnosis.Scores["COU_01"])
	assert.Equal(t, 0.0, req.Respondents[0].Weight)
	assert.Equal(t, domain.RespondentRole(""), req.Respondents[0].Role)
}

func TestDiagnoseRejectsOversizedPayload(t *testing.T) {
	svc := newTestService()
	respondents := make([]domain.Respondent, 21)

	_, err := svc.Diagnose(context.Background(), Request{Modality: domain.ModalityGroup, Respondents: respondents})
	require.Error(t, err)
	assert.Equal(t, 400, errors.StatusOf(err))
}

func TestDiagnoseKeepsLargeWeight(t *testing.T) {
	svc := newTestService()

	res, err := svc.Diagnose(context.Background(), Request{
		Modality: domain.ModalitySolo,
		Respondents: []domain.Respondent{{
			ID: "R1", Role: domain.RoleLeader, Weight: 12,
			Answers: map[string]string{"IND_Q1": "Bajas estímulo y te escondes un poco"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, res.Diagnosis.Scores["IND_01"])
}

func TestDiagnoseRejectsInvalidWeight(t *testing.T) {
	svc := newTestService()

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := svc.Diagnose(context.Background(), Request{
			Modality: domain.ModalitySolo,
			Respondents: []domain.Respondent{
				{ID: "R1", Role: domain.RoleLeader, Weight: 1},
				{ID: "R2", Role: domain.RoleFlex, Weight: w},
			},
		})
		require.Error(t, err, "weight %v", w)
		assert.Equal(t, 400, errors.StatusOf(err))

		var verr *errors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "respondents[1].weight", verr.Field)
	}
}

func TestDiagnoseTie(t *testing.T) {
	svc := newTestService()

	res, err := svc.Diagnose(context.Background(), Request{
		Modality: domain.ModalityCouple,
		Respondents: []domain.Respondent{{
			ID: "R1", Role: domain.RoleLeader, Weight: 1,
			Answers: map[string]string{
				"COU_Q1": "Silencio cómodo, sin prisa",
				"COU_Q2": "Risa y descubrimiento",
			},
		}},
	})
	require.NoError(t, err)
	assert.True(t, res.NeedsTieBreaker())
	assert.Equal(t, "TB_COU", res.Question.ID)
}

func TestDiagnoseCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService().Diagnose(ctx, Request{Modality: domain.ModalitySolo})
	assert.ErrorIs(t, err, context.Canceled)
}
