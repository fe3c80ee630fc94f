package ai

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/prompt"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

const (
	maxTalkingPoints = 4
	maxRisks         = 3
)

type jsonModel interface {
	GenerateJSON(ctx context.Context, prompt string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error)
}

// AdvisorBriefer writes the internal note a human advisor reads before
// contacting a lead.
type AdvisorBriefer struct {
	model    jsonModel
	prompts  *prompt.Builder
	siteName string
	logger   *zap.Logger
}

func NewAdvisorBriefer(model *ModelManager, siteName string, logger *zap.Logger) *AdvisorBriefer {
	b := &AdvisorBriefer{
		prompts:  prompt.DefaultBuilder(),
		siteName: siteName,
		logger:   logger,
	}
	if model != nil {
		b.model = model
	}
	return b
}

func (b *AdvisorBriefer) Enabled() bool {
	return b != nil && b.model != nil
}

// Brief generates the brief for lead. profile may be nil when the lead
// skipped the questionnaire.
func (b *AdvisorBriefer) Brief(ctx context.Context, lead *domain.Lead, profile *domain.EmotionalProfile) (*domain.AdvisorBrief, error) {
	if !b.Enabled() {
		return nil, errors.NewServiceError("AI provider not configured", "advisor", "brief", ErrNotConfigured)
	}
	if lead == nil {
		return nil, errors.NewValidationError("lead is required", "lead", nil)
	}

	text, err := b.prompts.BuildAdvisorBrief(prompt.NewAdvisorBriefData(b.siteName, lead, profile))
	if err != nil {
		return nil, errors.NewServiceError("failed to build advisor prompt", "advisor", "brief", err)
	}

	var brief domain.AdvisorBrief
	meta, err := b.model.GenerateJSON(ctx, text, PresetPrecise, &brief, nil)
	if err != nil {
		return nil, err
	}

	normalizeBrief(&brief, profile)
	if brief.Headline == "" && brief.Summary == "" {
		return nil, errors.NewAPIError("empty advisor brief", 502, map[string]any{"provider": meta.Provider})
	}

	b.logger.Info("Advisor brief generated",
		zap.Int64("lead_id", lead.ID),
		zap.String("provider", meta.Provider),
		zap.Bool("fallback", meta.UsedFallback),
	)
	return &brief, nil
}

// normalizeBrief trims fields, caps list lengths and clamps the suggested
// nights into the profile's range when one is known.
func normalizeBrief(brief *domain.AdvisorBrief, profile *domain.EmotionalProfile) {
	brief.Headline = strings.TrimSpace(brief.Headline)
	brief.Summary = strings.TrimSpace(brief.Summary)
	brief.TalkingPoints = compactStrings(brief.TalkingPoints, maxTalkingPoints)
	brief.Risks = compactStrings(brief.Risks, maxRisks)

	if brief.SuggestedNights < 0 {
		brief.SuggestedNights = 0
	}
	if profile == nil || profile.DurationNights.Max == 0 {
		return
	}
	if brief.SuggestedNights < profile.DurationNights.Min {
		brief.SuggestedNights = profile.DurationNights.Min
	}
	if brief.SuggestedNights > profile.DurationNights.Max {
		brief.SuggestedNights = profile.DurationNights.Max
	}
}

func compactStrings(in []string, limit int) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
		if len(out) == limit {
			break
		}
	}
	return out
}
