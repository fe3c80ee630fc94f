package prompt

import (
	"fmt"
	"sort"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
)

type AdvisorProfile struct {
	ID          string
	Name        string
	Description string
	Rhythm      string
	Structure   string
	Environment string
	Sociability string
	Peak        string
	End         string
	Avoid       string
	Guardrails  []string
	MinNights   int
	MaxNights   int
}

type AdvisorBriefData struct {
	SiteName    string
	Name        string
	Destination string
	Package     string
	Modality    string
	Language    string
	Profile     *AdvisorProfile
	Answers     []string
}

// NewAdvisorBriefData flattens a lead and its resolved profile (may be nil).
// Answers are listed in question-id order so the prompt is stable.
func NewAdvisorBriefData(siteName string, lead *domain.Lead, profile *domain.EmotionalProfile) AdvisorBriefData {
	data := AdvisorBriefData{
		SiteName:    siteName,
		Name:        lead.Name,
		Destination: lead.Destination,
		Package:     lead.PackageSlug,
		Modality:    string(lead.Modality),
		Language:    string(lead.Language),
	}
	if data.SiteName == "" {
		data.SiteName = "Meta Travels"
	}

	ids := make([]string, 0, len(lead.EmotionalAnswers))
	for id := range lead.EmotionalAnswers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		data.Answers = append(data.Answers, fmt.Sprintf("%s: %s", id, lead.EmotionalAnswers[id]))
	}

	if profile != nil {
		p := &AdvisorProfile{
			ID:          string(profile.ID),
			Name:        profile.Name.ES,
			Description: profile.Description.ES,
			Rhythm:      string(profile.Architecture.Rhythm),
			Structure:   string(profile.Architecture.Structure),
			Environment: string(profile.Architecture.Environment),
			Sociability: string(profile.Architecture.Sociability),
			Peak:        profile.Peak.ES,
			End:         profile.End.ES,
			Avoid:       profile.Avoid.ES,
			MinNights:   profile.DurationNights.Min,
			MaxNights:   profile.DurationNights.Max,
		}
		for _, g := range profile.Guardrails {
			p.Guardrails = append(p.Guardrails, g.ES)
		}
		data.Profile = p
	}
	return data
}

func (b *Builder) BuildAdvisorBrief(data AdvisorBriefData) (string, error) {
	return b.Render(TemplateAdvisorBrief, data)
}
