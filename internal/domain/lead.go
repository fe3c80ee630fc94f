package domain

import "time"

type LeadStatus string

const (
	LeadNew       LeadStatus = "Nuevo"
	LeadContacted LeadStatus = "Contactado"
	LeadQuoted    LeadStatus = "Cotización"
	LeadWon       LeadStatus = "Ganado"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQuoted, LeadWon:
		return true
	}
	return false
}

// Lead is a prospective traveller captured from the site.
type Lead struct {
	ID                 int64             `json:"id,string"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Destination        string            `json:"destination"`
	Status             LeadStatus        `json:"status"`
	CreatedAt          time.Time         `json:"date"`
	Modality           Modality          `json:"modality,omitempty"`
	EmotionalAnswers   map[string]string `json:"emotionalAnswers,omitempty"`
	EmotionalProfileID ProfileID         `json:"emotionalProfileId,omitempty"`
	PackageSlug        string            `json:"packageSlug,omitempty"`
	Language           Language          `json:"language"`
	AdvisorBrief       *AdvisorBrief     `json:"advisorBrief,omitempty"`
}

// AdvisorBrief is the short internal note generated for the human advisor.
type AdvisorBrief struct {
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	TalkingPoints   []string `json:"talkingPoints"`
	Risks           []string `json:"risks"`
	SuggestedNights int      `json:"suggestedNights"`
}
