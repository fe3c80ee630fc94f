package domain

import "time"

type WizardPhase string

const (
	PhaseComposition       WizardPhase = "composition"
	PhaseRespondentsConfig WizardPhase = "respondents_config"
	PhaseQuestions         WizardPhase = "questions"
	PhaseKids              WizardPhase = "kids"
	PhaseComplete          WizardPhase = "complete"
)

func (p WizardPhase) IsValid() bool {
	switch p {
	case PhaseComposition, PhaseRespondentsConfig, PhaseQuestions, PhaseKids, PhaseComplete:
		return true
	}
	return false
}

// WizardSession is the resumable snapshot of the custom-trip questionnaire.
type WizardSession struct {
	ID                    string       `json:"id"`
	Modality              Modality     `json:"modality"`
	AgeBands              []AgeBand    `json:"ageBands"`
	Phase                 WizardPhase  `json:"phase"`
	Respondents           []Respondent `json:"respondents"`
	ActiveRespondentIndex int          `json:"activeRespondentIndex"`
	SaveProfileConsent    bool         `json:"saveProfileConsent"`
	UpdatedAt             time.Time    `json:"updatedAt"`
}
