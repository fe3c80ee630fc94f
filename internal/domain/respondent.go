package domain

// Modality is the travel party composition chosen at the start of the wizard.
type Modality string

const (
	ModalitySolo   Modality = "solo"
	ModalityCouple Modality = "couple"
	ModalityFamily Modality = "family"
	ModalityGroup  Modality = "group"
)

var Modalities = []Modality{ModalitySolo, ModalityCouple, ModalityFamily, ModalityGroup}

func (m Modality) String() string {
	return string(m)
}

func (m Modality) IsValid() bool {
	switch m {
	case ModalitySolo, ModalityCouple, ModalityFamily, ModalityGroup:
		return true
	}
	return false
}

// TieBreakerKey is the answer key under which the leader's explicit
// tie-breaker choice is stored, e.g. "couple_TB".
func (m Modality) TieBreakerKey() string {
	return string(m) + "_TB"
}

type RespondentRole string

const (
	RoleLeader    RespondentRole = "leader"
	RoleCaregiver RespondentRole = "caregiver"
	RoleEnergy    RespondentRole = "energy"
	RoleFlex      RespondentRole = "flex"
)

func (r RespondentRole) IsValid() bool {
	switch r {
	case RoleLeader, RoleCaregiver, RoleEnergy, RoleFlex:
		return true
	}
	return false
}

// DefaultWeight is the influence assigned by the wizard when a respondent is created.
func (r RespondentRole) DefaultWeight() float64 {
	if r == RoleLeader {
		return 1.2
	}
	return 1.0
}

// Respondent is one person answering the questionnaire. Answers maps a
// question id to the literal option text that was chosen.
type Respondent struct {
	ID      string            `json:"id"`
	Role    RespondentRole    `json:"role"`
	Weight  float64           `json:"weight"`
	Answers map[string]string `json:"answers"`
}

// DefaultRoles mirrors the wizard's role assignment for a party of count people.
func DefaultRoles(m Modality, count int) []RespondentRole {
	roles := make([]RespondentRole, count)
	for i := range roles {
		roles[i] = RoleFlex
	}
	if count > 0 {
		roles[0] = RoleLeader
	}
	if count > 1 {
		switch m {
		case ModalityFamily:
			roles[1] = RoleCaregiver
		case ModalityGroup:
			roles[1] = RoleEnergy
		}
	}
	return roles
}

type AgeBand string

const (
	AgeBand0To3   AgeBand = "0-3"
	AgeBand4To7   AgeBand = "4-7"
	AgeBand8To12  AgeBand = "8-12"
	AgeBand13To17 AgeBand = "13-17"
	AgeBandAdult  AgeBand = "18+"
)

// HasSmallKids is true when any traveller is seven or younger.
func HasSmallKids(bands []AgeBand) bool {
	for _, b := range bands {
		if b == AgeBand0To3 || b == AgeBand4To7 {
			return true
		}
	}
	return false
}
