package lead

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
)

// LegacyLead is the record shape of the browser-stored admin list: string
// ids and plain YYYY-MM-DD dates.
type LegacyLead struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Destination        string            `json:"destination"`
	Status             string            `json:"status"`
	Date               string            `json:"date"`
	Modality           string            `json:"modality,omitempty"`
	EmotionalAnswers   map[string]string `json:"emotionalAnswers,omitempty"`
	EmotionalProfileID string            `json:"emotionalProfileId,omitempty"`
}

// ImportResult splits converted leads from rejected records. Each rejection
// names the record index.
type ImportResult struct {
	Leads    []*domain.Lead
	Rejected []error
}

var legacyDateLayouts = []string{time.RFC3339, "2006-01-02", "2/1/2006", "1/2/2006"}

// ParseLegacyLeads converts an exported JSON array. Numeric ids are kept;
// anything else gets a fresh id from newID.
func ParseLegacyLeads(data []byte, newID func() int64) (*ImportResult, error) {
	var records []LegacyLead
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode legacy leads: %w", err)
	}

	result := &ImportResult{Leads: make([]*domain.Lead, 0, len(records))}
	seen := make(map[int64]struct{}, len(records))
	for i, rec := range records {
		lead, err := convertLegacy(rec, newID)
		if err == nil {
			if _, dup := seen[lead.ID]; dup {
				err = fmt.Errorf("duplicate id %d", lead.ID)
			}
		}
		if err != nil {
			result.Rejected = append(result.Rejected, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		seen[lead.ID] = struct{}{}
		result.Leads = append(result.Leads, lead)
	}
	return result, nil
}

func convertLegacy(rec LegacyLead, newID func() int64) (*domain.Lead, error) {
	name := strings.TrimSpace(rec.Name)
	email := strings.TrimSpace(rec.Email)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	status := domain.LeadStatus(strings.TrimSpace(rec.Status))
	if status == "" {
		status = domain.LeadNew
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", rec.Status)
	}

	modality := domain.Modality(strings.TrimSpace(rec.Modality))
	if modality != "" && !modality.IsValid() {
		return nil, fmt.Errorf("unknown modality %q", rec.Modality)
	}

	id, err := strconv.ParseInt(strings.TrimSpace(rec.ID), 10, 64)
	if err != nil || id <= 0 {
		if newID == nil {
			return nil, fmt.Errorf("id %q is not numeric", rec.ID)
		}
		id = newID()
	}

	created, err := parseLegacyDate(rec.Date)
	if err != nil {
		return nil, err
	}

	return &domain.Lead{
		ID:                 id,
		Name:               name,
		Email:              email,
		Phone:              strings.TrimSpace(rec.Phone),
		Destination:        strings.TrimSpace(rec.Destination),
		Status:             status,
		CreatedAt:          created,
		Modality:           modality,
		EmotionalAnswers:   rec.EmotionalAnswers,
		EmotionalProfileID: domain.ProfileID(rec.EmotionalProfileID),
		Language:           domain.LanguageES,
	}, nil
}

func parseLegacyDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
