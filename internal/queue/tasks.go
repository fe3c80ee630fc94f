// Package queue runs background work on asynq: the client enqueues tasks
// from request handlers and the worker executes them.
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeAdvisorBrief = "lead:advisor_brief"

type AdvisorBriefPayload struct {
	LeadID int64 `json:"lead_id"`
}

func NewAdvisorBriefTask(leadID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(AdvisorBriefPayload{LeadID: leadID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal advisor brief payload: %w", err)
	}
	return asynq.NewTask(TypeAdvisorBrief, payload), nil
}

func advisorBriefTaskID(leadID int64) string {
	return fmt.Sprintf("advisor_brief:%d", leadID)
}
