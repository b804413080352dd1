package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeJobRequestCreated = "job_request.created"
)

type JobRequestCreatedEvent struct {
	BaseEvent
	JobRequestID string `json:"job_request_id"`
	CompanyID    string `json:"company_id"`
	JobTitle     string `json:"job_title"`
	Status       string `json:"status"`
}

func NewJobRequestCreatedEvent(jobRequestID, companyID, jobTitle, status string) *JobRequestCreatedEvent {
	return &JobRequestCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeJobRequestCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"job_request_id": jobRequestID,
				"company_id":     companyID,
				"job_title":      jobTitle,
				"status":         status,
			},
		},
		JobRequestID: jobRequestID,
		CompanyID:    companyID,
		JobTitle:     jobTitle,
		Status:       status,
	}
}
