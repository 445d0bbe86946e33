package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeWorkLogCreated        = "worklog.created"
	EventTypeAccessRequestResolved = "accessrequest.resolved"
)

type WorkLogCreatedEvent struct {
	BaseEvent
	WorkLogID   string  `json:"work_log_id"`
	UserID      string  `json:"user_id"`
	LogType     string  `json:"log_type"`
	Amount      float64 `json:"amount"`
	RateApplied float64 `json:"rate_applied"`
}

func NewWorkLogCreatedEvent(workLogID, userID uuid.UUID, logType string, amount, rateApplied float64) *WorkLogCreatedEvent {
	return &WorkLogCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeWorkLogCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"work_log_id":  workLogID.String(),
				"user_id":      userID.String(),
				"log_type":     logType,
				"amount":       amount,
				"rate_applied": rateApplied,
			},
		},
		WorkLogID:   workLogID.String(),
		UserID:      userID.String(),
		LogType:     logType,
		Amount:      amount,
		RateApplied: rateApplied,
	}
}

type AccessRequestResolvedEvent struct {
	BaseEvent
	RequestID string `json:"request_id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

func NewAccessRequestResolvedEvent(requestID uuid.UUID, email, status string) *AccessRequestResolvedEvent {
	return &AccessRequestResolvedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeAccessRequestResolved,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"request_id": requestID.String(),
				"email":      email,
				"status":     status,
			},
		},
		RequestID: requestID.String(),
		Email:     email,
		Status:    status,
	}
}
