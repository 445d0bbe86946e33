package accessrequest

import (
	"time"

	"github.com/google/uuid"

	requestDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/accessrequest"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type AccessRequest struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AccessRequest) CanBeApproved() bool {
	return a.Status == StatusPending
}

func (a *AccessRequest) CanBeRejected() bool {
	return a.Status == StatusPending
}

func ToDataModel(a *AccessRequest) *requestDatamodel.AccessRequest {
	return &requestDatamodel.AccessRequest{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromDataModel(a *requestDatamodel.AccessRequest) *AccessRequest {
	return &AccessRequest{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromDataModelSlice(requests []*requestDatamodel.AccessRequest) []*AccessRequest {
	result := make([]*AccessRequest, len(requests))
	for i, a := range requests {
		result[i] = FromDataModel(a)
	}
	return result
}
