package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/accessrequest"
	requestDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/accessrequest"
)

type AccessRequestRepository struct {
	db *gorm.DB
}

func NewAccessRequestRepository(db *gorm.DB) accessrequest.RepositoryAPI {
	return &AccessRequestRepository{db: db}
}

func (r *AccessRequestRepository) Create(req *requestDatamodel.AccessRequest) error {
	return r.db.Create(req).Error
}

func (r *AccessRequestRepository) GetByID(id uuid.UUID) (*requestDatamodel.AccessRequest, error) {
	var req requestDatamodel.AccessRequest
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrAccessRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *AccessRequestRepository) List(offset, limit int) ([]*requestDatamodel.AccessRequest, error) {
	var requests []*requestDatamodel.AccessRequest
	err := r.db.Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error
	return requests, err
}

func (r *AccessRequestRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&requestDatamodel.AccessRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
