package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/vesotel/worklog-management/internal"
	worklogDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/worklog"
	"github.com/vesotel/worklog-management/internal/worklog"
)

// WorkLogRepository implements worklog.RepositoryAPI using GORM
type WorkLogRepository struct {
	db *gorm.DB
}

func NewWorkLogRepository(db *gorm.DB) worklog.RepositoryAPI {
	return &WorkLogRepository{db: db}
}

// Create saves a new work log. The insert is a single row and therefore
// atomic; it never partially applies a record.
func (r *WorkLogRepository) Create(log *worklogDatamodel.WorkLog) error {
	return r.db.Create(log).Error
}

func (r *WorkLogRepository) GetByID(id uuid.UUID) (*worklogDatamodel.WorkLog, error) {
	var log worklogDatamodel.WorkLog
	err := r.db.Where("id = ?", id).First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrWorkLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

// List returns a page of work logs in insertion order. Paging is pushed down
// to the database so the full collection is never loaded.
func (r *WorkLogRepository) List(offset, limit int) ([]*worklogDatamodel.WorkLog, error) {
	var logs []*worklogDatamodel.WorkLog
	err := r.db.Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *WorkLogRepository) ListByUser(userID uuid.UUID, offset, limit int) ([]*worklogDatamodel.WorkLog, error) {
	var logs []*worklogDatamodel.WorkLog
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
