package company

import (
	"github.com/google/uuid"

	errors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/core/common/validation"
)

type CreateCompanyDTO struct {
	Name     string  `json:"name"`
	FiscalID *string `json:"fiscal_id,omitempty"`
}

func (dto CreateCompanyDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(255)
	v.Field("fiscal_id", dto.FiscalID).MaxLength(64)
	return v.Validate()
}

type AddMemberDTO struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role,omitempty"`
}

func (dto AddMemberDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("user_id", dto.UserID).Custom(func(value interface{}) *errors.AppError {
		if id, ok := value.(uuid.UUID); ok && id == uuid.Nil {
			return errors.NewValidationFieldError("user_id", "user_id is required", errors.ErrCodeValidationFailed)
		}
		return nil
	})
	if dto.Role != "" {
		v.Field("role", dto.Role).OneOf([]string{MemberRoleAdmin, MemberRoleWorker}, errors.ErrCodeValidationFailed)
	}
	return v.Validate()
}
