package user

import (
	errors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/core/common/validation"
)

type CreateUserDTO struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
}

func (dto CreateUserDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", dto.Email).Required().Email()
	v.Field("first_name", dto.FirstName).MaxLength(100)
	v.Field("last_name", dto.LastName).MaxLength(100)
	if dto.Role != "" {
		v.Field("role", dto.Role).OneOf([]string{RoleUser, RoleAdmin}, errors.ErrCodeValidationFailed)
	}
	return v.Validate()
}
