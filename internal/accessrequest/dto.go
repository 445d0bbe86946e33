package accessrequest

import (
	errors "github.com/vesotel/worklog-management/internal"
	"github.com/vesotel/worklog-management/internal/core/common/validation"
)

type CreateAccessRequestDTO struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (dto CreateAccessRequestDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", dto.Email).Required().Email()
	v.Field("first_name", dto.FirstName).MaxLength(100)
	v.Field("last_name", dto.LastName).MaxLength(100)
	return v.Validate()
}
