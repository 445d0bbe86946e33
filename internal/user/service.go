package user

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/vesotel/worklog-management/internal"
	userDatamodel "github.com/vesotel/worklog-management/internal/core/datamodel/user"
)

// RepositoryAPI defines the data access methods for users. GetByEmail returns
// (nil, nil) when no user carries the address.
type RepositoryAPI interface {
	Create(user *userDatamodel.User) error
	GetByID(id uuid.UUID) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)
	List(offset, limit int) ([]*userDatamodel.User, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err, "email", dto.Email)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	role := dto.Role
	if role == "" {
		role = RoleUser
	}

	now := time.Now()
	user := &User{
		ID:        uuid.New(),
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ToDataModel(user)); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "email", user.Email, "role", user.Role)
	return user, nil
}

func (s *Service) GetUserByID(id uuid.UUID) (*User, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, err
	}
	return FromDataModel(record), nil
}

func (s *Service) ListUsers(skip, limit int) ([]*User, error) {
	records, err := s.repo.List(skip, limit)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}
