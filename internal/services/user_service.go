package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/societyhub/societyhub-api/internal/models"
	"github.com/societyhub/societyhub-api/internal/repository"
)

// UserService handles user-related business logic
type UserService struct {
	repo     repository.UserRepository
	auditSvc *AuditService
}

func NewUserService(repo repository.UserRepository, auditSvc *AuditService) *UserService {
	return &UserService{
		repo:     repo,
		auditSvc: auditSvc,
	}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}
	return user, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, asServiceError(err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return s.repo.List(ctx, query)
}

// Create registers a new user with a freshly hashed password
func (s *UserService) Create(ctx context.Context, user *models.User, password string, actorID uint) error {
	if user.Role == "" {
		user.Role = models.RoleFlatOwner
	}
	if !models.ValidRole(user.Role) {
		return validationf("unknown role %q", user.Role)
	}
	if password == "" {
		return validationf("password is required")
	}

	user.Email = strings.ToLower(user.Email)
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.HashedPassword = hashed
	user.IsActive = true

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "CREATE", "User", user.ID,
		fmt.Sprintf("user created: %s (%s) role=%s", user.Username, user.Email, user.Role))
}

// UserUpdate carries the updatable user fields; nil means leave unchanged
type UserUpdate struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

// Update applies a partial update to a user
func (s *UserService) Update(ctx context.Context, id uint, update UserUpdate, actorID uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, asServiceError(err)
	}

	if update.Email != nil {
		user.Email = strings.ToLower(*update.Email)
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.auditSvc.Log(ctx, actorID, "UPDATE", "User", user.ID,
		fmt.Sprintf("user updated: %s", user.Username)); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user permanently
func (s *UserService) Delete(ctx context.Context, id uint, actorID uint) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return asServiceError(err)
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return err
	}
	return s.auditSvc.Log(ctx, actorID, "DELETE", "User", user.ID,
		fmt.Sprintf("user deleted: %s", user.Username))
}
