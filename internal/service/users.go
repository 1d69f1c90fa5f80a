package service

import (
	"fmt"
	"strings"

	"canteen-system/internal/common/logger"
	"canteen-system/internal/domain"
	"canteen-system/internal/repository"
)

type UserServiceInterface interface {
	Register(req domain.RegisterRequest) (domain.User, error)
	GetPendingAdmins() []domain.User
	Approve(id int, status string) (domain.User, error)
}

type UserService struct {
	repo   repository.UserRepositoryInterface
	events EventPublisher
	lg     *logger.Logger
}

func NewUserService(repo repository.UserRepositoryInterface, events EventPublisher, lg *logger.Logger) UserServiceInterface {
	return &UserService{repo: repo, events: events, lg: lg}
}

// Register creates a pending admin account and notifies super admins.
func (us *UserService) Register(req domain.RegisterRequest) (domain.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	user := us.repo.AddUser(req.Username, req.RestaurantName)
	us.events.PublishRegistration(user)
	us.lg.Info("user_registered", map[string]any{"user_id": user.ID, "username": user.Username})
	return user, nil
}

func (us *UserService) GetPendingAdmins() []domain.User {
	return us.repo.GetPendingAdmins()
}

func (us *UserService) Approve(id int, status string) (domain.User, error) {
	next := domain.UserStatus(status)
	if next != domain.UserApproved && next != domain.UserRejected {
		return domain.User{}, fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	}
	user, err := us.repo.SetStatus(id, next)
	if err != nil {
		return domain.User{}, err
	}
	us.lg.Info("user_reviewed", map[string]any{"user_id": user.ID, "status": user.Status})
	return user, nil
}
