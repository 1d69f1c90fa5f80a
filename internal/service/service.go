package service

import (
	"canteen-system/internal/common/logger"
	"canteen-system/internal/domain"
	"canteen-system/internal/repository"
)

// EventPublisher is the seam between mutations and real-time delivery. Every
// successful mutation publishes before the HTTP response is written.
type EventPublisher interface {
	PublishOrderCreated(order domain.Order)
	PublishOrderUpdated(order domain.Order)
	PublishRegistration(user domain.User)
}

type Service struct {
	Orders OrderServiceInterface
	Users  UserServiceInterface
}

func New(repo *repository.Repository, events EventPublisher, lg *logger.Logger) *Service {
	return &Service{
		Orders: NewOrderService(repo.Orders, events, lg),
		Users:  NewUserService(repo.Users, events, lg),
	}
}
