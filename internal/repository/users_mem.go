package repository

import (
	"fmt"
	"sync"
	"time"

	"canteen-system/internal/domain"
)

type UserRepositoryInterface interface {
	AddUser(username, restaurantName string) domain.User
	GetPendingAdmins() []domain.User
	SetStatus(id int, status domain.UserStatus) (domain.User, error)
}

// UserRepository holds restaurant admin accounts for the approval workflow.
type UserRepository struct {
	mu     sync.Mutex
	nextID int
	users  []domain.User
}

func NewUserRepository() *UserRepository {
	ur := &UserRepository{}
	// Seed accounts so the dashboard is reachable on a fresh process.
	ur.users = append(ur.users,
		domain.User{ID: ur.allocID(), Username: "admin", Role: domain.RoleAdmin, RestaurantName: "滋味餐廳 (總店)", Status: domain.UserApproved, CreatedAt: time.Now().UTC()},
		domain.User{ID: ur.allocID(), Username: "superadmin", Role: domain.RoleSuperAdmin, Status: domain.UserApproved, CreatedAt: time.Now().UTC()},
	)
	return ur
}

func (ur *UserRepository) allocID() int {
	ur.nextID++
	return ur.nextID
}

func (ur *UserRepository) AddUser(username, restaurantName string) domain.User {
	ur.mu.Lock()
	defer ur.mu.Unlock()
	user := domain.User{
		ID:             ur.allocID(),
		Username:       username,
		Role:           domain.RoleAdmin,
		RestaurantName: restaurantName,
		Status:         domain.UserPending,
		CreatedAt:      time.Now().UTC(),
	}
	ur.users = append(ur.users, user)
	return user
}

func (ur *UserRepository) GetPendingAdmins() []domain.User {
	ur.mu.Lock()
	defer ur.mu.Unlock()
	var pending []domain.User
	for _, u := range ur.users {
		if u.Role == domain.RoleAdmin && u.Status == domain.UserPending {
			pending = append(pending, u)
		}
	}
	return pending
}

func (ur *UserRepository) SetStatus(id int, status domain.UserStatus) (domain.User, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()
	for i := range ur.users {
		if ur.users[i].ID == id {
			ur.users[i].Status = status
			return ur.users[i], nil
		}
	}
	return domain.User{}, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
}
