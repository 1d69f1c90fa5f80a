package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-system/internal/common/logger"
	"canteen-system/internal/domain"
	"canteen-system/internal/repository"
)

func newUserService() (UserServiceInterface, *fakePublisher) {
	pub := &fakePublisher{}
	svc := NewUserService(repository.NewUserRepository(), pub, logger.New("test"))
	return svc, pub
}

func TestRegisterCreatesPendingAdmin(t *testing.T) {
	svc, pub := newUserService()

	user, err := svc.Register(domain.RegisterRequest{Username: "wong", RestaurantName: "華記冰室"})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Equal(t, domain.UserPending, user.Status)
	require.Len(t, pub.registrations, 1)
	assert.Equal(t, user.ID, pub.registrations[0].ID)

	pending := svc.GetPendingAdmins()
	require.Len(t, pending, 1)
	assert.Equal(t, "wong", pending[0].Username)
}

func TestRegisterRequiresUsername(t *testing.T) {
	svc, pub := newUserService()

	_, err := svc.Register(domain.RegisterRequest{Username: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, pub.registrations)
}

func TestApproveClearsPendingList(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register(domain.RegisterRequest{Username: "wong"})
	require.NoError(t, err)

	reviewed, err := svc.Approve(user.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, domain.UserApproved, reviewed.Status)
	assert.Empty(t, svc.GetPendingAdmins())
}

func TestApproveValidatesInput(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register(domain.RegisterRequest{Username: "wong"})
	require.NoError(t, err)

	_, err = svc.Approve(user.ID, "promoted")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Approve(999, "approved")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
