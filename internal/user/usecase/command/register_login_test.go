package command

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficworks/equipment-service/internal/user/domain"
	"github.com/trafficworks/equipment-service/pkg/auth"
)

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepository) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserRepository) FindAll(_ context.Context, limit, offset int) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepository) FindByRole(_ context.Context, role domain.Role, limit, offset int) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.User
	for _, user := range f.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepository) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user not found")
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepository) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, user := range f.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

func TestRegisterUserDefaultsToTrafficControlPerson(t *testing.T) {
	repo := newFakeUserRepository()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(context.Background(), RegisterUserCommand{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "correct-horse",
		FullName: "Jordan Smith",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleTrafficControlPerson, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct-horse", user.Password)
}

func TestRegisterUserRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	handler := NewRegisterUserHandler(repo)
	ctx := context.Background()

	_, err := handler.Handle(ctx, RegisterUserCommand{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "correct-horse",
		FullName: "Jordan Smith",
	})
	require.NoError(t, err)

	_, err = handler.Handle(ctx, RegisterUserCommand{
		Username: "jsmith",
		Email:    "other@example.com",
		Password: "battery-staple",
		FullName: "Other Smith",
	})
	assert.Error(t, err)
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	repo := newFakeUserRepository()
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(context.Background(), RegisterUserCommand{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "short",
		FullName: "Jordan Smith",
	})
	assert.Error(t, err)
}

func TestLoginUserReturnsValidToken(t *testing.T) {
	repo := newFakeUserRepository()
	registerHandler := NewRegisterUserHandler(repo)
	loginHandler := NewLoginUserHandler(repo)
	ctx := context.Background()

	registered, err := registerHandler.Handle(ctx, RegisterUserCommand{
		Username: "dispatcher",
		Email:    "dc@example.com",
		Password: "correct-horse",
		FullName: "Dana Cruz",
		Role:     domain.RoleDispatchCoordinator,
	})
	require.NoError(t, err)

	resp, err := loginHandler.Handle(ctx, LoginUserCommand{
		Username: "dispatcher",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, string(domain.RoleDispatchCoordinator), claims.Role)
}

func TestLoginUserRejectsWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	registerHandler := NewRegisterUserHandler(repo)
	loginHandler := NewLoginUserHandler(repo)
	ctx := context.Background()

	_, err := registerHandler.Handle(ctx, RegisterUserCommand{
		Username: "dispatcher",
		Email:    "dc@example.com",
		Password: "correct-horse",
		FullName: "Dana Cruz",
	})
	require.NoError(t, err)

	_, err = loginHandler.Handle(ctx, LoginUserCommand{
		Username: "dispatcher",
		Password: "wrong-password",
	})
	assert.Error(t, err)
}

func TestLoginUserRejectsDeactivatedAccount(t *testing.T) {
	repo := newFakeUserRepository()
	registerHandler := NewRegisterUserHandler(repo)
	loginHandler := NewLoginUserHandler(repo)
	toggleHandler := NewToggleActiveHandler(repo)
	ctx := context.Background()

	user, err := registerHandler.Handle(ctx, RegisterUserCommand{
		Username: "dispatcher",
		Email:    "dc@example.com",
		Password: "correct-horse",
		FullName: "Dana Cruz",
	})
	require.NoError(t, err)

	_, err = toggleHandler.Handle(ctx, ToggleActiveCommand{UserID: user.ID, IsActive: false})
	require.NoError(t, err)

	_, err = loginHandler.Handle(ctx, LoginUserCommand{
		Username: "dispatcher",
		Password: "correct-horse",
	})
	assert.Error(t, err)
}
