package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcdev12/chrono/go/internal/apperrors"
	"github.com/mcdev12/chrono/go/internal/models"
)

type fakeUsersRepo struct {
	byID       map[uuid.UUID]*models.User
	byUsername map[string]*models.User
	byEmail    map[string]*models.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byID:       make(map[uuid.UUID]*models.User),
		byUsername: make(map[string]*models.User),
		byEmail:    make(map[string]*models.User),
	}
}

func (f *fakeUsersRepo) add(user *models.User) {
	f.byID[user.ID] = user
	f.byUsername[user.Username] = user
	f.byEmail[user.Email] = user
}

func (f *fakeUsersRepo) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	f.add(user)
	return user, nil
}

func (f *fakeUsersRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsersRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func validRequest() RegisterUserRequest {
	return RegisterUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	}
}

func TestRegister_Success(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	user, err := app.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))
}

func TestRegister_Validation(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	tests := []struct {
		name string
		req  RegisterUserRequest
	}{
		{"missing username", RegisterUserRequest{Email: "a@b.com", Password: "longenough"}},
		{"missing email", RegisterUserRequest{Username: "alice", Password: "longenough"}},
		{"bad email", RegisterUserRequest{Username: "alice", Email: "nope", Password: "longenough"}},
		{"short password", RegisterUserRequest{Username: "alice", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	_, err := app.Register(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Email = "other@example.com"
	_, err = app.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	_, err := app.Register(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Username = "alice2"
	_, err = app.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

// raceLoserRepo models losing a concurrent-register race: the existence
// checks see nothing, but the insert hits the unique constraint.
type raceLoserRepo struct {
	*fakeUsersRepo
}

func (r *raceLoserRepo) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	return nil, fmt.Errorf("user %s: %w", username, apperrors.ErrAlreadyExists)
}

func TestRegister_ConcurrentDuplicateConflicts(t *testing.T) {
	app := NewApp(&raceLoserRepo{fakeUsersRepo: newFakeUsersRepo()})

	_, err := app.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestAuthenticate_Success(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	registered, err := app.Register(context.Background(), validRequest())
	require.NoError(t, err)

	user, err := app.Authenticate(context.Background(), "alice", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	_, err := app.Register(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = app.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	app := NewApp(newFakeUsersRepo())

	_, err := app.Authenticate(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
