package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ductran/syllabase/internal/platform/apperr"
	"github.com/ductran/syllabase/internal/users/auth"
)

// memoryUserRepository is an in-memory credential store used by the unit
// tests. Email matching is case-insensitive like the real store.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*auth.User // keyed by ID
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*auth.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperr.Conflict("Email is already registered")
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// staticTokenIssuer returns a fixed token so service tests do not depend on
// real signing.
type staticTokenIssuer struct{ token string }

func (s staticTokenIssuer) IssueToken(string) (string, error) { return s.token, nil }

/*
TestService_Register verifies account enrollment: the password is stored as
a bcrypt digest, a token is issued, and a duplicate email is refused with a
conflict regardless of letter case.
*/
func TestService_Register(t *testing.T) {
	repo := newMemoryUserRepository()
	service := auth.NewService(repo, staticTokenIssuer{token: "issued-token"})

	session, err := service.Register(context.Background(), auth.RegisterInput{
		Name:     "Duc Tran",
		Email:    "duc@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "issued-token", session.Token)
	assert.NotEmpty(t, session.User.ID)
	assert.Equal(t, "duc@example.com", session.User.Email)

	// The digest must never equal the plaintext.
	assert.NotEqual(t, "s3cret", session.User.PasswordHash)
	assert.True(t, strings.HasPrefix(session.User.PasswordHash, "$2"))

	// Same email, different case -> conflict.
	_, err = service.Register(context.Background(), auth.RegisterInput{
		Name:     "Impostor",
		Email:    "DUC@example.com",
		Password: "other",
	})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_Login verifies credential checks and, critically, that an
unknown email and a wrong password are indistinguishable: identical error
code and message, so the endpoint cannot be used to enumerate accounts.
*/
func TestService_Login(t *testing.T) {
	repo := newMemoryUserRepository()
	service := auth.NewService(repo, staticTokenIssuer{token: "issued-token"})

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Name:     "Duc Tran",
		Email:    "duc@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		session, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "duc@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, "issued-token", session.Token)
		assert.Equal(t, "Duc Tran", session.User.Name)
	})

	t.Run("email_case_insensitive", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email:    "Duc@Example.com",
			Password: "s3cret",
		})
		assert.NoError(t, err)
	})

	t.Run("failures_are_indistinguishable", func(t *testing.T) {
		_, unknownErr := service.Login(context.Background(), auth.LoginInput{
			Email:    "nobody@example.com",
			Password: "s3cret",
		})
		_, wrongErr := service.Login(context.Background(), auth.LoginInput{
			Email:    "duc@example.com",
			Password: "wrong-password",
		})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)

		unknownApp := apperr.As(unknownErr)
		wrongApp := apperr.As(wrongErr)
		require.NotNil(t, unknownApp)
		require.NotNil(t, wrongApp)

		assert.Equal(t, unknownApp.Code, wrongApp.Code)
		assert.Equal(t, unknownApp.Message, wrongApp.Message)
		assert.Equal(t, unknownApp.HTTPStatus, wrongApp.HTTPStatus)
	})
}
