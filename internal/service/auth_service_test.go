package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"healthtrack-be/internal/apperrors"
	"healthtrack-be/internal/entities"
	"healthtrack-be/internal/jwt"
	"healthtrack-be/internal/models"
)

// fakeUserRepo is an in-memory UserRepository with the same uniqueness
// semantics as the users table.
type fakeUserRepo struct {
	byEmail map[string]*entities.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entities.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, name, email, passwordHash string) (*entities.User, error) {
	if _, exists := r.byEmail[email]; exists {
		return nil, apperrors.ErrDuplicateEmail
	}
	user := &entities.User{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.nextID++
	r.byEmail[email] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	user, exists := r.byEmail[email]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entities.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func newTestAuthService(repo *fakeUserRepo) (AuthService, *jwt.JWTService) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, jwtService), jwtService
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"a@x.com", "a@x.com"},
		{"  a@x.com  ", "a@x.com"},
		{"A@X.COM", "a@x.com"},
		{" MiXeD@Example.Org ", "mixed@example.org"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	stored := repo.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_HashIsSaltedPerUser(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), &models.RegisterRequest{Name: "B", Email: "b@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Same plaintext, fresh salt per call
	assert.NotEqual(t, repo.byEmail["a@x.com"].PasswordHash, repo.byEmail["b@x.com"].PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Same address modulo case and whitespace
	_, err = svc.Register(context.Background(), &models.RegisterRequest{Name: "A2", Email: "  A@X.com ", Password: "secret2"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, jwtService := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "A@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	principal, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), principal.UserID)
	assert.Equal(t, "a@x.com", principal.Email)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	_, wrongPassErr := svc.Login(context.Background(), &models.LoginRequest{Email: "a@x.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	// Identical error values, so the transport layer cannot leak which case hit
	assert.Equal(t, unknownErr, wrongPassErr)
}
