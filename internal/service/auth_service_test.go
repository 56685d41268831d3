package service

import (
	"sync"
	"testing"
	"time"

	"campusparking/internal/db"
	apperrors "campusparking/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*db.User
	next  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*db.User)}
}

func (m *memUserRepo) CreateUser(u *db.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[u.Email]; exists {
		return apperrors.ErrDuplicateEntry
	}
	m.next++
	u.ID = m.next
	u.CreatedAt = time.Now().UTC()
	stored := *u
	m.users[u.Email] = &stored
	return nil
}

func (m *memUserRepo) GetByEmail(email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	found := *u
	return &found, nil
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, "test-secret")

	user, err := svc.Signup("Alice", "alice@campus.edu", "hunter2", true)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", user.PasswordHash, "the raw password must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.Signup("Alice", "alice@campus.edu", "hunter2", true)
	require.NoError(t, err)

	_, err = svc.Signup("Other Alice", "alice@campus.edu", "different", true)
	assert.EqualError(t, err, "email already exists")
}

func TestSignupRejectsEmptyFields(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	_, err := svc.Signup("Alice", "alice@campus.edu", "", true)
	assert.Error(t, err)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.Signup("Carol", "carol@campus.edu", "s3cret", false)
	require.NoError(t, err)

	tokenString, user, err := svc.Login("carol@campus.edu", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "carol@campus.edu", user.Email)
	assert.False(t, user.IsUser)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "carol@campus.edu", claims["email"])
	assert.Equal(t, false, claims["is_user"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, "test-secret")

	_, err := svc.Signup("Alice", "alice@campus.edu", "hunter2", true)
	require.NoError(t, err)

	_, _, err = svc.Login("alice@campus.edu", "wrong")
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), "test-secret")
	_, _, err := svc.Login("ghost@campus.edu", "whatever")
	assert.EqualError(t, err, "invalid credentials")
}
