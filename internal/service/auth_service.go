package service

import (
	"errors"
	"time"

	"campusparking/internal/db"
	apperrors "campusparking/internal/errors"
	"campusparking/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(name, email, password string, isUser bool) (*db.User, error)
	Login(email, password string) (string, *db.User, error)
}

type authService struct {
	repo      repository.UserRepository
	jwtSecret string
}

func NewAuthService(repo repository.UserRepository, jwtSecret string) AuthService {
	return &authService{repo: repo, jwtSecret: jwtSecret}
}

func (s *authService) Signup(name, email, password string, isUser bool) (*db.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &db.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsUser:       isUser,
	}
	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			return nil, errors.New("email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(email, password string) (string, *db.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if s.jwtSecret == "" {
		return "", nil, errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"is_user": user.IsUser,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}
