package service

import (
	"errors"
	"fmt"
	"strings"

	"bookreviews/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	// ErrUsernameTaken is returned when registration hits an existing username.
	ErrUsernameTaken = errors.New("username taken")

	// ErrInvalidCredentials deliberately covers both unknown-username and
	// wrong-password so a caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)

// AuthService handles user auth logic
type AuthService struct {
	authRepo repository.Authorization
}

func NewAuthService(repo repository.Authorization) *AuthService {
	return &AuthService{authRepo: repo}
}

var _ Authorization = (*AuthService)(nil)

// Register hashes the password and creates a new user, rejecting taken usernames.
func (s *AuthService) Register(username, password string) (int, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}

	existing, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	return s.authRepo.Create(username, hash)
}

// Authenticate validates credentials and returns the user id.
// Success requires exactly one stored user for the username (the column is
// unique, so the lookup yields at most one) plus a verified hash.
func (s *AuthService) Authenticate(username, password string) (int, error) {
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return 0, ErrInvalidCredentials
	}

	return u.ID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
