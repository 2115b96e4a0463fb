// Package auth issues and verifies the bearer tokens that gate the API.
// Accounts live in memory; in demo mode any credentials sign in.
package auth

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abhinav6284/Planora/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
)

type account struct {
	user model.User
	hash []byte
}

type Service struct {
	secret   []byte
	demo     bool
	tokenTTL time.Duration
	logger   *log.Logger

	mu    sync.RWMutex
	users map[string]account
}

func NewService(secret []byte, demo bool, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		secret:   secret,
		demo:     demo,
		tokenTTL: 7 * 24 * time.Hour,
		logger:   logger,
		users:    map[string]account{},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(name, email, password string) (model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return model.User{}, "", ErrInvalidCredentials
	}
	if name == "" {
		name = localPart(email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", err
	}

	s.mu.Lock()
	if _, exists := s.users[email]; exists {
		s.mu.Unlock()
		return model.User{}, "", ErrEmailTaken
	}
	u := model.User{Name: name, Email: email}
	s.users[email] = account{user: u, hash: hash}
	s.mu.Unlock()

	token, err := s.generateToken(u)
	if err != nil {
		return model.User{}, "", err
	}
	return u, token, nil
}

// Login checks credentials and returns a signed token. Demo mode accepts
// anything and fabricates a user for unknown emails, mirroring the demo
// sign-in screen.
func (s *Service) Login(email, password string) (model.User, string, error) {
	email = normalizeEmail(email)

	s.mu.RLock()
	acct, known := s.users[email]
	s.mu.RUnlock()

	var u model.User
	switch {
	case known:
		if !s.demo && bcrypt.CompareHashAndPassword(acct.hash, []byte(password)) != nil {
			return model.User{}, "", ErrInvalidCredentials
		}
		u = acct.user
	case s.demo:
		if email == "" {
			email = "demo@planora.com"
		}
		u = model.User{Name: "Demo User", Email: email}
	default:
		return model.User{}, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(u)
	if err != nil {
		return model.User{}, "", err
	}
	return u, token, nil
}

func (s *Service) generateToken(u model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.Email,
		"name": u.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses a bearer token and reconstructs the user it was issued to.
func (s *Service) Verify(token string) (model.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.User{}, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, ErrInvalidToken
	}
	email, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	if email == "" {
		return model.User{}, ErrInvalidToken
	}
	return model.User{Name: name, Email: email}, nil
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
