package auth

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"velour/models"
	"velour/utils"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// Service is the account directory: it owns user records and is the
// authentication gate for every protected operation.
type Service struct {
	Users  UserStore
	Tokens TokenCache

	mu     sync.Mutex
	emails map[string]*sync.Mutex
}

func NewService(users UserStore, tokens TokenCache) *Service {
	return &Service{
		Users:  users,
		Tokens: tokens,
		emails: make(map[string]*sync.Mutex),
	}
}

// emailLock serializes registration per email so two concurrent
// registers cannot both pass the existence check.
func (s *Service) emailLock(email string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.emails[email]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.emails[email] = l
	return l
}

type RegisterInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

func (s *Service) RegisterUser(ctx context.Context, in RegisterInput) (*models.UserResponse, error) {
	if !utils.ValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}

	lock := s.emailLock(in.Email)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:       uuid.NewString(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if err := s.Users.Insert(ctx, user); err != nil {
		return nil, err
	}

	resp := user.Response()
	return &resp, nil
}

// Login fails uniformly for unknown emails and wrong passwords; the
// response must not reveal which one happened.
func (s *Service) LoginUser(ctx context.Context, email, password string) (string, *models.UserResponse, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(user.UserID)
	if err != nil {
		return "", nil, err
	}

	// Cache the session token; login must not fail when Redis is down.
	if err := s.Tokens.Put(user.UserID, token); err != nil {
		log.Printf("token cache write failed: %v", err)
	}

	resp := user.Response()
	return token, &resp, nil
}

// LogoutUser drops the account's cached token.
func (s *Service) LogoutUser(userID string) error {
	return s.Tokens.Drop(userID)
}

// Resolve validates a raw bearer token and loads its subject.
func (s *Service) Resolve(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := ParseToken(tokenString)
	if err != nil || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
