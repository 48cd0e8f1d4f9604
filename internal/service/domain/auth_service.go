package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/util"
)

// SessionStore binds a login session token to a user id.
type SessionStore interface {
	CreateSession(userID uint) (string, error)
	GetSession(token string) (uint, error)
	DeleteSession(token string) error
}

type AuthService interface {
	Register(username, email, password string) (*model.User, string, error)
	Login(email, password string) (*model.User, string, error)
	Logout(token string) error
	CurrentUser(token string) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	repo     repository.UserRepo
	sessions SessionStore
}

var _ AuthService = (*authService)(nil)

func NewAuthService(db *gorm.DB, userRepo repository.UserRepo, sessions SessionStore) *authService {
	return &authService{
		db:       db,
		repo:     userRepo,
		sessions: sessions,
	}
}

// Register creates the user and logs them in, returning the session token.
func (s *authService) Register(username, email, password string) (*model.User, string, error) {
	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, "", service.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if _, err := s.repo.GetByUsername(username); err == nil {
		return nil, "", service.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(user)
	}); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.CreateSession(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login returns the same ErrInvalidCredentials for an unknown email and a
// wrong password, so callers cannot tell which one failed.
func (s *authService) Login(email, password string) (*model.User, string, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", service.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !util.VerifyPassword(user.PasswordHash, password) {
		return nil, "", service.ErrInvalidCredentials
	}

	token, err := s.sessions.CreateSession(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

// CurrentUser resolves a session token to its user. Fails closed: any
// unresolvable token yields ErrNotFound.
func (s *authService) CurrentUser(token string) (*model.User, error) {
	userID, err := s.sessions.GetSession(token)
	if err != nil {
		return nil, service.ErrNotFound
	}
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
