package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/srikanthravipati27/environment-hub/internal/domain/entity"
	repo "github.com/srikanthravipati27/environment-hub/internal/domain/repository"
	"github.com/srikanthravipati27/environment-hub/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrBlankField         = errors.New("all registration fields are required")
)

// Service implements signup, signin and logout over the user repository
// and the session store.
//
// Uniqueness of email and userName is a check-then-insert without a
// transaction: two concurrent registrations with the same email can both
// pass the checks. Applying db/migrations closes the gap at the store level.
type Service struct {
	Repo     repo.UserRepository
	Sessions repo.SessionStore
	Logger   *logrus.Logger

	hashSlots *semaphore.Weighted
}

func NewService(users repo.UserRepository, sessions repo.SessionStore, logger *logrus.Logger, hashConcurrency int) *Service {
	if hashConcurrency <= 0 {
		hashConcurrency = 1
	}
	return &Service{
		Repo:      users,
		Sessions:  sessions,
		Logger:    logger,
		hashSlots: semaphore.NewWeighted(int64(hashConcurrency)),
	}
}

type RegisterInput struct {
	FirstName string
	UserName  string
	Email     string
	Password  string
}

// Authenticated is the outcome of a successful Login.
type Authenticated struct {
	UserName  string
	SessionID string
}

// Register creates a user after checking that neither the email nor the
// userName is taken, in that order. Inputs that are blank once trimmed yield
// ErrBlankField. Nothing is written on failure.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.UserName = strings.TrimSpace(in.UserName)
	in.Email = strings.TrimSpace(in.Email)
	in.Password = strings.TrimSpace(in.Password)
	if in.FirstName == "" || in.UserName == "" || in.Email == "" || in.Password == "" {
		return nil, ErrBlankField
	}

	taken, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.Repo.ExistsByUserName(ctx, in.UserName)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:         in.FirstName,
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repo.ErrDuplicateUserName):
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_name", u.UserName).Info("user registered")
	}
	return u, nil
}

// Login verifies the password of the user registered under email and opens
// a session. Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*Authenticated, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.verify(ctx, u.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.Sessions.Create(ctx, u.UserName)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &Authenticated{UserName: u.UserName, SessionID: sess.ID}, nil
}

// Logout destroys the session. Unknown identifiers are not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Profile returns the user registered under userName.
func (s *Service) Profile(ctx context.Context, userName string) (*entity.User, error) {
	u, err := s.Repo.GetByUserName(ctx, userName)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *Service) hash(ctx context.Context, password string) (string, error) {
	if err := s.hashSlots.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.hashSlots.Release(1)
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (s *Service) verify(ctx context.Context, hash, password string) (bool, error) {
	if err := s.hashSlots.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer s.hashSlots.Release(1)
	return helpers.CompareHashAndPassword(hash, password), nil
}
