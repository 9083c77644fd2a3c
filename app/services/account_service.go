package services

import (
	"errors"

	"authd/app/models"
	"authd/app/password"
	"authd/app/repo"

	"github.com/rs/zerolog"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

type SeedAccount struct {
	Username string
	Password string
	Role     string
}

type AccountService struct {
	accounts *repo.AccountRepository
	hasher   password.Hasher
	log      zerolog.Logger
}

func NewAccountService(accounts *repo.AccountRepository, hasher password.Hasher, log zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, hasher: hasher, log: log}
}

func (s *AccountService) Register(username, plain, role string) (*models.Account, error) {
	if username == "" || plain == "" {
		return nil, ErrMissingFields
	}
	if len(username) < minUsernameLen {
		return nil, ErrUsernameTooShort
	}
	if len(plain) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if role == "" {
		role = models.RoleUser
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, err
	}
	a := &models.Account{Username: username, PasswordHash: hash, Role: role}
	if err := s.accounts.Create(a); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	s.log.Info().Str("username", a.Username).Str("role", a.Role).Msg("account created")
	return a, nil
}

// Login resolves to the same error for an unknown username and a wrong
// password, and burns one bcrypt comparison in both cases.
func (s *AccountService) Login(username, plain string) (*models.Account, error) {
	if username == "" || plain == "" {
		return nil, ErrMissingFields
	}
	a, err := s.accounts.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			_ = s.hasher.Verify(plain, password.DummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if s.hasher.Verify(plain, a.PasswordHash) != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

func (s *AccountService) Get(id uint) (*models.Account, error) {
	a, err := s.accounts.FindByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AccountService) List() ([]models.Account, error) {
	return s.accounts.ListAll()
}

// Seed ensures each well-known account exists. Safe to call on every start.
func (s *AccountService) Seed(accounts []SeedAccount) error {
	for _, sa := range accounts {
		count, err := s.accounts.CountByUsername(sa.Username)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if _, err := s.Register(sa.Username, sa.Password, sa.Role); err != nil && !errors.Is(err, ErrConflict) {
			return err
		}
	}
	return nil
}
