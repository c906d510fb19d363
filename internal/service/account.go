package service

import (
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"social-media-api/internal/database"
)

const minPasswordLen = 4

// AccountService validates and persists account registration and
// authenticates login attempts. It holds no state beyond the repository.
type AccountService struct {
	log  *zap.SugaredLogger
	repo database.Repository
}

func NewAccountService(logger *zap.SugaredLogger, repo database.Repository) *AccountService {
	return &AccountService{log: logger, repo: repo}
}

// Register validates the candidate credentials and persists a new account.
// Checks run in order and the first failure wins: blank username, short
// password, taken username. No repository call happens before the field
// checks pass. Passwords are stored as bcrypt hashes; the length check
// applies to the plaintext.
func (s *AccountService) Register(username, password string) (database.Account, error) {
	if strings.TrimSpace(username) == "" {
		return database.Account{}, ErrBlankUsername
	}

	if len(password) < minPasswordLen {
		return database.Account{}, ErrPasswordTooShort
	}

	_, err := s.repo.GetAccountByUsername(username)
	if err == nil {
		return database.Account{}, ErrDuplicateUsername
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return database.Account{}, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return database.Account{}, err
	}

	account, err := s.repo.CreateAccount(database.CreateAccountParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		// the check above races with concurrent inserts; the unique
		// constraint on username is authoritative
		if errors.Is(err, database.ErrDuplicateKey) {
			return database.Account{}, ErrDuplicateUsername
		}
		return database.Account{}, err
	}

	s.log.Debugf("registered account %d (%s)", account.Id, account.Username)

	return account, nil
}

// Login returns the stored account when the supplied credentials match.
// It has no side effects.
func (s *AccountService) Login(username, password string) (database.Account, error) {
	account, err := s.repo.GetAccountByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Account{}, ErrUnknownAccount
		}
		return database.Account{}, err
	}

	if !verifyPassword(account.PasswordHash, password) {
		return database.Account{}, ErrWrongPassword
	}

	return account, nil
}

func hashPassword(passwd string) (string, error) {
	passwdHash, err := bcrypt.GenerateFromPassword([]byte(passwd), bcrypt.DefaultCost)
	return string(passwdHash), err
}

func verifyPassword(passwdHash, passwd string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(passwdHash), []byte(passwd))
	return err == nil
}
