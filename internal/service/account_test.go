package service

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"social-media-api/internal/database"
	"social-media-api/internal/testutil"
)

func TestRegister(t *testing.T) {
	storedAccount := database.Account{
		Id:           1,
		Username:     "ann",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}

	tcases := []struct {
		name        string
		username    string
		password    string
		setupMock   func(m *database.MockRepository)
		expectedErr error
	}{
		{
			name:     "successfully registers an account",
			username: "ann",
			password: "secret",
			setupMock: func(m *database.MockRepository) {
				m.On("GetAccountByUsername", "ann").Return(database.Account{}, sql.ErrNoRows).Once()
				m.On("CreateAccount", mock.MatchedBy(func(params database.CreateAccountParams) bool {
					return params.Username == "ann" && verifyPassword(params.PasswordHash, "secret")
				})).Return(storedAccount, nil).Once()
			},
			expectedErr: nil,
		},
		{
			name:        "fails with empty username",
			username:    "",
			password:    "secret",
			expectedErr: ErrBlankUsername,
		},
		{
			name:        "fails with whitespace-only username",
			username:    "   ",
			password:    "secret",
			expectedErr: ErrBlankUsername,
		},
		{
			name:        "fails with password shorter than 4 characters",
			username:    "ann",
			password:    "abc",
			expectedErr: ErrPasswordTooShort,
		},
		{
			name:     "fails when username is already taken",
			username: "ann",
			password: "secret",
			setupMock: func(m *database.MockRepository) {
				m.On("GetAccountByUsername", "ann").Return(storedAccount, nil).Once()
			},
			expectedErr: ErrDuplicateUsername,
		},
		{
			name:     "fails when a concurrent insert wins the username",
			username: "ann",
			password: "secret",
			setupMock: func(m *database.MockRepository) {
				m.On("GetAccountByUsername", "ann").Return(database.Account{}, sql.ErrNoRows).Once()
				m.On("CreateAccount", mock.Anything).Return(database.Account{}, database.ErrDuplicateKey).Once()
			},
			expectedErr: ErrDuplicateUsername,
		},
		{
			name:     "fails with repository error on lookup",
			username: "ann",
			password: "secret",
			setupMock: func(m *database.MockRepository) {
				m.On("GetAccountByUsername", "ann").Return(database.Account{}, errors.New("db error")).Once()
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockRepository{}
			defer mockRepo.AssertExpectations(t)

			if tc.setupMock != nil {
				tc.setupMock(mockRepo)
			}

			svc := NewAccountService(testutil.TestLogger(t), mockRepo)
			account, err := svc.Register(tc.username, tc.password)

			if tc.expectedErr != nil {
				assert.EqualError(t, err, tc.expectedErr.Error())
				if tc.setupMock == nil {
					// field validation failures must short-circuit before persistence
					mockRepo.AssertNotCalled(t, "GetAccountByUsername", mock.Anything)
					mockRepo.AssertNotCalled(t, "CreateAccount", mock.Anything)
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, storedAccount, account)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := hashPassword("secret")
	assert.NoError(t, err)

	storedAccount := database.Account{
		Id:           1,
		Username:     "ann",
		PasswordHash: hash,
	}

	tcases := []struct {
		name        string
		username    string
		password    string
		mockAccount database.Account
		mockErr     error
		expectedErr error
	}{
		{
			name:        "successfully authenticates with correct credentials",
			username:    "ann",
			password:    "secret",
			mockAccount: storedAccount,
		},
		{
			name:        "fails with unknown username",
			username:    "bob",
			password:    "secret",
			mockErr:     sql.ErrNoRows,
			expectedErr: ErrUnknownAccount,
		},
		{
			name:        "fails with incorrect password",
			username:    "ann",
			password:    "wrongpass",
			mockAccount: storedAccount,
			expectedErr: ErrWrongPassword,
		},
		{
			name:        "fails with repository error",
			username:    "ann",
			password:    "secret",
			mockErr:     errors.New("db error"),
			expectedErr: errors.New("db error"),
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("GetAccountByUsername", tc.username).Return(tc.mockAccount, tc.mockErr).Once()

			svc := NewAccountService(testutil.TestLogger(t), mockRepo)
			account, err := svc.Login(tc.username, tc.password)

			if tc.expectedErr != nil {
				assert.EqualError(t, err, tc.expectedErr.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, storedAccount, account)
		})
	}
}
