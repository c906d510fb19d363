package service

import (
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"social-media-api/internal/database"
)

const maxMessageLen = 255

// MessageService validates and persists message creation and updates, and
// serves the read and delete paths. It uses the repository's account store
// to verify that the poster exists at creation time.
type MessageService struct {
	log  *zap.SugaredLogger
	repo database.Repository
}

func NewMessageService(logger *zap.SugaredLogger, repo database.Repository) *MessageService {
	return &MessageService{log: logger, repo: repo}
}

// validateText applies the shared text rules: non-blank after trimming,
// at most 255 characters measured against the original text.
func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankMessageText
	}
	if utf8.RuneCountInString(text) > maxMessageLen {
		return ErrMessageTooLong
	}
	return nil
}

// Create validates and persists a new message. Text checks run before the
// poster existence check; nothing is persisted unless all pass. PostedBy and
// TimePostedEpoch are stored exactly as supplied.
func (s *MessageService) Create(params database.CreateMessageParams) (database.Message, error) {
	if err := validateText(params.MessageText); err != nil {
		return database.Message{}, err
	}

	exists, err := s.repo.AccountExists(params.PostedBy)
	if err != nil {
		return database.Message{}, err
	}
	if !exists {
		return database.Message{}, ErrPosterNotFound
	}

	message, err := s.repo.CreateMessage(params)
	if err != nil {
		return database.Message{}, err
	}

	s.log.Debugf("created message %d for account %d", message.Id, message.PostedBy)

	return message, nil
}

// All returns every persisted message in storage order.
func (s *MessageService) All() ([]database.Message, error) {
	return s.repo.GetAllMessages()
}

// ByID returns the message with the given id, or nil when no such message
// exists. Absence is not an error on this path.
func (s *MessageService) ByID(id int) (*database.Message, error) {
	message, err := s.repo.GetMessageById(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &message, nil
}

// ByAccount returns all messages posted by the given account. An unknown
// account or an account without messages yields an empty slice.
func (s *MessageService) ByAccount(accountId int) ([]database.Message, error) {
	return s.repo.GetMessagesByAccount(accountId)
}

// UpdateText replaces the text of an existing message and returns the number
// of rows affected (1 on success). Only the text is mutable; the poster and
// timestamp are never re-validated or changed.
func (s *MessageService) UpdateText(id int, text string) (int64, error) {
	if err := validateText(text); err != nil {
		return 0, err
	}

	rows, err := s.repo.UpdateMessageText(id, text)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrMessageNotFound
	}

	return rows, nil
}

// Delete removes the message with the given id. Deleting a nonexistent id is
// a no-op reported as false, not an error.
func (s *MessageService) Delete(id int) (bool, error) {
	exists, err := s.repo.MessageExists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.DeleteMessage(id); err != nil {
		return false, err
	}

	s.log.Debugf("deleted message %d", id)

	return true, nil
}
