package database

import "errors"

// ErrDuplicateKey is returned when an insert violates a unique constraint,
// e.g. two concurrent registrations racing for the same username. The losing
// insert observes this error instead of a raw driver error.
var ErrDuplicateKey = errors.New("duplicate key")

// Repository is the persistence boundary for accounts and messages. Reads
// that find nothing return sql.ErrNoRows; UpdateMessageText reports affected
// rows so callers can distinguish a no-op from a hit.
type Repository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (Account, error)
	GetAccountById(id int) (Account, error)
	GetAccountByUsername(username string) (Account, error)
	AccountExists(id int) (bool, error)
	CreateMessage(params CreateMessageParams) (Message, error)
	GetAllMessages() ([]Message, error)
	GetMessageById(id int) (Message, error)
	GetMessagesByAccount(accountId int) ([]Message, error)
	UpdateMessageText(id int, text string) (int64, error)
	MessageExists(id int) (bool, error)
	DeleteMessage(id int) error
}
