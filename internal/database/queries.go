package database

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

func (db *PgRepository) CreateAccount(params CreateAccountParams) (Account, error) {
	res := db.conn.QueryRow(
		"INSERT INTO accounts (username, password_hash, created_at) "+
			"VALUES ($1, $2, $3) RETURNING id, username, password_hash, created_at",
		params.Username,
		params.PasswordHash,
		time.Now().UTC(),
	)

	var a Account
	err := res.Scan(
		&a.Id,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return Account{}, ErrDuplicateKey
		}
		return Account{}, err
	}

	db.log.Debugf("created account %d (%s)", a.Id, a.Username)

	return a, nil
}

func (db *PgRepository) GetAccountById(id int) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password_hash, created_at FROM accounts "+
			"WHERE id = $1 LIMIT 1",
		id,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	)

	return a, err
}

func (db *PgRepository) GetAccountByUsername(username string) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, password_hash, created_at FROM accounts "+
			"WHERE username = $1 LIMIT 1",
		username,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	)

	return a, err
}

func (db *PgRepository) AccountExists(id int) (bool, error) {
	row := db.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)",
		id,
	)

	var exists bool
	err := row.Scan(&exists)

	return exists, err
}

func (db *PgRepository) CreateMessage(params CreateMessageParams) (Message, error) {
	res := db.conn.QueryRow(
		"INSERT INTO messages (posted_by, message_text, time_posted_epoch) "+
			"VALUES ($1, $2, $3) RETURNING id, posted_by, message_text, time_posted_epoch",
		params.PostedBy,
		params.MessageText,
		params.TimePostedEpoch,
	)

	var m Message
	err := res.Scan(
		&m.Id,
		&m.PostedBy,
		&m.MessageText,
		&m.TimePostedEpoch,
	)

	return m, err
}

func (db *PgRepository) GetAllMessages() ([]Message, error) {
	rows, err := db.conn.Query(
		"SELECT id, posted_by, message_text, time_posted_epoch FROM messages ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages = make([]Message, 0)
	for rows.Next() {
		var m Message
		if err = rows.Scan(&m.Id, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			break
		}

		messages = append(messages, m)
	}

	return messages, err
}

func (db *PgRepository) GetMessageById(id int) (Message, error) {
	row := db.conn.QueryRow(
		"SELECT id, posted_by, message_text, time_posted_epoch FROM messages "+
			"WHERE id = $1 LIMIT 1",
		id,
	)

	var m Message
	err := row.Scan(
		&m.Id,
		&m.PostedBy,
		&m.MessageText,
		&m.TimePostedEpoch,
	)

	return m, err
}

func (db *PgRepository) GetMessagesByAccount(accountId int) ([]Message, error) {
	rows, err := db.conn.Query(
		"SELECT id, posted_by, message_text, time_posted_epoch FROM messages "+
			"WHERE posted_by = $1 ORDER BY id",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages = make([]Message, 0)
	for rows.Next() {
		var m Message
		if err = rows.Scan(&m.Id, &m.PostedBy, &m.MessageText, &m.TimePostedEpoch); err != nil {
			break
		}

		messages = append(messages, m)
	}

	return messages, err
}

func (db *PgRepository) UpdateMessageText(id int, text string) (int64, error) {
	res, err := db.conn.Exec(
		"UPDATE messages SET message_text = $2 WHERE id = $1",
		id,
		text,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgRepository) MessageExists(id int) (bool, error) {
	row := db.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM messages WHERE id = $1)",
		id,
	)

	var exists bool
	err := row.Scan(&exists)

	return exists, err
}

func (db *PgRepository) DeleteMessage(id int) error {
	_, err := db.conn.Exec("DELETE FROM messages WHERE id = $1", id)

	return err
}
