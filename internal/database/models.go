package database

import "time"

type Account struct {
	Id           int
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Message struct {
	Id              int
	PostedBy        int
	MessageText     string
	TimePostedEpoch int64
}

type CreateAccountParams struct {
	Username     string
	PasswordHash string
}

type CreateMessageParams struct {
	PostedBy        int
	MessageText     string
	TimePostedEpoch int64
}
