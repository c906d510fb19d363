package database

import (
	"database/sql"

	"go.uber.org/zap"
)

type PgRepository struct {
	log  *zap.SugaredLogger
	conn *sql.DB
}

func NewPgRepository(logger *zap.SugaredLogger, dsn string) (*PgRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	repo := &PgRepository{log: logger, conn: db}
	if err := repo.Migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (db *PgRepository) Ping() error {
	return db.conn.Ping()
}

func (db *PgRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
