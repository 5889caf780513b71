package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ormcheatsheet/pkg/logger"
)

// Session pins one pooled connection for the duration of a call.
// Every statement issued through DB runs on that connection.
type Session struct {
	ID string
	DB *gorm.DB

	conn        *sql.Conn
	releaseOnce sync.Once
}

// Acquire takes a connection from the pool. The caller must Release it.
func (s *Store) Acquire(ctx context.Context) (*Session, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}

	sqlDB, err := s.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	tx := s.DB.WithContext(ctx)
	tx.Statement.ConnPool = conn

	session := &Session{
		ID:   uuid.NewString(),
		DB:   tx,
		conn: conn,
	}
	logger.Debugf("Acquired session %s on store %s", session.ID, s.ID)
	return session, nil
}

// Release returns the connection to the pool. Safe to call more than once.
func (ss *Session) Release() error {
	var err error
	ss.releaseOnce.Do(func() {
		if cerr := ss.conn.Close(); cerr != nil && cerr != sql.ErrConnDone {
			err = fmt.Errorf("failed to release session %s: %w", ss.ID, cerr)
		}
		logger.Debugf("Released session %s", ss.ID)
	})
	return err
}

// WithSession acquires a session, runs fn and releases the session.
func (s *Store) WithSession(ctx context.Context, fn func(*Session) error) error {
	session, err := s.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := session.Release(); rerr != nil {
			logger.Warnf("%v", rerr)
		}
	}()
	return fn(session)
}
