package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/session"
)

const (
	keyToken    = "token"
	keyUserType = "userType"
)

// SQLite persists the session as rows of a local key/value table, so that
// every client process on the machine sees the same login.
type SQLite struct {
	db     *sql.DB
	logger *log.Logger

	pollEvery time.Duration
}

// OpenSQLite opens (creating if needed) the session database at path.
func OpenSQLite(ctx context.Context, path string, logger *log.Logger) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// data_version is tracked per connection; keep exactly one.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLite{db: db, logger: logger, pollEvery: time.Second}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`)
	return err
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Load(ctx context.Context) (session.Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM kv WHERE key IN (?, ?)`, keyToken, keyUserType)
	if err != nil {
		return session.Session{}, err
	}
	defer rows.Close()

	var out session.Session
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return session.Session{}, err
		}
		switch k {
		case keyToken:
			out.Token = v
		case keyUserType:
			out.UserType = user.Type(v)
		}
	}
	if err := rows.Err(); err != nil {
		return session.Session{}, err
	}
	if out.Token == "" {
		return session.Session{}, nil
	}
	return out, nil
}

func (s *SQLite) Save(ctx context.Context, sess session.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, kv := range [][2]string{{keyToken, sess.Token}, {keyUserType, string(sess.UserType)}} {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			kv[0], kv[1],
		)
		if err != nil {
			return err
		}
	}

	committed = true
	return tx.Commit()
}

func (s *SQLite) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key IN (?, ?)`, keyToken, keyUserType)
	return err
}

// Changes polls PRAGMA data_version, which moves only when another
// connection commits to the database file.
func (s *SQLite) Changes(ctx context.Context) (<-chan struct{}, error) {
	last, err := s.dataVersion(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		t := time.NewTicker(s.pollEvery)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				v, err := s.dataVersion(ctx)
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return
					}
					if s.logger != nil {
						s.logger.Printf("[SessionStore] sqlite data_version error: %v", err)
					}
					continue
				}
				if v == last {
					continue
				}
				last = v
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}

func (s *SQLite) dataVersion(ctx context.Context) (int64, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, "PRAGMA data_version;").Scan(&v)
	return v, err
}

var (
	_ session.Persister = (*SQLite)(nil)
	_ session.Notifier  = (*SQLite)(nil)
)
