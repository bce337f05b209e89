package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteStore keeps backend state in a SQLite database. An empty path opens
// a private in-memory database that lives as long as the store.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	dsn := strings.TrimSpace(path)
	if dsn == "" {
		dsn = ":memory:"
	} else if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// an in-memory database exists per connection; keep exactly one.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT NOT NULL UNIQUE COLLATE NOCASE,
	name TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL DEFAULT '',
	skills TEXT,
	experience TEXT NOT NULL DEFAULT '',
	education TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	linkedin TEXT NOT NULL DEFAULT '',
	portfolio TEXT NOT NULL DEFAULT '',
	resume_url TEXT,
	profile_picture_url TEXT,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS companies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL UNIQUE,
	company_name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	logo_url TEXT,
	linkedin TEXT NOT NULL DEFAULT '',
	portfolio TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id INTEGER NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	requirements TEXT NOT NULL DEFAULT 'null',
	benefits TEXT NOT NULL DEFAULT 'null',
	location TEXT NOT NULL DEFAULT '',
	is_remote INTEGER NOT NULL DEFAULT 0,
	salary_min INTEGER,
	salary_max INTEGER,
	salary_type TEXT NOT NULL DEFAULT '',
	employment_type TEXT NOT NULL DEFAULT '',
	experience_level TEXT NOT NULL DEFAULT '',
	application_deadline TEXT,
	posted_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs (company_id);

CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id INTEGER NOT NULL,
	applicant_id INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT '',
	applied_at INTEGER NOT NULL,
	UNIQUE (job_id, applicant_id)
);

CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	application_id INTEGER NOT NULL,
	sender_id INTEGER NOT NULL,
	text TEXT NOT NULL,
	sent_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_application ON messages (application_id, id);

CREATE TABLE IF NOT EXISTS read_markers (
	application_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	last_read_id INTEGER NOT NULL,
	PRIMARY KEY (application_id, user_id)
);
`)
	return err
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) stamp() time.Time {
	// round-trips through unix nanos, so drop the monotonic reading
	return s.now().UTC().Round(0)
}

type row interface {
	Scan(dest ...any) error
}

func isUnique(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const userColumns = `id, email, name, password_hash, skills, experience, education, location,
	phone, linkedin, portfolio, resume_url, profile_picture_url, created_at`

func scanUser(r row) (UserRecord, error) {
	var u UserRecord
	var skills []byte
	var created int64
	err := r.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &skills, &u.Experience, &u.Education,
		&u.Location, &u.Phone, &u.LinkedIn, &u.Portfolio, &u.ResumeURL, &u.ProfilePictureURL, &created)
	if err != nil {
		return UserRecord{}, notFound(err)
	}
	if skills != nil {
		u.Skills = json.RawMessage(skills)
	}
	u.CreatedAt = time.Unix(0, created).UTC()
	return u, nil
}

func nullableBytes(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}

func (s *SQLiteStore) CreateUser(ctx context.Context, u UserRecord) (UserRecord, error) {
	u.CreatedAt = s.stamp()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, name, password_hash, skills, experience, education, location,
			phone, linkedin, portfolio, resume_url, profile_picture_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Email, u.Name, u.PasswordHash, nullableBytes(u.Skills), u.Experience, u.Education, u.Location,
		u.Phone, u.LinkedIn, u.Portfolio, u.ResumeURL, u.ProfilePictureURL, u.CreatedAt.UnixNano(),
	)
	if err != nil {
		if isUnique(err) {
			return UserRecord{}, ErrDuplicate
		}
		return UserRecord{}, err
	}
	if u.ID, err = res.LastInsertId(); err != nil {
		return UserRecord{}, err
	}
	return u, nil
}

func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (UserRecord, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (UserRecord, error) {
	return scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (s *SQLiteStore) UpdateUser(ctx context.Context, u UserRecord) error {
	err := affectedOne(s.db.ExecContext(ctx, `
		UPDATE users SET email = ?, name = ?, password_hash = ?, skills = ?, experience = ?, education = ?,
			location = ?, phone = ?, linkedin = ?, portfolio = ?, resume_url = ?, profile_picture_url = ?
		WHERE id = ?`,
		u.Email, u.Name, u.PasswordHash, nullableBytes(u.Skills), u.Experience, u.Education,
		u.Location, u.Phone, u.LinkedIn, u.Portfolio, u.ResumeURL, u.ProfilePictureURL, u.ID,
	))
	if isUnique(err) {
		return ErrDuplicate
	}
	return err
}

const companyColumns = `id, owner_id, company_name, email, industry, location, description, logo_url, linkedin, portfolio`

func scanCompany(r row) (CompanyRecord, error) {
	var c CompanyRecord
	err := r.Scan(&c.ID, &c.OwnerID, &c.CompanyName, &c.Email, &c.Industry, &c.Location,
		&c.Description, &c.LogoURL, &c.LinkedIn, &c.Portfolio)
	if err != nil {
		return CompanyRecord{}, notFound(err)
	}
	return c, nil
}

func (s *SQLiteStore) CreateCompany(ctx context.Context, c CompanyRecord) (CompanyRecord, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO companies (owner_id, company_name, email, industry, location, description, logo_url, linkedin, portfolio)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.OwnerID, c.CompanyName, c.Email, c.Industry, c.Location, c.Description, c.LogoURL, c.LinkedIn, c.Portfolio,
	)
	if err != nil {
		if isUnique(err) {
			return CompanyRecord{}, ErrDuplicate
		}
		return CompanyRecord{}, err
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return CompanyRecord{}, err
	}
	return c, nil
}

func (s *SQLiteStore) UpdateCompany(ctx context.Context, c CompanyRecord) error {
	return affectedOne(s.db.ExecContext(ctx, `
		UPDATE companies SET owner_id = ?, company_name = ?, email = ?, industry = ?, location = ?,
			description = ?, logo_url = ?, linkedin = ?, portfolio = ?
		WHERE id = ?`,
		c.OwnerID, c.CompanyName, c.Email, c.Industry, c.Location, c.Description, c.LogoURL, c.LinkedIn, c.Portfolio, c.ID,
	))
}

func (s *SQLiteStore) GetCompanyByOwner(ctx context.Context, ownerID int64) (CompanyRecord, error) {
	return scanCompany(s.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE owner_id = ?`, ownerID))
}

func (s *SQLiteStore) GetCompanyByID(ctx context.Context, id int64) (CompanyRecord, error) {
	return scanCompany(s.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
}

const jobColumns = `id, company_id, title, description, requirements, benefits, location, is_remote,
	salary_min, salary_max, salary_type, employment_type, experience_level, application_deadline, posted_at`

func scanJob(r row) (JobRecord, error) {
	var j JobRecord
	var reqs, benefits string
	var posted int64
	err := r.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &reqs, &benefits, &j.Location, &j.IsRemote,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryType, &j.EmploymentType, &j.ExperienceLevel, &j.ApplicationDeadline, &posted)
	if err != nil {
		return JobRecord{}, notFound(err)
	}
	if err := json.Unmarshal([]byte(reqs), &j.Requirements); err != nil {
		return JobRecord{}, err
	}
	if err := json.Unmarshal([]byte(benefits), &j.Benefits); err != nil {
		return JobRecord{}, err
	}
	j.PostedAt = time.Unix(0, posted).UTC()
	return j, nil
}

func (s *SQLiteStore) CreateJob(ctx context.Context, j JobRecord) (JobRecord, error) {
	reqs, err := json.Marshal(j.Requirements)
	if err != nil {
		return JobRecord{}, err
	}
	benefits, err := json.Marshal(j.Benefits)
	if err != nil {
		return JobRecord{}, err
	}
	j.PostedAt = s.stamp()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (company_id, title, description, requirements, benefits, location, is_remote,
			salary_min, salary_max, salary_type, employment_type, experience_level, application_deadline, posted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.CompanyID, j.Title, j.Description, string(reqs), string(benefits), j.Location, j.IsRemote,
		j.SalaryMin, j.SalaryMax, j.SalaryType, j.EmploymentType, j.ExperienceLevel, j.ApplicationDeadline,
		j.PostedAt.UnixNano(),
	)
	if err != nil {
		return JobRecord{}, err
	}
	if j.ID, err = res.LastInsertId(); err != nil {
		return JobRecord{}, err
	}
	return j, nil
}

func (s *SQLiteStore) GetJob(ctx context.Context, id int64) (JobRecord, error) {
	return scanJob(s.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id))
}

// ListJobs returns jobs newest first, optionally only those of one company.
func (s *SQLiteStore) ListJobs(ctx context.Context, companyID *int64) ([]JobRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+` FROM jobs
		WHERE ? IS NULL OR company_id = ?
		ORDER BY id DESC`, companyID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JobRecord{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.status, a.applied_at`

func scanApplication(r row) (ApplicationRecord, error) {
	var a ApplicationRecord
	var applied int64
	if err := r.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &applied); err != nil {
		return ApplicationRecord{}, notFound(err)
	}
	a.AppliedAt = time.Unix(0, applied).UTC()
	return a, nil
}

func (s *SQLiteStore) CreateApplication(ctx context.Context, a ApplicationRecord) (ApplicationRecord, error) {
	a.AppliedAt = s.stamp()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO applications (job_id, applicant_id, status, applied_at) VALUES (?, ?, ?, ?)`,
		a.JobID, a.ApplicantID, a.Status, a.AppliedAt.UnixNano(),
	)
	if err != nil {
		if isUnique(err) {
			return ApplicationRecord{}, ErrDuplicate
		}
		return ApplicationRecord{}, err
	}
	if a.ID, err = res.LastInsertId(); err != nil {
		return ApplicationRecord{}, err
	}
	return a, nil
}

func (s *SQLiteStore) GetApplication(ctx context.Context, id int64) (ApplicationRecord, error) {
	return scanApplication(s.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = ?`, id))
}

func (s *SQLiteStore) ListApplicationsByApplicant(ctx context.Context, applicantID int64) ([]ApplicationRecord, error) {
	return s.listApplications(ctx, `
		SELECT `+applicationColumns+` FROM applications a
		WHERE a.applicant_id = ?
		ORDER BY a.id DESC`, applicantID)
}

func (s *SQLiteStore) ListApplicationsByCompany(ctx context.Context, companyID int64) ([]ApplicationRecord, error) {
	return s.listApplications(ctx, `
		SELECT `+applicationColumns+` FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = ?
		ORDER BY a.id DESC`, companyID)
}

func (s *SQLiteStore) listApplications(ctx context.Context, query string, args ...any) ([]ApplicationRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ApplicationRecord{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateApplicationStatus(ctx context.Context, id int64, status string) (ApplicationRecord, error) {
	if err := affectedOne(s.db.ExecContext(ctx, `UPDATE applications SET status = ? WHERE id = ?`, status, id)); err != nil {
		return ApplicationRecord{}, err
	}
	return s.GetApplication(ctx, id)
}

func (s *SQLiteStore) CreateMessage(ctx context.Context, m MessageRecord) (MessageRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MessageRecord{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var exists int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM applications WHERE id = ?`, m.ApplicationID).Scan(&exists); err != nil {
		return MessageRecord{}, notFound(err)
	}

	m.Timestamp = s.stamp()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO messages (application_id, sender_id, text, sent_at) VALUES (?, ?, ?, ?)`,
		m.ApplicationID, m.SenderID, m.Text, m.Timestamp.UnixNano(),
	)
	if err != nil {
		return MessageRecord{}, err
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return MessageRecord{}, err
	}

	// the sender has read everything up to their own message
	if err := markRead(ctx, tx, m.ApplicationID, m.SenderID); err != nil {
		return MessageRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return MessageRecord{}, err
	}
	committed = true
	return m, nil
}

// ListMessages returns the thread oldest first.
func (s *SQLiteStore) ListMessages(ctx context.Context, applicationID int64) ([]MessageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, application_id, sender_id, text, sent_at FROM messages
		WHERE application_id = ?
		ORDER BY id ASC`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MessageRecord{}
	for rows.Next() {
		var m MessageRecord
		var sent int64
		if err := rows.Scan(&m.ID, &m.ApplicationID, &m.SenderID, &m.Text, &sent); err != nil {
			return nil, err
		}
		m.Timestamp = time.Unix(0, sent).UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) MarkRead(ctx context.Context, applicationID, userID int64) error {
	return markRead(ctx, s.db, applicationID, userID)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// markRead moves the user's marker to the newest message of the thread.
// An empty thread leaves the marker alone.
func markRead(ctx context.Context, db execer, applicationID, userID int64) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO read_markers (application_id, user_id, last_read_id)
		SELECT ?, ?, last FROM (SELECT MAX(id) AS last FROM messages WHERE application_id = ?)
		WHERE last IS NOT NULL
		ON CONFLICT (application_id, user_id) DO UPDATE SET last_read_id = excluded.last_read_id`,
		applicationID, userID, applicationID,
	)
	return err
}

// UnreadCount counts messages from the other party newer than the user's
// read marker.
func (s *SQLiteStore) UnreadCount(ctx context.Context, applicationID, userID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM messages m
		WHERE m.application_id = ? AND m.sender_id != ?
		AND m.id > COALESCE(
			(SELECT last_read_id FROM read_markers WHERE application_id = ? AND user_id = ?), 0)`,
		applicationID, userID, applicationID, userID,
	).Scan(&n)
	return n, err
}

var _ Store = (*SQLiteStore)(nil)
