package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/parishtools/attendance-register/internal/ledger"
	"github.com/parishtools/attendance-register/internal/model"
)

// MySQLStore persists the ledgers in MySQL.  Each Save rewrites the whole
// table inside a single transaction (delete all + bulk insert), so from
// the caller's point of view a save is atomic: either the full ledger is
// written or the previous contents remain.  The pos column preserves the
// append order of the ledger across round trips.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore returns a store bound to the given database handle.
func NewMySQLStore(db *sql.DB) *MySQLStore { return &MySQLStore{db: db} }

// EnsureSchema creates the ledger tables when they do not exist yet.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attendance (
			id           CHAR(36)     NOT NULL PRIMARY KEY,
			pos          INT          NOT NULL,
			recorded_at  VARCHAR(19)  NOT NULL,
			service_date VARCHAR(32)  NOT NULL,
			service_name VARCHAR(255) NOT NULL,
			attendee     VARCHAR(255) NOT NULL,
			household    INT          NOT NULL DEFAULT 1,
			notes        TEXT,
			KEY idx_attendance_service (service_date, service_name(64))
		) CHARACTER SET utf8mb4`,
		`CREATE TABLE IF NOT EXISTS members (
			id         CHAR(36)     NOT NULL PRIMARY KEY,
			pos        INT          NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name  VARCHAR(255) NOT NULL,
			attendee   VARCHAR(255) NOT NULL,
			notes      TEXT,
			active     TINYINT(1)   NOT NULL DEFAULT 1
		) CHARACTER SET utf8mb4`,
		`CREATE TABLE IF NOT EXISTS absences (
			id           CHAR(36)     NOT NULL PRIMARY KEY,
			pos          INT          NOT NULL,
			recorded_at  VARCHAR(19)  NOT NULL,
			service_date VARCHAR(32)  NOT NULL,
			service_name VARCHAR(255) NOT NULL,
			attendee     VARCHAR(255) NOT NULL,
			note         TEXT
		) CHARACTER SET utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) LoadAttendance(ctx context.Context) ([]model.AttendanceRecord, error) {
	const q = `SELECT id, recorded_at, service_date, service_name, attendee, household, notes
	           FROM attendance ORDER BY pos ASC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.AttendanceRecord, 0)
	for rows.Next() {
		var r model.AttendanceRecord
		var notes sql.NullString
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.ServiceDate, &r.ServiceName, &r.Attendee, &r.Household, &notes); err != nil {
			return nil, err
		}
		if notes.Valid {
			r.Notes = notes.String
		}
		out = append(out, ledger.NormalizeAttendance(r))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MySQLStore) SaveAttendance(ctx context.Context, recs []model.AttendanceRecord) error {
	recs = ledger.NormalizeAttendanceAll(recs)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM attendance`); err != nil {
		return err
	}
	if len(recs) > 0 {
		query := `INSERT INTO attendance (id, pos, recorded_at, service_date, service_name, attendee, household, notes) VALUES `
		placeholders := make([]string, 0, len(recs))
		args := make([]interface{}, 0, len(recs)*8)
		for i, r := range recs {
			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args, r.ID, i, r.Timestamp, r.ServiceDate, r.ServiceName, r.Attendee, r.Household, r.Notes)
		}
		if _, err := tx.ExecContext(ctx, query+strings.Join(placeholders, ","), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *MySQLStore) LoadMembers(ctx context.Context) ([]model.Member, error) {
	const q = `SELECT id, first_name, last_name, attendee, notes, active
	           FROM members ORDER BY pos ASC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Member, 0)
	for rows.Next() {
		var m model.Member
		var notes sql.NullString
		var active int
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Attendee, &notes, &active); err != nil {
			return nil, err
		}
		if notes.Valid {
			m.Notes = notes.String
		}
		m.Active = active != 0
		out = append(out, ledger.NormalizeMember(m))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MySQLStore) SaveMembers(ctx context.Context, recs []model.Member) error {
	recs = ledger.NormalizeMemberAll(recs)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM members`); err != nil {
		return err
	}
	if len(recs) > 0 {
		query := `INSERT INTO members (id, pos, first_name, last_name, attendee, notes, active) VALUES `
		placeholders := make([]string, 0, len(recs))
		args := make([]interface{}, 0, len(recs)*7)
		for i, m := range recs {
			active := 0
			if m.Active {
				active = 1
			}
			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?)")
			args = append(args, m.ID, i, m.FirstName, m.LastName, m.Attendee, m.Notes, active)
		}
		if _, err := tx.ExecContext(ctx, query+strings.Join(placeholders, ","), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *MySQLStore) LoadAbsences(ctx context.Context) ([]model.AbsenceNote, error) {
	const q = `SELECT id, recorded_at, service_date, service_name, attendee, note
	           FROM absences ORDER BY pos ASC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.AbsenceNote, 0)
	for rows.Next() {
		var a model.AbsenceNote
		var note sql.NullString
		if err := rows.Scan(&a.ID, &a.Timestamp, &a.ServiceDate, &a.ServiceName, &a.Attendee, &note); err != nil {
			return nil, err
		}
		if note.Valid {
			a.Note = note.String
		}
		out = append(out, ledger.NormalizeAbsence(a))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MySQLStore) SaveAbsences(ctx context.Context, recs []model.AbsenceNote) error {
	recs = ledger.NormalizeAbsenceAll(recs)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM absences`); err != nil {
		return err
	}
	if len(recs) > 0 {
		query := `INSERT INTO absences (id, pos, recorded_at, service_date, service_name, attendee, note) VALUES `
		placeholders := make([]string, 0, len(recs))
		args := make([]interface{}, 0, len(recs)*7)
		for i, a := range recs {
			placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?)")
			args = append(args, a.ID, i, a.Timestamp, a.ServiceDate, a.ServiceName, a.Attendee, a.Note)
		}
		if _, err := tx.ExecContext(ctx, query+strings.Join(placeholders, ","), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}
