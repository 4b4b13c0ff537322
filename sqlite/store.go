// Package sqlite keeps registrations in a local SQLite file for deployments
// without Google Sheets access.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/toms1010/YACC-2025-Sports-Event-Registration/registration"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

//go:embed schema.sql
var schema string

var (
	_ registration.Repository = &Store{}
	_ registration.Lister     = &Store{}
	_ registration.Getter     = &Store{}
)

type Store struct {
	sqlDB *sql.DB
	loc   *time.Location
}

// Open opens the database at path and creates the registrations table.
// Registration times read back are expressed in loc.
func Open(path string, loc *time.Location) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Store{sqlDB: sqlDB, loc: loc}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) AppendRegistration(ctx context.Context, rec registration.Record) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO registrations (
		   registration_id, registered_at, timestamp,
		   full_name, age, gender, contact, email, organization, island,
		   sport_id, sport_name, sport_type, team_members_count,
		   coach_name, coach_position, status, payment_status, notes
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RegistrationID,
		rec.RegisteredAt.UTC().UnixMilli(),
		rec.Timestamp(),
		rec.FullName,
		rec.Age,
		rec.Gender,
		rec.Contact,
		rec.Email,
		rec.Organization,
		rec.Island,
		rec.SportID,
		rec.SportName,
		rec.SportType,
		rec.TeamMembersCount,
		rec.CoachName,
		rec.CoachPosition,
		rec.Status,
		rec.PaymentStatus,
		rec.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return registration.NewAlreadyExistsError(rec.RegistrationID)
		}
		return fmt.Errorf("insert registration %s: %w", rec.RegistrationID, err)
	}
	return nil
}

// ListRegistrations pages by insertion order. The cursor is the last row's
// sequence number.
func (s *Store) ListRegistrations(ctx context.Context, cursor *string, limit int32) (registration.ListResponse, error) {
	limit = registration.ClampListLimit(limit)

	var after int64
	if cursor != nil {
		var err error
		after, err = strconv.ParseInt(*cursor, 10, 64)
		if err != nil || after < 0 {
			return registration.ListResponse{}, registration.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT seq, registration_id, registered_at,
		   full_name, age, gender, contact, email, organization, island,
		   sport_id, sport_name, sport_type, team_members_count,
		   coach_name, coach_position, status, payment_status, notes
		 FROM registrations
		 WHERE seq > ?
		 ORDER BY seq
		 LIMIT ?`,
		after, int64(limit)+1,
	)
	if err != nil {
		return registration.ListResponse{}, registration.NewFailedToFetchError("Failed to query registrations", err)
	}
	defer rows.Close()

	var records []registration.Record
	var seqs []int64
	for rows.Next() {
		var (
			seq          int64
			registeredAt int64
			rec          registration.Record
		)
		err := rows.Scan(&seq, &rec.RegistrationID, &registeredAt,
			&rec.FullName, &rec.Age, &rec.Gender, &rec.Contact, &rec.Email, &rec.Organization, &rec.Island,
			&rec.SportID, &rec.SportName, &rec.SportType, &rec.TeamMembersCount,
			&rec.CoachName, &rec.CoachPosition, &rec.Status, &rec.PaymentStatus, &rec.Notes,
		)
		if err != nil {
			return registration.ListResponse{}, registration.NewFailedToFetchError("Failed to read registration row", err)
		}
		rec.RegisteredAt = time.UnixMilli(registeredAt).In(s.loc)
		records = append(records, rec)
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return registration.ListResponse{}, registration.NewFailedToFetchError("Failed to iterate registrations", err)
	}

	resp := registration.ListResponse{Records: records}
	if len(records) > int(limit) {
		resp.Records = records[:limit]
		resp.HasNextPage = true
		next := strconv.FormatInt(seqs[limit-1], 10)
		resp.Cursor = &next
	}
	return resp, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func (s *Store) GetRegistration(ctx context.Context, registrationID string) (registration.Record, error) {
	var (
		registeredAt int64
		rec          registration.Record
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT registration_id, registered_at,
		   full_name, age, gender, contact, email, organization, island,
		   sport_id, sport_name, sport_type, team_members_count,
		   coach_name, coach_position, status, payment_status, notes
		 FROM registrations
		 WHERE registration_id = ?`,
		registrationID,
	).Scan(&rec.RegistrationID, &registeredAt,
		&rec.FullName, &rec.Age, &rec.Gender, &rec.Contact, &rec.Email, &rec.Organization, &rec.Island,
		&rec.SportID, &rec.SportName, &rec.SportType, &rec.TeamMembersCount,
		&rec.CoachName, &rec.CoachPosition, &rec.Status, &rec.PaymentStatus, &rec.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return registration.Record{}, registration.NewNotFoundError(registrationID)
	}
	if err != nil {
		return registration.Record{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration %q", registrationID), err)
	}

	rec.RegisteredAt = time.UnixMilli(registeredAt).In(s.loc)
	return rec, nil
}
