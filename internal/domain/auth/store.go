package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Credentials is the slice of a staff row the login flow needs.
type Credentials struct {
	StaffID        int64
	FirstName      string
	LastName       string
	PasswordHash   string
	SectionID      *int64
	IsHR           bool
	ManagesSection bool
}

func (s *Store) FindCredentials(ctx context.Context, staffID int64) (Credentials, error) {
	var out Credentials
	err := s.DB.QueryRow(ctx, `
    SELECT st.staff_id, st.first_name, st.last_name, st.password_hash, st.section_id, st.is_hr,
           EXISTS (SELECT 1 FROM sections se WHERE se.manager_id = st.staff_id)
    FROM staff st
    WHERE st.staff_id = $1
  `, staffID).Scan(&out.StaffID, &out.FirstName, &out.LastName, &out.PasswordHash, &out.SectionID, &out.IsHR, &out.ManagesSection)
	return out, err
}

func (s *Store) CreateSession(ctx context.Context, staffID int64, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO sessions (staff_id, token_hash, expires_at)
    VALUES ($1,$2,$3)
  `, staffID, tokenHash, expires)
	return err
}

func (s *Store) RevokeSession(ctx context.Context, staffID int64, tokenHash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE sessions SET revoked_at = now() WHERE staff_id = $1 AND token_hash = $2", staffID, tokenHash)
	return err
}

func (s *Store) SessionValid(ctx context.Context, staffID int64, tokenHash string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM sessions
    WHERE staff_id = $1 AND token_hash = $2 AND expires_at > now() AND revoked_at IS NULL
  `, staffID, tokenHash).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
