package history

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	StaffID         int64     `json:"staffId"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	EmploymentID    string    `json:"employmentId"`
	EmploymentTitle string    `json:"employmentTitle"`
	SectionID       *int64    `json:"sectionId,omitempty"`
	SectionName     string    `json:"sectionName,omitempty"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ByStaff(ctx context.Context, staffID int64) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT h.staff_id, h.start_date, h.end_date,
           COALESCE(h.employment_id, ''),
           COALESCE(e.employment_title, ''),
           h.section_id,
           COALESCE(se.section_name, '')
    FROM employment_history h
    LEFT JOIN employments e ON h.employment_id = e.employment_id
    LEFT JOIN sections se ON h.section_id = se.section_id
    WHERE h.staff_id = $1
    ORDER BY h.start_date
  `, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.StaffID, &e.StartDate, &e.EndDate, &e.EmploymentID, &e.EmploymentTitle, &e.SectionID, &e.SectionName); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
