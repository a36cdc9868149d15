package staff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("staff not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const staffSelect = `
    SELECT st.staff_id, st.first_name, st.last_name, st.email,
           COALESCE(st.phone_number, ''),
           st.hire_date,
           COALESCE(st.employment_id, ''),
           COALESCE(e.employment_title, ''),
           st.salary, st.commission_pct,
           st.manager_id,
           COALESCE(m.first_name || ' ' || m.last_name, ''),
           st.section_id,
           COALESCE(se.section_name, '')
    FROM staff st
    LEFT JOIN employments e ON st.employment_id = e.employment_id
    LEFT JOIN staff m ON st.manager_id = m.staff_id
    LEFT JOIN sections se ON st.section_id = se.section_id`

func scanStaff(row pgx.Row) (Staff, error) {
	var s Staff
	err := row.Scan(
		&s.StaffID, &s.FirstName, &s.LastName, &s.Email, &s.PhoneNumber,
		&s.HireDate, &s.EmploymentID, &s.EmploymentTitle,
		&s.Salary, &s.CommissionPct,
		&s.ManagerID, &s.ManagerName,
		&s.SectionID, &s.SectionName,
	)
	return s, err
}

func collectStaff(rows pgx.Rows) ([]Staff, error) {
	defer rows.Close()
	out := []Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, staffID int64) (*Staff, error) {
	row := s.DB.QueryRow(ctx, staffSelect+" WHERE st.staff_id = $1", staffID)
	st, err := scanStaff(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Store) ListAll(ctx context.Context, orderBySalary bool) ([]Staff, error) {
	query := staffSelect + orderClause(orderBySalary)
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectStaff(rows)
}

func (s *Store) ListBySection(ctx context.Context, sectionID int64, orderBySalary bool) ([]Staff, error) {
	query := staffSelect + " WHERE st.section_id = $1" + orderClause(orderBySalary)
	rows, err := s.DB.Query(ctx, query, sectionID)
	if err != nil {
		return nil, err
	}
	return collectStaff(rows)
}

// SearchByName matches first or last name, case-insensitive. A nil sectionID
// searches the whole company (HR scope); otherwise the section only.
func (s *Store) SearchByName(ctx context.Context, name string, sectionID *int64) ([]Staff, error) {
	pattern := "%" + name + "%"
	if sectionID != nil {
		rows, err := s.DB.Query(ctx,
			staffSelect+" WHERE st.section_id = $1 AND (st.first_name ILIKE $2 OR st.last_name ILIKE $2) ORDER BY st.staff_id",
			*sectionID, pattern)
		if err != nil {
			return nil, err
		}
		return collectStaff(rows)
	}
	rows, err := s.DB.Query(ctx,
		staffSelect+" WHERE st.first_name ILIKE $1 OR st.last_name ILIKE $1 ORDER BY st.staff_id",
		pattern)
	if err != nil {
		return nil, err
	}
	return collectStaff(rows)
}

func (s *Store) UpdatePhone(ctx context.Context, staffID int64, phone string) (bool, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE staff SET phone_number = $1 WHERE staff_id = $2", phone, staffID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) SalaryStatsBySection(ctx context.Context, sectionID int64) (*SalaryStats, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT se.section_id, se.section_name,
           COALESCE(MAX(st.salary), 0), COALESCE(MIN(st.salary), 0), COALESCE(AVG(st.salary), 0)
    FROM sections se
    LEFT JOIN staff st ON st.section_id = se.section_id
    WHERE se.section_id = $1
    GROUP BY se.section_id, se.section_name
  `, sectionID)
	var stats SalaryStats
	err := row.Scan(&stats.SectionID, &stats.SectionName, &stats.MaxSalary, &stats.MinSalary, &stats.AvgSalary)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Store) SalaryStatsAllSections(ctx context.Context) ([]SalaryStats, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT se.section_id, se.section_name,
           COALESCE(MAX(st.salary), 0), COALESCE(MIN(st.salary), 0), COALESCE(AVG(st.salary), 0)
    FROM sections se
    LEFT JOIN staff st ON st.section_id = se.section_id
    GROUP BY se.section_id, se.section_name
    ORDER BY se.section_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []SalaryStats{}
	for rows.Next() {
		var stats SalaryStats
		if err := rows.Scan(&stats.SectionID, &stats.SectionName, &stats.MaxSalary, &stats.MinSalary, &stats.AvgSalary); err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, rows.Err()
}

func orderClause(orderBySalary bool) string {
	if orderBySalary {
		return " ORDER BY st.salary DESC NULLS LAST"
	}
	return " ORDER BY st.staff_id"
}
