package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"hradmin/internal/domain/auth"
	"hradmin/internal/platform/config"
)

// Seed provisions development fixtures plus the HR manager account. It is a
// no-op when staff rows already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM staff").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hrPassword := cfg.SeedHRPassword
	if hrPassword == "" {
		hrPassword = "hrpassword"
		slog.Warn("SEED_HR_PASSWORD not set, using development default")
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO states (state_id, state_name) VALUES
      ('CA', 'California'), ('NY', 'New York'), ('TX', 'Texas')
    ON CONFLICT (state_id) DO NOTHING
  `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO employments (employment_id, employment_title, min_salary, max_salary) VALUES
      ('IT_PROG', 'Programmer', 4000, 10000),
      ('SA_MAN', 'Sales Manager', 10000, 20000),
      ('SA_REP', 'Sales Representative', 6000, 12000),
      ('HR_REP', 'Human Resources Representative', 4000, 9000)
    ON CONFLICT (employment_id) DO NOTHING
  `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO places (street_address, postal_code, city, state_province, state_id) VALUES
      ('2014 Jabberwocky Rd', '26192', 'Southlake', 'Texas', 'TX'),
      ('2011 Interiors Blvd', '99236', 'San Francisco', 'California', 'CA'),
      ('459 Fifth Avenue', '10018', 'New York', 'New York', 'NY')
  `); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO sections (section_name, place_id) VALUES
      ('Engineering', 1), ('Sales', 2), ('Human Resources', 3)
  `); err != nil {
		return err
	}

	devHash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}
	hrHash, err := auth.HashPassword(hrPassword)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO staff (first_name, last_name, email, phone_number, employment_id, salary, section_id, password_hash, is_hr) VALUES
      ('Alex', 'Hunold', 'alex.hunold@example.com', '590-423-4567', 'IT_PROG', 9000, 1, $1, false),
      ('Bruce', 'Ernst', 'bruce.ernst@example.com', '590-423-4568', 'IT_PROG', 6000, 1, $1, false),
      ('John', 'Russell', 'john.russell@example.com', '011-44-1344-429268', 'SA_MAN', 14000, 2, $1, false),
      ('Karen', 'Partners', 'karen.partners@example.com', '011-44-1344-467268', 'SA_REP', 9500, 2, $1, false),
      ('Susan', 'Mavris', $2, '515-123-7777', 'HR_REP', 6500, 3, $3, true)
  `, devHash, cfg.SeedHREmail, hrHash); err != nil {
		return err
	}

	// Alex heads Engineering, John heads Sales.
	if _, err := pool.Exec(ctx, "UPDATE sections SET manager_id = 1 WHERE section_id = 1"); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "UPDATE sections SET manager_id = 3 WHERE section_id = 2"); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, `
    UPDATE staff SET manager_id = 1 WHERE staff_id = 2;
  `); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "UPDATE staff SET manager_id = 3 WHERE staff_id = 4"); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO employment_history (staff_id, start_date, end_date, employment_id, section_id) VALUES
      (2, '2019-01-13', '2021-07-24', 'SA_REP', 2),
      (4, '2017-03-24', '2019-12-31', 'IT_PROG', 1)
  `); err != nil {
		return err
	}

	return nil
}
