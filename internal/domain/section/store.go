package section

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("section not found")

type Section struct {
	SectionID    int64  `json:"sectionId"`
	SectionName  string `json:"sectionName"`
	ManagerID    *int64 `json:"managerId,omitempty"`
	ManagerName  string `json:"managerName,omitempty"`
	PlaceID      *int64 `json:"placeId,omitempty"`
	PlaceAddress string `json:"placeAddress,omitempty"`
	PlaceCity    string `json:"placeCity,omitempty"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const sectionSelect = `
    SELECT se.section_id, se.section_name, se.manager_id,
           COALESCE(m.first_name || ' ' || m.last_name, ''),
           se.place_id,
           COALESCE(p.street_address, ''),
           COALESCE(p.city, '')
    FROM sections se
    LEFT JOIN staff m ON se.manager_id = m.staff_id
    LEFT JOIN places p ON se.place_id = p.place_id`

func (s *Store) List(ctx context.Context) ([]Section, error) {
	rows, err := s.DB.Query(ctx, sectionSelect+" ORDER BY se.section_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Section{}
	for rows.Next() {
		var sec Section
		if err := rows.Scan(&sec.SectionID, &sec.SectionName, &sec.ManagerID, &sec.ManagerName, &sec.PlaceID, &sec.PlaceAddress, &sec.PlaceCity); err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, sectionID int64) (*Section, error) {
	var sec Section
	err := s.DB.QueryRow(ctx, sectionSelect+" WHERE se.section_id = $1", sectionID).
		Scan(&sec.SectionID, &sec.SectionName, &sec.ManagerID, &sec.ManagerName, &sec.PlaceID, &sec.PlaceAddress, &sec.PlaceCity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *Store) UpdateName(ctx context.Context, sectionID int64, name string) (bool, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE sections SET section_name = $1 WHERE section_id = $2", name, sectionID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
