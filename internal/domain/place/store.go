package place

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Place struct {
	PlaceID       int64  `json:"placeId"`
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode,omitempty"`
	City          string `json:"city"`
	StateProvince string `json:"stateProvince,omitempty"`
	StateID       string `json:"stateId,omitempty"`
	StateName     string `json:"stateName,omitempty"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Place, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.place_id, p.street_address,
           COALESCE(p.postal_code, ''), p.city,
           COALESCE(p.state_province, ''),
           COALESCE(p.state_id, ''),
           COALESCE(st.state_name, '')
    FROM places p
    LEFT JOIN states st ON p.state_id = st.state_id
    ORDER BY p.place_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Place{}
	for rows.Next() {
		var p Place
		if err := rows.Scan(&p.PlaceID, &p.StreetAddress, &p.PostalCode, &p.City, &p.StateProvince, &p.StateID, &p.StateName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Add(ctx context.Context, p Place) (*Place, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO places (street_address, postal_code, city, state_province, state_id)
    VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''))
    RETURNING place_id
  `, p.StreetAddress, p.PostalCode, p.City, p.StateProvince, p.StateID).Scan(&p.PlaceID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
