// Package session holds the authenticated identity on the client side and
// persists it across runs. The store is the single owner of the current
// session; every other client component reads through it.
package session

import "hradmin/internal/domain/auth"

type Session struct {
	StaffID   string    `json:"staffId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      auth.Role `json:"role"`
	SectionID string    `json:"sectionId,omitempty"`
}

func (s Session) DisplayName() string {
	return s.FirstName + " " + s.LastName
}
