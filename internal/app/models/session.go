package models

import "medibook-service/internal/pkg/constvars"

// Session is the verified principal attached to every authenticated request.
// The lifecycle engine never authenticates; it only authorizes against this.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.RolePatient
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleDoctor
}
