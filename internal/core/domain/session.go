package domain

// Session is the staff session state held by the gateway: the
// authenticated admin user plus the bearer token proving it against
// the platform backend.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"-"`
}

// Authenticated holds iff both the user and the token are present.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}
