package model

// Scope identifies the caller of a request. The zero value is an anonymous caller.
type Scope struct {
	UserID   string
	Username string
	Role     string
}

// IsAnonymous reports whether no identity is attached.
func (s Scope) IsAnonymous() bool {
	return s.UserID == ""
}
