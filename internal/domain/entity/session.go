package entity

// Profile is the user identity returned by the auth API.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

// Session is the current authenticated identity. Token and Profile are
// always set and cleared together; a session with one but not the other is
// invalid by construction.
type Session struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}
