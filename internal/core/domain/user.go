package domain

// User models a registered housemate as returned by the server.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// TokenPair holds the live session credentials. Both values are opaque
// strings with server-defined expiry; the client never inspects them, it
// only reacts to server-reported rejection.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Empty reports whether no credentials are stored.
func (p TokenPair) Empty() bool {
	return p.Access == "" && p.Refresh == ""
}
