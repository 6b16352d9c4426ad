package constant

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultTokenType  = "Bearer"
	SessionCookieName = "session"

	// SessionLocalKey is the fiber locals key the auth middleware stores the
	// reconstructed session view under.
	SessionLocalKey = "session_view"

	DefaultRoomsPerPage = 8
)
