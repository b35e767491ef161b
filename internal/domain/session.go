package domain

// Session is the result of a successful login against the content backend.
type Session struct {
	Token string
	User  User
}
