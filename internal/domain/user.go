package domain

// User is the account returned by the content backend after login.
type User struct {
	ID         *int
	DocumentID *string
	Username   string
	Email      string
	Confirmed  bool
	Blocked    bool
}

// Public returns a copy with backend identifiers removed, suitable for
// sending to the browser.
func (u User) Public() User {
	u.ID = nil
	u.DocumentID = nil
	return u
}
