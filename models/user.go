package models

// User is the credential pair submitted on registration and login.
//
// Both fields must be identifiers: alphanumeric, 5 to 31 characters. The
// password is kept in plain text in the user's record file.
type User struct {
	// Login is the username. It doubles as the record file name.
	Login string `json:"login"`

	// Password is the account password.
	Password string `json:"password"`
}
