package models

import "github.com/golang-jwt/jwt/v5"

// Token is a session token of one user.
//
// The server fills Token with the parsed JWT. The client only knows the
// compact form and the username it logged in with.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS sent as "Authorization: Bearer ...".
	SignedString string `json:"-"`

	// Username is the "sub" claim.
	Username string `json:"-"`
}

// String returns the compact JWS form of the token.
func (t Token) String() string {
	return t.SignedString
}
