// Package session consumes the signed session token issued by the identity provider.
package session

import "github.com/golang-jwt/jwt/v5"

// CookieName is the cookie the dashboard frontend stores the token in.
const CookieName = "session"

// Claims lives for one request and is never persisted.
type Claims struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	MemberID        string `json:"memberId,omitempty"`
	DepartmentID    string `json:"departmentId,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	jwt.RegisteredClaims
}

// IdentityID prefers the userId claim and falls back to sub.
func (c *Claims) IdentityID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}
