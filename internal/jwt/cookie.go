package jwt

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// Session cookie names.
const (
	TokenCookie  = "token"
	UserIDCookie = "user_id"
)

// ErrSessionMismatch is returned when the user_id cookie disagrees with the token subject.
var ErrSessionMismatch = errors.New("user_id cookie does not match session token")

// SetSessionCookies writes the signed token and the numeric user id as HTTP-only cookies.
func SetSessionCookies(w http.ResponseWriter, token string, userID int64, maxAge time.Duration, secure bool) {
	for name, value := range map[string]string{
		TokenCookie:  token,
		UserIDCookie: strconv.FormatInt(userID, 10),
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			MaxAge:   int(maxAge.Seconds()),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ClearSessionCookies expires both session cookies.
func ClearSessionCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{TokenCookie, UserIDCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// CheckUserIDCookie verifies that a present user_id cookie matches the resolved user.
// A missing cookie is accepted; the signed token is authoritative.
func CheckUserIDCookie(r *http.Request, userID int64) error {
	c, err := r.Cookie(UserIDCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	id, err := strconv.ParseInt(c.Value, 10, 64)
	if err != nil || id != userID {
		return ErrSessionMismatch
	}
	return nil
}
