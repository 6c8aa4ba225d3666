package httpx

import (
	"net/http"
	"time"
)

const (
	RefreshCookie = "refreshToken"
	AccessCookie  = "accessToken"
)

// Cookies writes the session cookie pair. Both are httpOnly, Lax and
// scoped to "/"; Secure is switched on for production deployments.
type Cookies struct {
	Secure     bool
	RefreshTTL time.Duration
	AccessTTL  time.Duration
}

func (c Cookies) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetSession writes both cookies.
func (c Cookies) SetSession(w http.ResponseWriter, refresh, access string) {
	http.SetCookie(w, c.cookie(RefreshCookie, refresh, c.RefreshTTL))
	c.SetAccess(w, access)
}

// SetAccess rewrites only the access cookie, used after a silent refresh.
func (c Cookies) SetAccess(w http.ResponseWriter, access string) {
	http.SetCookie(w, c.cookie(AccessCookie, access, c.AccessTTL))
}

// Clear expires both cookies. net/http renders a negative MaxAge as
// "Max-Age=0".
func (c Cookies) Clear(w http.ResponseWriter) {
	for _, name := range []string{RefreshCookie, AccessCookie} {
		ck := c.cookie(name, "", 0)
		ck.MaxAge = -1
		http.SetCookie(w, ck)
	}
}

// Read returns the refresh and access cookie values, empty when absent.
func (c Cookies) Read(r *http.Request) (refresh, access string) {
	if ck, err := r.Cookie(RefreshCookie); err == nil {
		refresh = ck.Value
	}
	if ck, err := r.Cookie(AccessCookie); err == nil {
		access = ck.Value
	}
	return refresh, access
}
