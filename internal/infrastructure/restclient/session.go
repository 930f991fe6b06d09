package restclient

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"
)

type contextKey string

const sessionKey contextKey = "backend_session"

// Session is one clerk's authenticated session against the backend. The
// cookie jar holds the Django session and csrftoken cookies; every request
// made through it behaves like the browser the original console ran in.
type Session struct {
	Client *http.Client
}

// NewSession creates a session with a fresh cookie jar.
func NewSession(timeout time.Duration) (*Session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	return &Session{
		Client: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// CSRFToken returns the csrftoken cookie the backend set for baseURL, or ""
// when none has been issued yet.
func (s *Session) CSRFToken(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range s.Client.Jar.Cookies(u) {
		if cookie.Name == "csrftoken" {
			return cookie.Value
		}
	}
	return ""
}

// WithSession embeds a backend session into the context. The auth middleware
// sets it per request; repositories pick it up transparently.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom extracts the backend session from the context.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}
