package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	minSecretLength = 32
	cookiePrefix    = "__flash_"
)

// CookieStore carries pending flash messages between requests in
// HMAC-signed cookies, one cookie per severity kind, so a later Add
// for the same kind replaces the earlier message and distinct kinds
// never clobber each other within one response. Consume reads all
// pending messages and expires their cookies, giving the one-shot
// semantics a flash map requires.
type CookieStore struct {
	secret []byte
	path   string
}

// CookieOption configures a CookieStore.
type CookieOption func(*CookieStore)

// WithCookiePath overrides the default cookie path ("/").
func WithCookiePath(path string) CookieOption {
	return func(c *CookieStore) {
		if path != "" {
			c.path = path
		}
	}
}

// NewCookieStore creates a CookieStore signing with the given secret.
func NewCookieStore(secret string, opts ...CookieOption) (*CookieStore, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: have %d chars, need at least %d", ErrSecretTooShort, len(secret), minSecretLength)
	}

	c := &CookieStore{
		secret: []byte(secret),
		path:   "/",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Add records a message for the given kind, replacing any pending
// message of the same kind. The cookie survives a redirect, so the
// usual add-then-redirect flow shows the message on the next page.
func (c *CookieStore) Add(w http.ResponseWriter, _ *http.Request, kind, message string) error {
	if kind == "" {
		return fmt.Errorf("%w: kind is required", ErrInvalidFlash)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookiePrefix + kind,
		Value:    c.sign(message),
		Path:     c.path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Peek returns the pending flash map without consuming it. A request
// with no flash cookies yields ErrNoFlash; a tampered cookie yields
// ErrInvalidFlash.
func (c *CookieStore) Peek(r *http.Request) (Map, error) {
	var m Map
	for _, cookie := range r.Cookies() {
		kind, ok := strings.CutPrefix(cookie.Name, cookiePrefix)
		if !ok || kind == "" {
			continue
		}

		message, err := c.verify(cookie.Value)
		if err != nil {
			return nil, err
		}

		if m == nil {
			m = make(Map)
		}
		m[kind] = message
	}

	if m == nil {
		return nil, ErrNoFlash
	}
	return m, nil
}

// Consume returns the pending flash map and expires every flash
// cookie, so the messages are shown exactly once. A request without
// flash cookies yields an empty map and no error; tampered cookies are
// discarded and reported as ErrInvalidFlash.
func (c *CookieStore) Consume(w http.ResponseWriter, r *http.Request) (Map, error) {
	m, err := c.Peek(r)

	// Expire everything we saw, valid or not
	for _, cookie := range r.Cookies() {
		if strings.HasPrefix(cookie.Name, cookiePrefix) {
			c.expire(w, cookie.Name)
		}
	}

	if err != nil {
		if errors.Is(err, ErrNoFlash) {
			return Map{}, nil
		}
		return Map{}, err
	}
	return m, nil
}

func (c *CookieStore) expire(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     c.path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *CookieStore) sign(message string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(message))
	sig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(message)) + "|" + sig
}

func (c *CookieStore) verify(value string) (string, error) {
	parts := strings.SplitN(value, "|", 2)
	if len(parts) != 2 {
		return "", ErrInvalidFlash
	}

	message, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidFlash
	}

	mac := hmac.New(sha256.New, c.secret)
	mac.Write(message)
	expected := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	// Constant-time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expected)) != 1 {
		return "", ErrInvalidFlash
	}

	return string(message), nil
}
