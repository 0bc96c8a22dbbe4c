package httpadapter

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	clickCookie = "sl_click"
	destCookie  = "sl_dest"
)

// ClickClaims is the payload of the signed click cookie.
type ClickClaims struct {
	ClickID string `json:"cid"`
	LinkID  string `json:"lid"`
	jwt.RegisteredClaims
}

// ClickCookies issues the cookies set by the landing page route: a signed
// click token and the plain destination for the page's call to action.
type ClickCookies struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewClickCookies(secret string, ttl time.Duration, secure bool) *ClickCookies {
	return &ClickCookies{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

// Sign returns an HS256 token carrying the click and link ids.
func (c *ClickCookies) Sign(clickID, linkID string) (string, error) {
	claims := ClickClaims{
		ClickID: clickID,
		LinkID:  linkID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.now().Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Parse validates a token produced by Sign.
func (c *ClickCookies) Parse(token string) (*ClickClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &ClickClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*ClickClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid click token")
	}
	return claims, nil
}

// Set writes both cookies to w.
func (c *ClickCookies) Set(w http.ResponseWriter, clickID, linkID, dest string) error {
	token, err := c.Sign(clickID, linkID)
	if err != nil {
		return err
	}
	maxAge := int(c.ttl / time.Second)
	http.SetCookie(w, &http.Cookie{
		Name:     clickCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     destCookie,
		Value:    dest,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
