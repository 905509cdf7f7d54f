package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel errors distinguishing expiry from other failures
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Token verification failures.  ErrTokenExpired is reported separately so
// callers can answer "token expired" instead of a generic rejection.
var (
    ErrTokenExpired = errors.New("token expired")
    ErrTokenInvalid = errors.New("invalid token")
)

// SessionToken represents a signed JWT session credential along with its
// expiry.  The Token field contains the JWT string.  Exp stores the
// expiration timestamp as a time.Time.  Session tokens are self contained;
// there is no server-side revocation list.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// SessionClaims are the values embedded in a session token.
type SessionClaims struct {
    UserID  string // subject user identifier
    IsAdmin bool   // admin flag copied from the user record at issue time
}

// NewSessionToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the admin flag, and a TTL in days.  The JWT
// carries the claims the storefront relies on: user_id, is_admin, an
// absolute expiration (exp) and issued at (iat).
func NewSessionToken(secret, userID string, isAdmin bool, ttlDays int) (SessionToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
    claims := jwt.MapClaims{
        "user_id":  userID,
        "is_admin": isAdmin,
        "exp":      exp.Unix(),
        "iat":      time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    // Sign the token with the provided secret and obtain the string form.  If
    // signing fails, return the error and a zero SessionToken.
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken validates a raw token string against the signing
// secret and extracts its claims.  It rejects tokens signed with an
// unexpected algorithm.  Expired tokens return ErrTokenExpired; every
// other failure collapses into ErrTokenInvalid.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Type assert the signing method to HMAC; reject others.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return SessionClaims{}, ErrTokenExpired
        }
        return SessionClaims{}, ErrTokenInvalid
    }
    if !tok.Valid {
        return SessionClaims{}, ErrTokenInvalid
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return SessionClaims{}, ErrTokenInvalid
    }
    userID, _ := claims["user_id"].(string)
    if userID == "" {
        return SessionClaims{}, ErrTokenInvalid
    }
    isAdmin, _ := claims["is_admin"].(bool)
    return SessionClaims{UserID: userID, IsAdmin: isAdmin}, nil
}
