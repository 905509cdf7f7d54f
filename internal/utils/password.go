package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives the bcrypt hash stored on an account record.  The
// cost comes from configuration so tests can use bcrypt.MinCost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword checks a login attempt against the stored bcrypt hash
// in constant time.  Malformed hashes simply fail the check.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
