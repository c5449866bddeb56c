package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted bcrypt hash of plain. The salt is embedded in the result.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches stored. A malformed stored hash is a
// mismatch, not an error.
func Verify(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
