package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash. Two calls for the same
// password produce different hashes; compare only via VerifyPassword.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches hash. A malformed
// hash counts as a verification failure, never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
