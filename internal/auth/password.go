package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of plain. Each call salts independently,
// so hashing the same password twice yields different digests.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored bcrypt digest.
// A malformed digest counts as a mismatch rather than an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
