package sec

import "golang.org/x/crypto/bcrypt"

// MaxPasswordLen is the longest password bcrypt accepts, in bytes.
const MaxPasswordLen = 72

// dummyHash is compared against when a user does not exist, so that a lookup
// miss costs the same as a wrong password.
var dummyHash = func() []byte {
	hash, err := HashPassword("larder-dummy-password")
	if err != nil {
		panic(err)
	}
	return hash
}()

// ComparePassword returns an error if the provided password does not resolve to
// the given hash.
func ComparePassword[T ~string | ~[]byte](password T, hash []byte) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}

// CompareDummy performs a throwaway comparison against a fixed hash and always
// returns [bcrypt.ErrMismatchedHashAndPassword].
func CompareDummy[T ~string | ~[]byte](password T) error {
	_ = ComparePassword(password, dummyHash)
	return bcrypt.ErrMismatchedHashAndPassword
}

// HashPassword generates the salted hash for a given password. It errors if
// the password is longer than [MaxPasswordLen] bytes.
func HashPassword[T ~string | ~[]byte](password T) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
