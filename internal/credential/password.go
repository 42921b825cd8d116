package credential

import (
	"crypto/rand"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const MinBcryptCost = 10

//go:generate mockgen -destination=mock/password_mock.go -package=mock . PasswordHasher
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher never goes below MinBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// DummyHash is a bcrypt hash of a random secret at MinBcryptCost. Login
// verifies against it when the identifier is unknown so both failures cost
// one bcrypt comparison.
func DummyHash() string {
	dummyOnce.Do(func() {
		secret := make([]byte, 32)
		_, _ = rand.Read(secret)
		hashed, err := bcrypt.GenerateFromPassword(secret, MinBcryptCost)
		if err == nil {
			dummyHash = string(hashed)
		}
	})
	return dummyHash
}
