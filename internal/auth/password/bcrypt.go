package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/arleysouza/auth-api/internal/domain"
)

// DefaultCost is the bcrypt work factor used in production.
const DefaultCost = 10

type Hasher struct {
	cost int
}

func NewDefault() *Hasher { return &Hasher{cost: DefaultCost} }

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Ensure: Hasher implements domain.PasswordHasher
var _ domain.PasswordHasher = (*Hasher)(nil)

// Hash returns a salted bcrypt hash; same input gives a different hash
// on every call.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares in constant time. A plain mismatch is just false,
// never an error.
func (h *Hasher) Verify(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
