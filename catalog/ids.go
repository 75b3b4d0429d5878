package catalog

import "math/rand"

const (
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idLength   = 8
)

func randomCode() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// NewMerchantID returns a fresh dashboard access code. Uniqueness is not
// probed here; the unique index on the column is the only guard.
func NewMerchantID() string {
	return "M" + randomCode()
}

// NewStoreID returns a fresh public store code.
func NewStoreID() string {
	return "S" + randomCode()
}
