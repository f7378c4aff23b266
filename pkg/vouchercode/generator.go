package vouchercode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	Alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultLength = 8
)

// Generator выдаёт случайные коды из A-Z0-9.
type Generator struct {
	length int
}

func New(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

func (g *Generator) Generate() (string, error) {
	alphabetLen := big.NewInt(int64(len(Alphabet)))

	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		code[i] = Alphabet[n.Int64()]
	}
	return string(code), nil
}
