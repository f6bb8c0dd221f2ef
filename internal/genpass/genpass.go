// Package genpass generates random passwords from configurable character
// classes and scores their strength.
package genpass

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Character classes. The look-alikes 0, O, I and l are left out so a password
// can be read back without ambiguity.
const (
	Uppercase = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lowercase = "abcdefghijkmnopqrstuvwxyz"
	Numbers   = "123456789"
	Symbols   = "!@#$%^&*_"
)

// Options selects the password length and character classes.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool
}

// DefaultOptions enables every class at the default length.
func DefaultOptions() Options {
	return Options{
		Length:    constants.DefaultPasswordLength,
		Uppercase: true,
		Lowercase: true,
		Number:    true,
		Symbol:    true,
	}
}

func (o Options) classes() []string {
	var classes []string
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Number {
		classes = append(classes, Numbers)
	}
	if o.Symbol {
		classes = append(classes, Symbols)
	}
	return classes
}

// Validate checks the length bounds and that at least one class is enabled.
func (o Options) Validate() error {
	if o.Length < constants.MinPasswordLength || o.Length > constants.MaxPasswordLength {
		return fmt.Errorf("%w: %d is outside %d..%d",
			errors.ErrInvalidPasswordLength, o.Length, constants.MinPasswordLength, constants.MaxPasswordLength)
	}
	if len(o.classes()) == 0 {
		return errors.ErrNoCharacterClasses
	}
	return nil
}

// Generator draws passwords from an entropy source.
type Generator struct {
	random io.Reader
}

// New creates a Generator reading entropy from random.
func New(random io.Reader) *Generator {
	return &Generator{random: random}
}

// NewDefault creates a Generator backed by crypto/rand.
func NewDefault() *Generator {
	return New(rand.Reader)
}

// Generate returns a password that holds at least one character from every
// enabled class, with the remaining characters drawn from the union of the
// classes and the whole sequence shuffled.
func (g *Generator) Generate(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	classes := opts.classes()
	var pool []byte
	password := make([]byte, 0, opts.Length)
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		pool = append(pool, class...)
	}

	for len(password) < opts.Length {
		c, err := g.pick(string(pool))
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func (g *Generator) pick(chars string) (byte, error) {
	i, err := g.intn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the entropy source.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random data: %w", err)
	}
	return int(v.Int64()), nil
}

// Strength is a zxcvbn estimate of a password.
type Strength struct {
	// Score ranges from 0 (weakest) to 4 (strongest).
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// Estimate scores password with zxcvbn.
func Estimate(password string) Strength {
	m := zxcvbn.PasswordStrength(password, nil)
	return Strength{
		Score:     m.Score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
	}
}
