package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"laundry/internal/pkg/errs"
)

const (
	numberPrefix     = "ORD"
	numberDateLayout = "20060102"
	numberSuffixLen  = 6
	numberAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var numberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`)

// Number is the human-facing order reference, ORD-YYYYMMDD-XXXXXX.
// It doubles as the gateway order reference, so it must be globally unique.
type Number struct {
	value string
}

// GenerateNumber builds a new number dated at now with a random suffix.
// Uniqueness is enforced by storage; callers retry on collision.
func GenerateNumber(now time.Time) (Number, error) {
	suffix := make([]byte, numberSuffixLen)
	limit := big.NewInt(int64(len(numberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return Number{}, fmt.Errorf("generate order number: %w", err)
		}
		suffix[i] = numberAlphabet[n.Int64()]
	}

	return Number{value: fmt.Sprintf("%s-%s-%s", numberPrefix, now.Format(numberDateLayout), suffix)}, nil
}

func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order_number", fmt.Errorf("%q does not match ORD-YYYYMMDD-XXXXXX", s))
	}
	return Number{value: s}, nil
}

func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	return nil
}

func (n Number) String() string {
	return n.value
}
