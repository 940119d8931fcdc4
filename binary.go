// File: binary.go

package hilbert

import (
	"fmt"
	"math/big"
	"strings"
)

// toBinary renders v as a big-endian binary digit string zero padded to
// exactly width bits. v must be non-negative and fit in width bits; both
// are checked so a corrupted intermediate can never silently truncate.
func toBinary(v *big.Int, width int) (string, error) {
	if v.Sign() < 0 || v.BitLen() > width {
		return "", fmt.Errorf("%w: %s does not fit in %d bits", ErrOutOfRange, v, width)
	}
	digits := v.Text(2)
	if pad := width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	return digits, nil
}

// fromBinary parses an unsigned big-endian binary digit string (no sign,
// no prefix). Returns ErrInvalidFormat when digits is empty or contains a
// character other than '0' or '1'.
func fromBinary(digits string) (*big.Int, error) {
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' && digits[i] != '1' {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidFormat, digits[i], i)
		}
	}
	v, ok := new(big.Int).SetString(digits, 2)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, digits)
	}

	return v, nil
}
