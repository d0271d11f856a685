package encoding

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/e57/errs"
)

// MaxBitWidth is the widest field the E57 integer domain can need.
const MaxBitWidth = 64

// BitWidth returns the smallest number of bits b such that 2^b > maximum-minimum,
// i.e. ceil(log2(maximum-minimum+1)), and 0 when minimum == maximum.
//
// Parameters:
//   - minimum: Lower bound of the declared range (inclusive)
//   - maximum: Upper bound of the declared range (inclusive)
//
// Returns:
//   - int: Bit width in [0, 64]
//   - error: ErrInvalidRange if maximum < minimum
func BitWidth(minimum, maximum int64) (int, error) {
	if maximum < minimum {
		return 0, fmt.Errorf("%w: [%d, %d]", errs.ErrInvalidRange, minimum, maximum)
	}

	// two's complement subtraction gives the exact span even when it exceeds MaxInt64
	span := uint64(maximum) - uint64(minimum) //nolint: gosec

	return bits.Len64(span), nil
}
