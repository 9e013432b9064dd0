package resolver

import "github.com/pkg/errors"

var (
	// ErrEmptyData means the ledger answered but holds no record for
	// the requested object. Distinct from a submission failure.
	ErrEmptyData = errors.New("ledger reply contained no data")

	ErrMalformedTimestamp = errors.New("malformed timestamp")

	ErrMalformedReply = errors.New("malformed ledger reply")
)
