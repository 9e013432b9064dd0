package pool

import (
	"context"

	"github.com/tcfw/indyres/pkg/ledger"
)

// Pool performs prepared requests against a ledger network. A submission
// is a single consistency-checked round trip; quorum handling, timeouts
// and retries live behind this interface, not in the resolver.
type Pool interface {
	SubmitRequest(ctx context.Context, req *ledger.PreparedRequest) (string, error)
}
