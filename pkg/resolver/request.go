package resolver

import (
	"time"

	"github.com/pkg/errors"

	"github.com/tcfw/indyres/pkg/did"
	"github.com/tcfw/indyres/pkg/ledger"
)

// buildRequest translates a parsed DID URL into the ledger request for
// the object it addresses
func (r *Resolver) buildRequest(u *did.URL) (*ledger.PreparedRequest, error) {
	if u.Path == nil {
		// TODO: apply versionId/versionTime once the ledger exposes the
		// seqNo/timestamp variant of GET_NYM
		return r.builder.BuildGetNymRequest(u.ID)
	}

	switch o := u.Path.(type) {
	case did.Schema:
		return r.builder.BuildGetSchemaRequest(ledger.NewSchemaID(u.ID, o.Name, o.Version))

	case did.ClaimDef:
		return r.builder.BuildGetCredDefRequest(ledger.NewCredDefID(u.ID, o.SchemaSeqNo, o.Name))

	case did.RevRegDef:
		return r.builder.BuildGetRevocRegDefRequest(ledger.NewRevRegID(u.ID, o.SchemaSeqNo, o.ClaimDefName, o.Tag))

	case did.RevRegEntry:
		timestamp, err := parseOrNow(u.Query, did.VersionTime)
		if err != nil {
			return nil, err
		}
		return r.builder.BuildGetRevocRegRequest(ledger.NewRevRegID(u.ID, o.SchemaSeqNo, o.ClaimDefName, o.Tag), timestamp)

	case did.RevRegDelta:
		var from *int64
		if v, ok := u.Query[did.From]; ok {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedTimestamp, "from %q", v)
			}
			ts := t.Unix()
			from = &ts
		}

		to, err := parseOrNow(u.Query, did.To)
		if err != nil {
			return nil, err
		}

		return r.builder.BuildGetRevocRegDeltaRequest(ledger.NewRevRegID(u.ID, o.SchemaSeqNo, o.ClaimDefName, o.Tag), from, to)

	default:
		return nil, errors.Wrapf(did.ErrMalformedIdentifier, "unsupported ledger object %T", u.Path)
	}
}

// parseOrNow resolves an optional RFC-3339 query value to epoch
// seconds. Absence defaults to now; a present but unparseable value is
// an error, never silently defaulted.
func parseOrNow(query map[did.QueryParameter]string, p did.QueryParameter) (int64, error) {
	v, ok := query[p]
	if !ok {
		return time.Now().Unix(), nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedTimestamp, "%s %q", p, v)
	}

	return t.Unix(), nil
}
