package did

import (
	"net/url"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Method is the DID method this resolver understands
const Method = "indy"

const prefix = "did:" + Method + ":"

var (
	ErrMalformedIdentifier = errors.New("malformed DID URL")
)

// QueryParameter is a recognised DID URL query key
type QueryParameter string

const (
	VersionId   QueryParameter = "versionId"
	VersionTime QueryParameter = "versionTime"
	From        QueryParameter = "from"
	To          QueryParameter = "to"
)

func parseQueryParameter(k string) (QueryParameter, error) {
	switch p := QueryParameter(k); p {
	case VersionId, VersionTime, From, To:
		return p, nil
	default:
		return "", errors.Wrapf(ErrMalformedIdentifier, "unknown query parameter %q", k)
	}
}

// URL is a parsed did:indy DID URL. Path is nil when the URL addresses
// the subject itself rather than a ledger object anchored to it.
type URL struct {
	Namespace string
	ID        string
	Path      LedgerObject
	Query     map[QueryParameter]string
}

// Did returns the subject DID without any path or query components
func (u *URL) Did() string {
	return prefix + u.Namespace + ":" + u.ID
}

// ParseURL parses a DID URL of the form
// did:indy:<namespace>:<id>[/anoncreds/v0/<OBJECT>/...][?<query>]
// where the namespace may itself contain colons (e.g. sovrin:staging).
func ParseURL(raw string) (*URL, error) {
	if !strings.HasPrefix(raw, prefix) {
		return nil, errors.Wrapf(ErrMalformedIdentifier, "not a did:indy identifier: %q", raw)
	}

	rest := strings.TrimPrefix(raw, prefix)

	var query string
	if i := strings.Index(rest, "?"); i >= 0 {
		rest, query = rest[:i], rest[i+1:]
	}

	var path string
	if i := strings.Index(rest, "/"); i >= 0 {
		rest, path = rest[:i], rest[i:]
	}

	i := strings.LastIndex(rest, ":")
	if i <= 0 || i == len(rest)-1 {
		return nil, errors.Wrapf(ErrMalformedIdentifier, "missing namespace or subject id in %q", raw)
	}

	u := &URL{
		Namespace: rest[:i],
		ID:        rest[i+1:],
		Query:     map[QueryParameter]string{},
	}

	if err := validateSubjectID(u.ID); err != nil {
		return nil, err
	}

	if path != "" {
		obj, err := ParseLedgerObject(path)
		if err != nil {
			return nil, err
		}
		u.Path = obj
	}

	if query != "" {
		vals, err := url.ParseQuery(query)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedIdentifier, "parsing query %q", query)
		}
		for k, vs := range vals {
			p, err := parseQueryParameter(k)
			if err != nil {
				return nil, err
			}
			u.Query[p] = vs[0]
		}
	}

	return u, nil
}

func validateSubjectID(id string) error {
	raw, err := base58.Decode(id)
	if err != nil {
		return errors.Wrapf(ErrMalformedIdentifier, "subject id %q is not base58", id)
	}

	if len(raw) != 16 {
		return errors.Wrapf(ErrMalformedIdentifier, "subject id %q must decode to 16 bytes, got %d", id, len(raw))
	}

	return nil
}
