package did

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LedgerObject is an object anchored to a subject DID and addressed by
// the DID URL path. The set of kinds is closed; dispatch sites switch
// over the concrete types.
type LedgerObject interface {
	ledgerObject()
}

type Schema struct {
	Name    string
	Version string
}

type ClaimDef struct {
	SchemaSeqNo int
	Name        string
}

type RevRegDef struct {
	SchemaSeqNo  int
	ClaimDefName string
	Tag          string
}

type RevRegEntry struct {
	SchemaSeqNo  int
	ClaimDefName string
	Tag          string
}

type RevRegDelta struct {
	SchemaSeqNo  int
	ClaimDefName string
	Tag          string
}

func (Schema) ledgerObject()      {}
func (ClaimDef) ledgerObject()    {}
func (RevRegDef) ledgerObject()   {}
func (RevRegEntry) ledgerObject() {}
func (RevRegDelta) ledgerObject() {}

// ParseLedgerObject parses a DID URL path such as
// /anoncreds/v0/SCHEMA/npdb/4.3.4 into its ledger object. Segments are
// percent-decoded before use.
func ParseLedgerObject(path string) (LedgerObject, error) {
	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segs) < 3 || segs[0] != "anoncreds" || segs[1] != "v0" {
		return nil, errors.Wrapf(ErrMalformedIdentifier, "unrecognized ledger object path %q", path)
	}

	kind := segs[2]
	args := segs[3:]
	for i, s := range args {
		dec, err := url.PathUnescape(s)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedIdentifier, "decoding path segment %q", s)
		}
		args[i] = dec
	}

	switch kind {
	case "SCHEMA":
		if len(args) != 2 {
			return nil, errors.Wrapf(ErrMalformedIdentifier, "SCHEMA path needs name and version, got %q", path)
		}
		return Schema{Name: args[0], Version: args[1]}, nil

	case "CLAIM_DEF":
		if len(args) != 2 {
			return nil, errors.Wrapf(ErrMalformedIdentifier, "CLAIM_DEF path needs schema seqNo and name, got %q", path)
		}
		seqNo, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedIdentifier, "CLAIM_DEF schema seqNo %q is not numeric", args[0])
		}
		return ClaimDef{SchemaSeqNo: seqNo, Name: args[1]}, nil

	case "REV_REG_DEF", "REV_REG_ENTRY", "REV_REG_DELTA":
		if len(args) != 3 {
			return nil, errors.Wrapf(ErrMalformedIdentifier, "%s path needs schema seqNo, claim def name and tag, got %q", kind, path)
		}
		seqNo, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedIdentifier, "%s schema seqNo %q is not numeric", kind, args[0])
		}
		switch kind {
		case "REV_REG_DEF":
			return RevRegDef{SchemaSeqNo: seqNo, ClaimDefName: args[1], Tag: args[2]}, nil
		case "REV_REG_ENTRY":
			return RevRegEntry{SchemaSeqNo: seqNo, ClaimDefName: args[1], Tag: args[2]}, nil
		default:
			return RevRegDelta{SchemaSeqNo: seqNo, ClaimDefName: args[1], Tag: args[2]}, nil
		}

	default:
		return nil, errors.Wrapf(ErrMalformedIdentifier, "unrecognized ledger object type %q", kind)
	}
}
