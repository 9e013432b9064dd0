package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	ErrInvalidIdentifier = errors.New("invalid ledger identifier")
)

// SchemaID is the ledger-native schema identifier
// <did>:2:<name>:<version>
type SchemaID string

func NewSchemaID(did, name, version string) SchemaID {
	return SchemaID(fmt.Sprintf("%s:2:%s:%s", did, name, version))
}

// Parts validates the identifier and splits it back into its components
func (id SchemaID) Parts() (did, name, version string, err error) {
	parts := strings.Split(string(id), ":")
	if len(parts) < 4 || parts[1] != "2" {
		return "", "", "", errors.Wrapf(ErrInvalidIdentifier, "schema id %q", id)
	}

	if err := validateDidPart(parts[0]); err != nil {
		return "", "", "", err
	}

	// schema names may themselves contain colons
	return parts[0], strings.Join(parts[2:len(parts)-1], ":"), parts[len(parts)-1], nil
}

// CredDefID is the ledger-native credential definition identifier
// <did>:3:CL:<schema seqNo>:<tag>
type CredDefID string

func NewCredDefID(did string, schemaSeqNo int, tag string) CredDefID {
	return CredDefID(fmt.Sprintf("%s:3:CL:%d:%s", did, schemaSeqNo, tag))
}

func (id CredDefID) Parts() (origin, signatureType string, schemaSeqNo int, tag string, err error) {
	parts := strings.SplitN(string(id), ":", 5)
	if len(parts) != 5 || parts[1] != "3" || parts[2] != "CL" {
		return "", "", 0, "", errors.Wrapf(ErrInvalidIdentifier, "cred def id %q", id)
	}

	if err := validateDidPart(parts[0]); err != nil {
		return "", "", 0, "", err
	}

	seqNo, convErr := strconv.Atoi(parts[3])
	if convErr != nil {
		return "", "", 0, "", errors.Wrapf(ErrInvalidIdentifier, "cred def id %q: schema seqNo %q", id, parts[3])
	}

	return parts[0], parts[2], seqNo, parts[4], nil
}

// RevRegID is the ledger-native revocation registry identifier
// <did>:4:<did>:3:CL:<schema seqNo>:<cred def tag>:CL_ACCUM:<tag>
type RevRegID string

func NewRevRegID(did string, schemaSeqNo int, credDefTag, tag string) RevRegID {
	return RevRegID(fmt.Sprintf("%s:4:%s:3:CL:%d:%s:CL_ACCUM:%s", did, did, schemaSeqNo, credDefTag, tag))
}

func (id RevRegID) Validate() error {
	parts := strings.SplitN(string(id), ":", 9)
	if len(parts) != 9 || parts[1] != "4" || parts[3] != "3" || parts[4] != "CL" || parts[7] != "CL_ACCUM" {
		return errors.Wrapf(ErrInvalidIdentifier, "revocation registry id %q", id)
	}

	if _, err := strconv.Atoi(parts[5]); err != nil {
		return errors.Wrapf(ErrInvalidIdentifier, "revocation registry id %q: schema seqNo %q", id, parts[5])
	}

	if err := validateDidPart(parts[0]); err != nil {
		return err
	}

	return validateDidPart(parts[2])
}

func validateDidPart(did string) error {
	raw, err := base58.Decode(did)
	if err != nil {
		return errors.Wrapf(ErrInvalidIdentifier, "DID part %q is not base58", did)
	}

	if len(raw) != 16 {
		return errors.Wrapf(ErrInvalidIdentifier, "DID part %q must decode to 16 bytes, got %d", did, len(raw))
	}

	return nil
}
