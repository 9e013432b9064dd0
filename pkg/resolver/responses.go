package resolver

import (
	"encoding/json"

	"github.com/tcfw/indyres/pkg/did/w3cdid"
)

// NymRecord is the GET_NYM reply payload (GetNymResultV1). A nil
// DiddocContent marks a pre-diddoc NYM whose endpoint, if any, lives in
// a legacy ATTRIB transaction.
type NymRecord struct {
	Identifier    string          `json:"identifier,omitempty"`
	Dest          string          `json:"dest"`
	Role          string          `json:"role,omitempty"`
	Verkey        string          `json:"verkey"`
	DiddocContent json.RawMessage `json:"diddocContent,omitempty"`
}

// Endpoint is the legacy service endpoint ATTRIB payload, a map of
// service type to URI
type Endpoint struct {
	Endpoint map[string]string `json:"endpoint"`
}

// ContentMetadata accompanies every successful resolution and carries
// the verbatim ledger reply
type ContentMetadata struct {
	NodeResponse json.RawMessage `json:"nodeResponse"`
	ObjectType   string          `json:"objectType"`
}

type ResolutionResult struct {
	DidResolutionMetadata *string          `json:"didResolutionMetadata"`
	DidDocument           *w3cdid.Document `json:"didDocument"`
	DidDocumentMetadata   *ContentMetadata `json:"didDocumentMetadata"`
}

type DereferencingResult struct {
	DereferencingMetadata *string          `json:"dereferencingMetadata"`
	ContentStream         json.RawMessage  `json:"contentStream"`
	ContentMetadata       *ContentMetadata `json:"contentMetadata"`
}
