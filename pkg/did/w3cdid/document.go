package w3cdid

import (
	"sort"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	ContextV1 = "https://www.w3.org/ns/did/v1"

	// LegacyIndyService is the ATTRIB name under which pre-diddoc NYMs
	// published their service endpoint
	LegacyIndyService = "endpoint"

	verkeyType = "Ed25519VerificationKey2018"
)

type Document struct {
	Context            []string             `json:"@context"`
	ID                 string               `json:"id"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []string             `json:"authentication,omitempty"`
	Service            []Service            `json:"service,omitempty"`
}

type VerificationMethod struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Controller      string `json:"controller"`
	PublicKeyBase58 string `json:"publicKeyBase58,omitempty"`
}

type Service struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint string `json:"serviceEndpoint"`
}

// NewDocument builds the DID document for a NYM. The endpoint map, when
// present, comes from the legacy ATTRIB mechanism and yields one service
// per entry; the well-known "endpoint" key maps to a did-communication
// service.
func NewDocument(namespace, dest, verkey string, endpoint map[string]string) *Document {
	id := "did:indy:" + namespace + ":" + dest

	doc := &Document{
		Context: []string{ContextV1},
		ID:      id,
		VerificationMethod: []VerificationMethod{{
			ID:              id + "#verkey",
			Type:            verkeyType,
			Controller:      id,
			PublicKeyBase58: ExpandVerkey(dest, verkey),
		}},
		Authentication: []string{id + "#verkey"},
	}

	if len(endpoint) == 0 {
		return doc
	}

	types := make([]string, 0, len(endpoint))
	for t := range endpoint {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		svc := Service{ID: id + "#" + t, Type: t, ServiceEndpoint: endpoint[t]}
		if t == LegacyIndyService {
			svc.ID = id + "#did-communication"
			svc.Type = "did-communication"
		}
		doc.Service = append(doc.Service, svc)
	}

	return doc
}

// ExpandVerkey completes an abbreviated verkey. A verkey starting with
// "~" holds only the trailing bytes of the key; the leading bytes are
// the DID itself. Anything unexpandable is returned verbatim.
func ExpandVerkey(did, verkey string) string {
	if !strings.HasPrefix(verkey, "~") {
		return verkey
	}

	didRaw, err := base58.Decode(did)
	if err != nil {
		return verkey
	}

	keyRaw, err := base58.Decode(strings.TrimPrefix(verkey, "~"))
	if err != nil {
		return verkey
	}

	return base58.Encode(append(didRaw, keyRaw...))
}
