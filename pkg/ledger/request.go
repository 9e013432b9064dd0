package ledger

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

const (
	protocolVersion = 2

	// defaultSubmitter is used for read requests, which need no signature
	defaultSubmitter = "LibindyDid111111111111"
)

// PreparedRequest is a ledger request ready for submission. TxnType
// drives reply interpretation after the round trip.
type PreparedRequest struct {
	TxnType string
	Body    json.RawMessage
}

// RequestBuilder prepares read requests for the indy ledger
type RequestBuilder struct {
	submitter string
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{submitter: defaultSubmitter}
}

type requestEnvelope struct {
	ReqID           uint64      `json:"reqId"`
	Identifier      string      `json:"identifier"`
	Operation       interface{} `json:"operation"`
	ProtocolVersion int         `json:"protocolVersion"`
}

func (b *RequestBuilder) prepare(txnType string, op interface{}) (*PreparedRequest, error) {
	body, err := json.Marshal(requestEnvelope{
		ReqID:           uint64(time.Now().UnixNano()),
		Identifier:      b.submitter,
		Operation:       op,
		ProtocolVersion: protocolVersion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshaling ledger request")
	}

	return &PreparedRequest{TxnType: txnType, Body: body}, nil
}

func (b *RequestBuilder) BuildGetNymRequest(dest string) (*PreparedRequest, error) {
	return b.prepare(GetNym, struct {
		Type string `json:"type"`
		Dest string `json:"dest"`
	}{GetNym, dest})
}

func (b *RequestBuilder) BuildGetAttribRequest(dest, raw string) (*PreparedRequest, error) {
	return b.prepare(GetAttr, struct {
		Type string `json:"type"`
		Dest string `json:"dest"`
		Raw  string `json:"raw"`
	}{GetAttr, dest, raw})
}

func (b *RequestBuilder) BuildGetSchemaRequest(id SchemaID) (*PreparedRequest, error) {
	dest, name, version, err := id.Parts()
	if err != nil {
		return nil, err
	}

	return b.prepare(GetSchema, struct {
		Type string    `json:"type"`
		Dest string    `json:"dest"`
		Data schemaKey `json:"data"`
	}{GetSchema, dest, schemaKey{name, version}})
}

type schemaKey struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (b *RequestBuilder) BuildGetCredDefRequest(id CredDefID) (*PreparedRequest, error) {
	origin, sigType, schemaSeqNo, tag, err := id.Parts()
	if err != nil {
		return nil, err
	}

	return b.prepare(GetCredDef, struct {
		Type          string `json:"type"`
		Origin        string `json:"origin"`
		Ref           int    `json:"ref"`
		SignatureType string `json:"signature_type"`
		Tag           string `json:"tag"`
	}{GetCredDef, origin, schemaSeqNo, sigType, tag})
}

func (b *RequestBuilder) BuildGetRevocRegDefRequest(id RevRegID) (*PreparedRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return b.prepare(GetRevocRegDef, struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	}{GetRevocRegDef, string(id)})
}

func (b *RequestBuilder) BuildGetRevocRegRequest(id RevRegID, timestamp int64) (*PreparedRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return b.prepare(GetRevocReg, struct {
		Type          string `json:"type"`
		RevocRegDefID string `json:"revocRegDefId"`
		Timestamp     int64  `json:"timestamp"`
	}{GetRevocReg, string(id), timestamp})
}

func (b *RequestBuilder) BuildGetRevocRegDeltaRequest(id RevRegID, from *int64, to int64) (*PreparedRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return b.prepare(GetRevocRegDelta, struct {
		Type          string `json:"type"`
		RevocRegDefID string `json:"revocRegDefId"`
		From          *int64 `json:"from,omitempty"`
		To            int64  `json:"to"`
	}{GetRevocRegDelta, string(id), from, to})
}
