package resolver

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/tcfw/indyres/pkg/did"
	"github.com/tcfw/indyres/pkg/did/w3cdid"
	"github.com/tcfw/indyres/pkg/ledger"
	"github.com/tcfw/indyres/pkg/pool"
)

// Resolver resolves did:indy DID URLs into DID documents or ledger
// object content. It holds no state across calls and is safe for
// concurrent use.
type Resolver struct {
	pool    pool.Pool
	builder *ledger.RequestBuilder
	log     *logrus.Entry
}

type Option func(*Resolver)

// WithLogger replaces the resolver's logger, which otherwise writes to
// its own logrus instance
func WithLogger(l *logrus.Entry) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

func New(p pool.Pool, opts ...Option) *Resolver {
	r := &Resolver{
		pool:    p,
		builder: ledger.NewRequestBuilder(),
		log:     logrus.NewEntry(logrus.New()),
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

// Resolve produces the resolution result envelope for a DID as
// pretty-printed JSON
func (r *Resolver) Resolve(ctx context.Context, rawDid string) (string, error) {
	res, metadata, err := r.resolve(ctx, rawDid)
	if err != nil {
		return "", err
	}

	out := ResolutionResult{
		DidDocument:         res.document,
		DidDocumentMetadata: metadata,
	}

	rendered, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "rendering resolution result")
	}

	return string(rendered), nil
}

// Dereference produces the dereferencing result envelope for a DID URL
// as pretty-printed JSON
func (r *Resolver) Dereference(ctx context.Context, didURL string) (string, error) {
	res, metadata, err := r.resolve(ctx, didURL)
	if err != nil {
		return "", err
	}

	out := DereferencingResult{
		ContentStream:   res.content,
		ContentMetadata: metadata,
	}

	rendered, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "rendering dereferencing result")
	}

	return string(rendered), nil
}

// resolved is the outcome of the shared pipeline: a synthesized
// document for NYMs, opaque content for everything else
type resolved struct {
	document *w3cdid.Document
	content  json.RawMessage
}

func (r *Resolver) resolve(ctx context.Context, rawURL string) (*resolved, *ContentMetadata, error) {
	u, err := did.ParseURL(rawURL)
	if err != nil {
		return nil, nil, err
	}

	req, err := r.buildRequest(u)
	if err != nil {
		return nil, nil, err
	}

	reply, err := r.submit(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	data, err := parseLedgerData(reply)
	if err != nil {
		return nil, nil, err
	}

	res := &resolved{}
	var objectType string

	switch req.TxnType {
	case ledger.GetNym:
		var nym NymRecord
		if err := json.Unmarshal([]byte(payloadJSON(data)), &nym); err != nil {
			return nil, nil, errors.Wrap(err, "decoding nym record")
		}

		var endpoint map[string]string
		if !hasDiddocContent(nym.DiddocContent) {
			// Legacy: the endpoint may live in an attached ATTRIB txn.
			// A failed fetch downgrades to "no endpoint".
			if ep, err := r.fetchLegacyEndpoint(ctx, u.ID); err == nil {
				endpoint = ep.Endpoint
			} else {
				r.log.WithError(err).Debug("no legacy endpoint attrib")
			}
		}

		res.document = w3cdid.NewDocument(u.Namespace, nym.Dest, nym.Verkey, endpoint)
		objectType = "NYM"

	case ledger.GetSchema:
		res.content, objectType = json.RawMessage(data.Raw), "SCHEMA"
	case ledger.GetCredDef:
		res.content, objectType = json.RawMessage(data.Raw), "CRED_DEF"
	case ledger.GetRevocRegDef:
		res.content, objectType = json.RawMessage(data.Raw), "REVOC_REG_DEF"
	case ledger.GetRevocRegDelta:
		res.content, objectType = json.RawMessage(data.Raw), "REVOC_REG_DELTA"
	default:
		res.content, objectType = json.RawMessage(data.Raw), "UNKNOWN"
	}

	metadata := &ContentMetadata{
		NodeResponse: json.RawMessage(reply),
		ObjectType:   objectType,
	}

	return res, metadata, nil
}

func (r *Resolver) submit(ctx context.Context, req *ledger.PreparedRequest) (string, error) {
	reply, err := r.pool.SubmitRequest(ctx, req)
	if err != nil {
		r.log.WithError(err).Error("requesting data from ledger")
		return "", errors.Wrap(err, "submitting ledger request")
	}

	return reply, nil
}

func (r *Resolver) fetchLegacyEndpoint(ctx context.Context, subjectID string) (*Endpoint, error) {
	req, err := r.builder.BuildGetAttribRequest(subjectID, w3cdid.LegacyIndyService)
	if err != nil {
		return nil, err
	}

	reply, err := r.submit(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := parseLedgerData(reply)
	if err != nil {
		return nil, err
	}

	ep := &Endpoint{}
	if err := json.Unmarshal([]byte(payloadJSON(data)), ep); err != nil {
		return nil, errors.Wrap(err, "decoding endpoint attrib")
	}

	return ep, nil
}

// parseLedgerData extracts result.data from a raw reply. A null or
// missing field means the ledger answered but has no record.
func parseLedgerData(reply string) (gjson.Result, error) {
	if !gjson.Valid(reply) {
		return gjson.Result{}, errors.Wrap(ErrMalformedReply, "reply is not valid JSON")
	}

	data := gjson.Get(reply, "result.data")
	if !data.Exists() || data.Type == gjson.Null {
		return gjson.Result{}, ErrEmptyData
	}

	return data, nil
}

// hasDiddocContent reports whether a NYM carries an embedded document.
// The field may be omitted entirely or set to an explicit JSON null;
// both mean the NYM predates embedded documents.
func hasDiddocContent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// payloadJSON unwraps the payload for record kinds the ledger stores as
// JSON-encoded strings (NYM, ATTRIB)
func payloadJSON(data gjson.Result) string {
	if data.Type == gjson.String {
		return data.String()
	}

	return data.Raw
}
