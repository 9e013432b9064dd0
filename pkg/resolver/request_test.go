package resolver

import (
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/tcfw/indyres/pkg/did"
	"github.com/tcfw/indyres/pkg/ledger"
)

const (
	testDid    = "Dk1fRRTtNazyMuK2cr64wp"
	revRegPath = "/anoncreds/v0/REV_REG_ENTRY/104/revocable/a4e25e54"
	deltaPath  = "/anoncreds/v0/REV_REG_DELTA/104/revocable/a4e25e54"
)

func mustParse(t *testing.T, raw string) *did.URL {
	t.Helper()

	u, err := did.ParseURL(raw)
	if err != nil {
		t.Fatal(err)
	}

	return u
}

func TestBuildGetRevocRegRequestFromVersionTime(t *testing.T) {
	r := New(nil)

	versionTime := "2020-12-20T19:17:47Z"
	u := mustParse(t, "did:indy:idunion:"+testDid+revRegPath+"?versionTime="+versionTime)

	req, err := r.buildRequest(u)
	if err != nil {
		t.Fatal(err)
	}

	want, _ := time.Parse(time.RFC3339, versionTime)

	assert.Equal(t, ledger.GetRevocReg, req.TxnType)
	assert.Equal(t, want.Unix(), gjson.GetBytes(req.Body, "operation.timestamp").Int())
}

func TestBuildGetRevocRegRequestWithoutVersionTime(t *testing.T) {
	r := New(nil)
	now := time.Now().Unix()

	u := mustParse(t, "did:indy:idunion:"+testDid+revRegPath)

	req, err := r.buildRequest(u)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, ledger.GetRevocReg, req.TxnType)
	assert.GreaterOrEqual(t, gjson.GetBytes(req.Body, "operation.timestamp").Int(), now)
}

func TestBuildGetRevocRegRequestFailsWithUnparsableVersionTime(t *testing.T) {
	r := New(nil)

	u := mustParse(t, "did:indy:idunion:"+testDid+revRegPath+"?versionTime=20201220T19:17:47Z")

	_, err := r.buildRequest(u)
	assert.Equal(t, ErrMalformedTimestamp, errors.Cause(err))
}

func TestBuildGetRevocRegDeltaRequestWithFromTo(t *testing.T) {
	r := New(nil)

	u := mustParse(t, "did:indy:idunion:"+testDid+deltaPath+"?from=2019-12-20T19:17:47Z&to=2020-12-20T19:17:47Z")

	req, err := r.buildRequest(u)
	if err != nil {
		t.Fatal(err)
	}

	from, _ := time.Parse(time.RFC3339, "2019-12-20T19:17:47Z")
	to, _ := time.Parse(time.RFC3339, "2020-12-20T19:17:47Z")

	assert.Equal(t, ledger.GetRevocRegDelta, req.TxnType)
	assert.Equal(t, from.Unix(), gjson.GetBytes(req.Body, "operation.from").Int())
	assert.Equal(t, to.Unix(), gjson.GetBytes(req.Body, "operation.to").Int())
}

func TestBuildGetRevocRegDeltaRequestWithoutFrom(t *testing.T) {
	r := New(nil)
	now := time.Now().Unix()

	u := mustParse(t, "did:indy:idunion:"+testDid+deltaPath)

	req, err := r.buildRequest(u)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, ledger.GetRevocRegDelta, req.TxnType)
	assert.False(t, gjson.GetBytes(req.Body, "operation.from").Exists())
	assert.GreaterOrEqual(t, gjson.GetBytes(req.Body, "operation.to").Int(), now)
}

func TestBuildGetRevocRegDeltaRequestWithFromOnly(t *testing.T) {
	r := New(nil)
	now := time.Now().Unix()

	u := mustParse(t, "did:indy:idunion:"+testDid+deltaPath+"?from=2019-12-20T19:17:47Z")

	req, err := r.buildRequest(u)
	if err != nil {
		t.Fatal(err)
	}

	from, _ := time.Parse(time.RFC3339, "2019-12-20T19:17:47Z")

	assert.Equal(t, ledger.GetRevocRegDelta, req.TxnType)
	assert.Equal(t, from.Unix(), gjson.GetBytes(req.Body, "operation.from").Int())
	assert.GreaterOrEqual(t, gjson.GetBytes(req.Body, "operation.to").Int(), now)
}

func TestBuildGetRevocRegDeltaRequestFailsWithUnparsableBounds(t *testing.T) {
	r := New(nil)

	u := mustParse(t, "did:indy:idunion:"+testDid+deltaPath+"?from=notatime")
	_, err := r.buildRequest(u)
	assert.Equal(t, ErrMalformedTimestamp, errors.Cause(err))

	u = mustParse(t, "did:indy:idunion:"+testDid+deltaPath+"?to=notatime")
	_, err = r.buildRequest(u)
	assert.Equal(t, ErrMalformedTimestamp, errors.Cause(err))
}

func TestBuildGetSchemaRequestWithWhitespace(t *testing.T) {
	r := New(nil)

	name := "My Schema"
	u := mustParse(t, "did:indy:idunion:"+testDid+"/anoncreds/v0/SCHEMA/"+url.PathEscape(name)+"/1.0")

	req, err := r.buildRequest(u)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, ledger.GetSchema, req.TxnType)
	assert.Equal(t, name, gjson.GetBytes(req.Body, "operation.data.name").String())
}

func TestBuildGetNymRequestIgnoresVersionQuery(t *testing.T) {
	r := New(nil)

	u := mustParse(t, "did:indy:idunion:"+testDid+"?versionId=5")

	req, err := r.buildRequest(u)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, ledger.GetNym, req.TxnType)
	assert.False(t, gjson.GetBytes(req.Body, "operation.seqNo").Exists())
	assert.False(t, gjson.GetBytes(req.Body, "operation.timestamp").Exists())
}
