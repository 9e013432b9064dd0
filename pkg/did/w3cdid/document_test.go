package w3cdid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testDid    = "Dk1fRRTtNazyMuK2cr64wp"
	testVerkey = "3ARMH9zfVCnU2TKiphU4xcEyWdA45fc1sjKEtYMdf3gr"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("idunion", testDid, testVerkey, nil)

	assert.Equal(t, "did:indy:idunion:"+testDid, doc.ID)
	assert.Equal(t, []string{ContextV1}, doc.Context)
	assert.Len(t, doc.VerificationMethod, 1)
	assert.Equal(t, doc.ID+"#verkey", doc.VerificationMethod[0].ID)
	assert.Equal(t, testVerkey, doc.VerificationMethod[0].PublicKeyBase58)
	assert.Equal(t, []string{doc.ID + "#verkey"}, doc.Authentication)
	assert.Empty(t, doc.Service)
}

func TestNewDocumentLegacyEndpoint(t *testing.T) {
	doc := NewDocument("idunion", testDid, testVerkey, map[string]string{
		"endpoint": "https://agent.example.com",
		"profile":  "https://example.com/profile",
	})

	if !assert.Len(t, doc.Service, 2) {
		t.FailNow()
	}

	assert.Equal(t, "did-communication", doc.Service[0].Type)
	assert.Equal(t, doc.ID+"#did-communication", doc.Service[0].ID)
	assert.Equal(t, "https://agent.example.com", doc.Service[0].ServiceEndpoint)

	assert.Equal(t, "profile", doc.Service[1].Type)
	assert.Equal(t, "https://example.com/profile", doc.Service[1].ServiceEndpoint)
}

func TestExpandVerkey(t *testing.T) {
	full := ExpandVerkey(testDid, "~12drXXUifSrRnXLGbXg8E")
	assert.Equal(t, "7wncFz7nxq5aLd1uSS82R3c1cCcLeLtwSs17txKPiKYz", full)
}

func TestExpandVerkeyPassthrough(t *testing.T) {
	assert.Equal(t, testVerkey, ExpandVerkey(testDid, testVerkey))
	assert.Equal(t, "~not!base58", ExpandVerkey(testDid, "~not!base58"))
}
