/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok_test

import (
	"crypto/rand"
	"testing"

	math "github.com/IBM/mathlib"
	"github.com/hyperledger/aries-bbs-go/bbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBM/bbspresent/credential"
	"github.com/IBM/bbspresent/pok"
)

func testCurve() *math.Curve {
	return math.Curves[math.BLS12_381_BBS]
}

type testCredential struct {
	sig     []byte
	pkBytes []byte
	pkwg    *bbs.PublicKeyWithGenerators
	attrs   [][]byte
}

func issueTestCredential(t *testing.T, curve *math.Curve, attrs [][]byte) *testCredential {
	keyPair, err := credential.GenerateKeyPair(curve, nil)
	require.NoError(t, err)

	skBytes, err := keyPair.SecretKeyBytes()
	require.NoError(t, err)
	pkBytes, err := keyPair.PublicKeyBytes()
	require.NoError(t, err)

	sig, err := credential.Issue(curve, skBytes, attrs)
	require.NoError(t, err)

	pk, err := bbs.NewBBSLib(curve).UnmarshalPublicKey(pkBytes)
	require.NoError(t, err)
	pkwg, err := pk.ToPublicKeyWithGenerators(len(attrs))
	require.NoError(t, err)

	return &testCredential{
		sig:     sig,
		pkBytes: pkBytes,
		pkwg:    pkwg,
		attrs:   attrs,
	}
}

func TestEncodeAttributes(t *testing.T) {
	curve := testCurve()

	attrs := [][]byte{[]byte("alice"), []byte("30"), []byte("US")}

	msgs, err := pok.EncodeAttributes(curve, attrs, pok.RevealedIndexSet([]int{0, 2}))
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Equal(t, pok.Revealed, msgs[0].Kind)
	assert.Equal(t, pok.HiddenProofSpecific, msgs[1].Kind)
	assert.Equal(t, pok.Revealed, msgs[2].Kind)

	for i, msg := range msgs {
		assert.Equal(t, i, msg.Message.Idx)
		assert.True(t, msg.Message.FR.Equals(bbs.FrFromOKM(attrs[i], curve)))
		assert.Nil(t, msg.Blinding)
	}
}

func TestEncodeAttributesIndexOutOfRange(t *testing.T) {
	curve := testCurve()

	attrs := [][]byte{[]byte("alice"), []byte("30")}

	_, err := pok.EncodeAttributes(curve, attrs, pok.RevealedIndexSet([]int{2}))
	require.Error(t, err)
	assert.True(t, pok.IsValidationError(err))
	assert.Contains(t, err.Error(), "out of range")

	_, err = pok.EncodeAttributes(curve, attrs, pok.RevealedIndexSet([]int{-1}))
	require.Error(t, err)
	assert.True(t, pok.IsValidationError(err))
}

func TestResolveEquivalences(t *testing.T) {
	curve := testCurve()

	links := [][]pok.AttributeRef{
		{{Credential: 0, Attribute: 1}, {Credential: 1, Attribute: 0}},
	}

	set, err := pok.ResolveEquivalences(curve, rand.Reader, links)
	require.NoError(t, err)
	require.Len(t, set.Classes, 1)

	b0, ok := set.Lookup(pok.AttributeRef{Credential: 0, Attribute: 1})
	require.True(t, ok)
	b1, ok := set.Lookup(pok.AttributeRef{Credential: 1, Attribute: 0})
	require.True(t, ok)
	assert.True(t, b0.Equals(b1))

	_, ok = set.Lookup(pok.AttributeRef{Credential: 0, Attribute: 0})
	assert.False(t, ok)

	// fresh blindings per resolution
	set2, err := pok.ResolveEquivalences(curve, rand.Reader, links)
	require.NoError(t, err)
	b2, ok := set2.Lookup(pok.AttributeRef{Credential: 0, Attribute: 1})
	require.True(t, ok)
	assert.False(t, b0.Equals(b2))
}

func TestResolveEquivalencesRejectsDuplicateMembership(t *testing.T) {
	curve := testCurve()

	links := [][]pok.AttributeRef{
		{{Credential: 0, Attribute: 1}, {Credential: 1, Attribute: 0}},
		{{Credential: 0, Attribute: 1}, {Credential: 1, Attribute: 1}},
	}

	_, err := pok.ResolveEquivalences(curve, rand.Reader, links)
	require.Error(t, err)
	assert.True(t, pok.IsValidationError(err))
	assert.Contains(t, err.Error(), "more than one equivalence class")
}

func TestEquivalenceOverridesDisclosure(t *testing.T) {
	curve := testCurve()

	attrs := [][]byte{[]byte("alice"), []byte("secret")}

	msgs, err := pok.EncodeAttributes(curve, attrs, pok.RevealedIndexSet([]int{0, 1}))
	require.NoError(t, err)

	set, err := pok.ResolveEquivalences(curve, rand.Reader, [][]pok.AttributeRef{
		{{Credential: 0, Attribute: 1}, {Credential: 1, Attribute: 0}},
	})
	require.NoError(t, err)

	set.ApplyTo(0, msgs)

	assert.Equal(t, pok.Revealed, msgs[0].Kind)
	assert.Equal(t, pok.HiddenEquivalence, msgs[1].Kind)
	require.NotNil(t, msgs[1].Blinding)

	cred := issueTestCredential(t, curve, attrs)

	state, err := pok.BuildCommitment(curve, cred.sig, cred.pkwg, msgs)
	require.NoError(t, err)

	// the linked attribute is pruned from the effective revealed set
	assert.Equal(t, []int{0}, state.Revealed())
	assert.Equal(t, 2, state.MessageCount())
}

func TestChallengeDeterminism(t *testing.T) {
	curve := testCurve()

	cred := issueTestCredential(t, curve, [][]byte{[]byte("alice"), []byte("30"), []byte("US")})

	msgs, err := pok.EncodeAttributes(curve, cred.attrs, pok.RevealedIndexSet([]int{0}))
	require.NoError(t, err)

	state, err := pok.BuildCommitment(curve, cred.sig, cred.pkwg, msgs)
	require.NoError(t, err)

	states := []*pok.ProofState{state}

	c1, err := pok.AggregateChallenge(curve, states, []byte("nonce A"))
	require.NoError(t, err)
	c2, err := pok.AggregateChallenge(curve, states, []byte("nonce A"))
	require.NoError(t, err)
	assert.True(t, c1.Equals(c2))

	c3, err := pok.AggregateChallenge(curve, states, []byte("nonce B"))
	require.NoError(t, err)
	assert.False(t, c1.Equals(c3))

	c4, err := pok.AggregateChallenge(curve, states, nil)
	require.NoError(t, err)
	assert.False(t, c1.Equals(c4))
	assert.False(t, c3.Equals(c4))
}

func TestAggregateChallengeRejectsEmptyInput(t *testing.T) {
	curve := testCurve()

	_, err := pok.AggregateChallenge(curve, nil, nil)
	require.Error(t, err)
	assert.True(t, pok.IsValidationError(err))
}

func TestNonceBlockWidth(t *testing.T) {
	curve := testCurve()

	empty := pok.NonceBlock(curve, nil)
	hashed := pok.NonceBlock(curve, []byte("nonce"))

	assert.Len(t, empty, curve.ScalarByteSize)
	assert.Len(t, hashed, curve.ScalarByteSize)
	assert.Equal(t, make([]byte, curve.ScalarByteSize), empty)
	assert.NotEqual(t, empty, hashed)
}

func TestProofStateConsumedOnce(t *testing.T) {
	curve := testCurve()

	cred := issueTestCredential(t, curve, [][]byte{[]byte("alice"), []byte("30")})

	msgs, err := pok.EncodeAttributes(curve, cred.attrs, pok.RevealedIndexSet([]int{0}))
	require.NoError(t, err)

	state, err := pok.BuildCommitment(curve, cred.sig, cred.pkwg, msgs)
	require.NoError(t, err)

	challenge, err := pok.AggregateChallenge(curve, []*pok.ProofState{state}, nil)
	require.NoError(t, err)

	_, err = state.Finish(challenge)
	require.NoError(t, err)

	_, err = state.Finish(challenge)
	require.Error(t, err)
	assert.True(t, pok.IsInternalError(err))
	assert.Contains(t, err.Error(), "already consumed")
}

func TestSingleCredentialRoundTrip(t *testing.T) {
	curve := testCurve()

	cred := issueTestCredential(t, curve, [][]byte{[]byte("alice"), []byte("30"), []byte("US")})

	msgs, err := pok.EncodeAttributes(curve, cred.attrs, pok.RevealedIndexSet([]int{0, 2}))
	require.NoError(t, err)

	state, err := pok.BuildCommitment(curve, cred.sig, cred.pkwg, msgs)
	require.NoError(t, err)

	challenge, err := pok.AggregateChallenge(curve, []*pok.ProofState{state}, nil)
	require.NoError(t, err)

	proof, err := state.Finish(challenge)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, proof.Revealed)
	assert.Equal(t, 3, proof.MessageCount)

	err = pok.VerifyPresentation(
		curve,
		[]*pok.CredentialProof{proof},
		[]*bbs.PublicKeyWithGenerators{cred.pkwg},
		[][][]byte{{[]byte("alice"), []byte("US")}},
		nil,
		nil,
	)
	require.NoError(t, err)

	// a wrong revealed value must not verify
	err = pok.VerifyPresentation(
		curve,
		[]*pok.CredentialProof{proof},
		[]*bbs.PublicKeyWithGenerators{cred.pkwg},
		[][][]byte{{[]byte("bob"), []byte("US")}},
		nil,
		nil,
	)
	require.Error(t, err)
	assert.True(t, pok.IsCryptoOperationError(err))
}

func TestMultiCredentialEquivalence(t *testing.T) {
	curve := testCurve()

	shared := []byte("secret value")

	cred0 := issueTestCredential(t, curve, [][]byte{[]byte("alice"), shared, []byte("US")})
	cred1 := issueTestCredential(t, curve, [][]byte{shared, []byte("acme")})

	links := [][]pok.AttributeRef{
		{{Credential: 0, Attribute: 1}, {Credential: 1, Attribute: 0}},
	}

	proofs, err := buildPresentation(t, curve, []*testCredential{cred0, cred1}, [][]int{{0}, {1}}, links, []byte("nonce"))
	require.NoError(t, err)

	err = pok.VerifyPresentation(
		curve,
		proofs,
		[]*bbs.PublicKeyWithGenerators{cred0.pkwg, cred1.pkwg},
		[][][]byte{{[]byte("alice")}, {[]byte("acme")}},
		links,
		[]byte("nonce"),
	)
	require.NoError(t, err)
}

func TestMultiCredentialEquivalenceUnequalValues(t *testing.T) {
	curve := testCurve()

	cred0 := issueTestCredential(t, curve, [][]byte{[]byte("alice"), []byte("one value"), []byte("US")})
	cred1 := issueTestCredential(t, curve, [][]byte{[]byte("another value"), []byte("acme")})

	links := [][]pok.AttributeRef{
		{{Credential: 0, Attribute: 1}, {Credential: 1, Attribute: 0}},
	}

	proofs, err := buildPresentation(t, curve, []*testCredential{cred0, cred1}, [][]int{{0}, {1}}, links, []byte("nonce"))
	require.NoError(t, err)

	err = pok.VerifyPresentation(
		curve,
		proofs,
		[]*bbs.PublicKeyWithGenerators{cred0.pkwg, cred1.pkwg},
		[][][]byte{{[]byte("alice")}, {[]byte("acme")}},
		links,
		[]byte("nonce"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed equality proof")
}

func TestEquivalenceWithRevealedAttributesBeforeLink(t *testing.T) {
	curve := testCurve()

	shared := []byte("shared identifier")

	// revealed attributes preceding the linked one shift its position
	// among the hidden responses
	cred0 := issueTestCredential(t, curve, [][]byte{[]byte("alice"), []byte("30"), []byte("US"), shared})
	cred1 := issueTestCredential(t, curve, [][]byte{[]byte("acme"), shared})

	links := [][]pok.AttributeRef{
		{{Credential: 0, Attribute: 3}, {Credential: 1, Attribute: 1}},
	}

	proofs, err := buildPresentation(t, curve, []*testCredential{cred0, cred1}, [][]int{{0, 2}, {0}}, links, []byte("nonce"))
	require.NoError(t, err)

	err = pok.VerifyPresentation(
		curve,
		proofs,
		[]*bbs.PublicKeyWithGenerators{cred0.pkwg, cred1.pkwg},
		[][][]byte{{[]byte("alice"), []byte("US")}, {[]byte("acme")}},
		links,
		[]byte("nonce"),
	)
	require.NoError(t, err)

	cred2 := issueTestCredential(t, curve, [][]byte{[]byte("acme"), []byte("different identifier")})

	proofs, err = buildPresentation(t, curve, []*testCredential{cred0, cred2}, [][]int{{0, 2}, {0}}, links, []byte("nonce"))
	require.NoError(t, err)

	err = pok.VerifyPresentation(
		curve,
		proofs,
		[]*bbs.PublicKeyWithGenerators{cred0.pkwg, cred2.pkwg},
		[][][]byte{{[]byte("alice"), []byte("US")}, {[]byte("acme")}},
		links,
		[]byte("nonce"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed equality proof")
}

func TestVerifyPresentationLengthMismatch(t *testing.T) {
	curve := testCurve()

	cred := issueTestCredential(t, curve, [][]byte{[]byte("alice"), []byte("30")})

	proofs, err := buildPresentation(t, curve, []*testCredential{cred}, [][]int{{0}}, nil, nil)
	require.NoError(t, err)

	err = pok.VerifyPresentation(
		curve,
		proofs,
		[]*bbs.PublicKeyWithGenerators{cred.pkwg, cred.pkwg},
		[][][]byte{{[]byte("alice")}},
		nil,
		nil,
	)
	require.Error(t, err)
	assert.True(t, pok.IsValidationError(err))
	assert.Contains(t, err.Error(), "public key count")
}

func buildPresentation(
	t *testing.T,
	curve *math.Curve,
	creds []*testCredential,
	revealed [][]int,
	links [][]pok.AttributeRef,
	nonce []byte,
) ([]*pok.CredentialProof, error) {
	set, err := pok.ResolveEquivalences(curve, rand.Reader, links)
	require.NoError(t, err)

	states := make([]*pok.ProofState, len(creds))
	for k, cred := range creds {
		msgs, err := pok.EncodeAttributes(curve, cred.attrs, pok.RevealedIndexSet(revealed[k]))
		require.NoError(t, err)

		set.ApplyTo(k, msgs)

		states[k], err = pok.BuildCommitment(curve, cred.sig, cred.pkwg, msgs)
		require.NoError(t, err)
	}

	challenge, err := pok.AggregateChallenge(curve, states, nonce)
	require.NoError(t, err)

	proofs := make([]*pok.CredentialProof, len(states))
	for k, state := range states {
		proofs[k], err = state.Finish(challenge)
		require.NoError(t, err)
	}

	return proofs, nil
}
