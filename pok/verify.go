/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok

import (
	math "github.com/IBM/mathlib"
	"github.com/hyperledger/aries-bbs-go/bbs"
	"golang.org/x/sync/errgroup"
)

type credentialCheck struct {
	proof        *bbs.PoKOfSignatureProof
	revealedMap  map[int]*bbs.SignatureMessage
	revealedMsgs []*bbs.SignatureMessage
	revealedSet  map[int]struct{}
	messageCount int
}

// VerifyPresentation checks every credential proof of a presentation
// against the single aggregate challenge, then checks the declared
// equivalence classes. It fails on the first credential that does not
// verify; a nil return means the whole presentation is valid.
//
// revealedValues carries, per credential, the raw attribute values claimed
// for that credential's revealed indices, in index order.
func VerifyPresentation(
	curve *math.Curve,
	proofs []*CredentialProof,
	publicKeys []*bbs.PublicKeyWithGenerators,
	revealedValues [][][]byte,
	equivalences [][]AttributeRef,
	nonce []byte,
) error {
	if len(proofs) == 0 {
		return newError(Validation, nil, "presentation contains no credential proofs")
	}

	if len(publicKeys) != len(proofs) {
		return newError(Validation, nil, "public key count [%d] does not match proof count [%d]", len(publicKeys), len(proofs))
	}

	if len(revealedValues) != len(proofs) {
		return newError(Validation, nil, "revealed value count [%d] does not match proof count [%d]", len(revealedValues), len(proofs))
	}

	lib := bbs.NewBBSLib(curve)

	checks := make([]*credentialCheck, len(proofs))
	challengeBytes := []byte(challengeLabel)
	for k, cp := range proofs {
		check, err := newCredentialCheck(curve, lib, k, cp, revealedValues[k])
		if err != nil {
			return err
		}

		checks[k] = check
		challengeBytes = append(challengeBytes, check.proof.GetBytesForChallenge(check.revealedMap, publicKeys[k])...)
	}
	challengeBytes = append(challengeBytes, NonceBlock(curve, nonce)...)
	challenge := bbs.FrFromOKM(challengeBytes, curve)

	// linked attributes were committed with a shared blinding, so under the
	// shared challenge their response scalars must coincide.
	if err := verifyEquivalences(checks, equivalences); err != nil {
		return err
	}

	var eg errgroup.Group
	for k := range checks {
		k := k
		eg.Go(func() error {
			err := checks[k].proof.Verify(challenge, publicKeys[k], checks[k].revealedMap, checks[k].revealedMsgs)
			if err != nil {
				return newError(CryptoOperation, err, "credential [%d]", k)
			}

			return nil
		})
	}

	return eg.Wait()
}

func newCredentialCheck(curve *math.Curve, lib *bbs.BBSLib, k int, cp *CredentialProof, values [][]byte) (*credentialCheck, error) {
	if cp.MessageCount <= 0 {
		return nil, newError(Validation, nil, "credential [%d]: non-positive message count [%d]", k, cp.MessageCount)
	}

	if len(values) != len(cp.Revealed) {
		return nil, newError(Validation, nil, "credential [%d]: [%d] revealed values supplied for [%d] revealed indices", k, len(values), len(cp.Revealed))
	}

	proof, err := lib.ParseSignatureProof(cp.Proof)
	if err != nil {
		return nil, newError(CryptoOperation, err, "credential [%d]: parse signature proof", k)
	}

	check := &credentialCheck{
		proof:        proof,
		revealedMap:  make(map[int]*bbs.SignatureMessage, len(cp.Revealed)),
		revealedMsgs: make([]*bbs.SignatureMessage, 0, len(cp.Revealed)),
		revealedSet:  make(map[int]struct{}, len(cp.Revealed)),
		messageCount: cp.MessageCount,
	}

	prev := -1
	for i, idx := range cp.Revealed {
		if idx <= prev || idx >= cp.MessageCount {
			return nil, newError(Validation, nil, "credential [%d]: invalid revealed index [%d]", k, idx)
		}
		prev = idx

		msg := &bbs.SignatureMessage{
			FR:  bbs.FrFromOKM(values[i], curve),
			Idx: idx,
		}

		check.revealedMap[idx] = msg
		check.revealedMsgs = append(check.revealedMsgs, msg)
		check.revealedSet[idx] = struct{}{}
	}

	return check, nil
}

func verifyEquivalences(checks []*credentialCheck, equivalences [][]AttributeRef) error {
	for _, class := range equivalences {
		var first *math.Zr

		for _, ref := range class {
			if ref.Credential < 0 || ref.Credential >= len(checks) {
				return newError(Validation, nil, "equivalence class references credential [%d] of [%d]", ref.Credential, len(checks))
			}

			response, err := hiddenResponse(checks[ref.Credential], ref)
			if err != nil {
				return err
			}

			if first == nil {
				first = response
				continue
			}

			if !first.Equals(response) {
				return newError(CryptoOperation, nil, "failed equality proof")
			}
		}
	}

	return nil
}

// hiddenResponse locates the response scalar of a hidden attribute inside
// the credential's VC2 proof. The VC2 responses are laid out as
// [D, s~, hidden attributes in ascending index order], so the attribute's
// position is the offset plus its rank among the hidden indices.
func hiddenResponse(check *credentialCheck, ref AttributeRef) (*math.Zr, error) {
	if ref.Attribute < 0 || ref.Attribute >= check.messageCount {
		return nil, newError(Validation, nil, "equivalence class references attribute [%d] of [%d] in credential [%d]", ref.Attribute, check.messageCount, ref.Credential)
	}

	if _, ok := check.revealedSet[ref.Attribute]; ok {
		return nil, newError(CryptoOperation, nil, "equivalence attribute [%d] of credential [%d] is revealed", ref.Attribute, ref.Credential)
	}

	rank := 0
	for idx := range check.revealedSet {
		if idx < ref.Attribute {
			rank++
		}
	}
	pos := IndexOffsetVC2Attributes + ref.Attribute - rank

	if pos >= len(check.proof.ProofVC2.Responses) {
		return nil, newError(CryptoOperation, nil, "credential [%d]: malformed proof, no response at position [%d]", ref.Credential, pos)
	}

	return check.proof.ProofVC2.Responses[pos], nil
}
