/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok

import (
	math "github.com/IBM/mathlib"
	"github.com/hyperledger/aries-bbs-go/bbs"
)

const challengeLabel = "present"

// AggregateChallenge derives the single Fiat-Shamir challenge of a
// presentation: the transcript bytes of every proof state, concatenated in
// credential order, followed by the nonce block, hashed to a scalar. The
// same scalar finishes every credential's proof; that reuse is what binds
// the credentials into one presentation.
func AggregateChallenge(curve *math.Curve, states []*ProofState, nonce []byte) (*math.Zr, error) {
	if len(states) == 0 {
		return nil, newError(Validation, nil, "no proof states to aggregate")
	}

	challengeBytes := []byte(challengeLabel)
	for _, state := range states {
		challengeBytes = append(challengeBytes, state.pok.ToBytes()...)
	}
	challengeBytes = append(challengeBytes, NonceBlock(curve, nonce)...)

	return bbs.FrFromOKM(challengeBytes, curve), nil
}

// NonceBlock is the fixed-width transcript contribution of the presentation
// nonce: the hash of the nonce when one is supplied, a zero block of the
// same width otherwise. The placeholder keeps transcripts with and without
// a nonce aligned, so the two cases cannot be confused.
func NonceBlock(curve *math.Curve, nonce []byte) []byte {
	if len(nonce) == 0 {
		return make([]byte, curve.ScalarByteSize)
	}

	return bbs.FrFromOKM(nonce, curve).Bytes()
}
