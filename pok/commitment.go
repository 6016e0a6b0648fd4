/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok

import (
	math "github.com/IBM/mathlib"
	"github.com/hyperledger/aries-bbs-go/bbs"
)

// IndexOffsetVC2Attributes is the position of the first attribute blinding
// in the VC2 commitment: index 0 is for D, index 1 for s~, attributes start
// at 2 in hidden-index order.
const IndexOffsetVC2Attributes = 2

// ProofState is the per-credential commitment artifact produced before the
// challenge is known. It is consumed exactly once by Finish and never
// crosses the presentation boundary.
type ProofState struct {
	pok          *bbs.PoKOfSignature
	revealed     []int
	messageCount int
	consumed     bool
}

// BuildCommitment parses sigBytes and runs the first move of the signature
// PoK over the classified messages. Attributes in an equivalence class have
// the fresh blinding chosen by the primitive replaced with the shared class
// blinding, and the commitment is rebuilt accordingly.
func BuildCommitment(curve *math.Curve, sigBytes []byte, pubKey *bbs.PublicKeyWithGenerators, msgs []*AttributeMessage) (*ProofState, error) {
	lib := bbs.NewBBSLib(curve)

	signature, err := lib.ParseSignature(sigBytes)
	if err != nil {
		return nil, newError(CryptoOperation, err, "parse signature")
	}

	messagesFr := make([]*bbs.SignatureMessage, len(msgs))
	revealed := make([]int, 0, len(msgs))
	for i, msg := range msgs {
		messagesFr[i] = msg.Message
		if msg.Kind == Revealed {
			revealed = append(revealed, i)
		}
	}

	pokOS, err := lib.NewPoKOfSignature(signature, messagesFr, revealed, pubKey)
	if err != nil {
		return nil, newError(CryptoOperation, err, "proof init")
	}

	forced := false
	for _, msg := range msgs {
		if msg.Kind != HiddenEquivalence {
			continue
		}

		pos, err := indexOfAttributeInCommitment(pokOS.PokVC2, msg.Message.Idx, pubKey)
		if err != nil {
			return nil, err
		}

		// we force the shared blinding factor into the commitment so that
		// every member of the equivalence class produces the same response
		// scalar under the shared challenge.
		pokOS.PokVC2.BlindingFactors[pos] = msg.Blinding.Copy()
		forced = true
	}

	if forced {
		cb := bbs.NewCommitmentBuilder(len(pokOS.PokVC2.Bases))
		for i := range pokOS.PokVC2.Bases {
			cb.Add(pokOS.PokVC2.Bases[i], pokOS.PokVC2.BlindingFactors[i])
		}
		pokOS.PokVC2.Commitment = cb.Build()
	}

	return &ProofState{
		pok:          pokOS,
		revealed:     revealed,
		messageCount: len(msgs),
	}, nil
}

func indexOfAttributeInCommitment(
	c *bbs.ProverCommittedG1,
	indexInPk int,
	pubKey *bbs.PublicKeyWithGenerators,
) (int, error) {
	base := pubKey.H[indexInPk]

	for i, h_i := range c.Bases {
		if base.Equals(h_i) {
			return i, nil
		}
	}

	return -1, newError(Internal, nil, "attribute [%d] not found in commitment", indexInPk)
}
