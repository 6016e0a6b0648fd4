/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok

import (
	math "github.com/IBM/mathlib"
	"github.com/hyperledger/aries-bbs-go/bbs"
)

type MessageKind int

const (
	// Revealed attributes are disclosed in the presentation.
	Revealed MessageKind = iota
	// HiddenProofSpecific attributes stay hidden behind a fresh blinding
	// factor chosen at commitment time, unique to one credential.
	HiddenProofSpecific
	// HiddenEquivalence attributes stay hidden behind a blinding factor
	// shared with the other members of their equivalence class.
	HiddenEquivalence
)

// AttributeMessage is the field-element encoding of one attribute together
// with its disclosure classification.
type AttributeMessage struct {
	Message  *bbs.SignatureMessage
	Kind     MessageKind
	Blinding *math.Zr // set only for HiddenEquivalence
}

// EncodeAttributes hashes every raw attribute into a field element and
// classifies it as revealed or hidden. An attribute is revealed iff its
// index appears in the revealed set; everything else is hidden behind a
// proof-specific blinding, pending possible reclassification by an
// equivalence class.
func EncodeAttributes(curve *math.Curve, attributes [][]byte, revealed map[int]struct{}) ([]*AttributeMessage, error) {
	for idx := range revealed {
		if idx < 0 || idx >= len(attributes) {
			return nil, newError(Validation, nil, "revealed index [%d] out of range for [%d] attributes", idx, len(attributes))
		}
	}

	msgs := make([]*AttributeMessage, len(attributes))
	for i, attr := range attributes {
		msgs[i] = &AttributeMessage{
			Message: &bbs.SignatureMessage{
				FR:  bbs.FrFromOKM(attr, curve),
				Idx: i,
			},
			Kind: HiddenProofSpecific,
		}

		if _, ok := revealed[i]; ok {
			msgs[i].Kind = Revealed
		}
	}

	return msgs, nil
}

// RevealedIndexSet converts a list of revealed indices into the set form
// consumed by EncodeAttributes.
func RevealedIndexSet(indices []int) map[int]struct{} {
	set := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		set[i] = struct{}{}
	}

	return set
}
