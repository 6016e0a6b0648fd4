/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok

import (
	math "github.com/IBM/mathlib"
)

// CredentialProof is the finished, serializable per-credential proof
// together with the bookkeeping the verifier needs to reconstruct the
// credential's index space.
type CredentialProof struct {
	Proof        []byte
	Revealed     []int
	MessageCount int
}

// Finish runs the response phase for one credential with the shared
// presentation challenge. The state is consumed: a second call fails.
func (s *ProofState) Finish(challenge *math.Zr) (*CredentialProof, error) {
	if s.consumed {
		return nil, newError(Internal, nil, "proof state already consumed")
	}
	s.consumed = true

	proof := s.pok.GenerateProof(challenge)

	return &CredentialProof{
		Proof:        proof.ToBytes(),
		Revealed:     append([]int{}, s.revealed...),
		MessageCount: s.messageCount,
	}, nil
}

// Revealed returns the effective revealed index list of this credential,
// sorted ascending. Attributes claimed by an equivalence class are not in
// it even when the caller originally asked for their disclosure.
func (s *ProofState) Revealed() []int {
	return append([]int{}, s.revealed...)
}

// MessageCount returns the number of attributes the credential covers.
func (s *ProofState) MessageCount() int {
	return s.messageCount
}
