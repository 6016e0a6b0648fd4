/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package presentation

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	math "github.com/IBM/mathlib"
	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/aries-bbs-go/bbs"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/IBM/bbspresent/pok"
)

// CredentialInput is one credential the holder presents: the issued
// signature, the issuer public key it verifies against, the full ordered
// attribute list, and the indices the holder chooses to disclose.
type CredentialInput struct {
	Signature  []byte
	PublicKey  []byte
	Attributes [][]byte
	Revealed   []int
}

// ProofRequest describes a presentation over one or more credentials.
// Equivalences lists groups of attributes, addressed by (credential,
// attribute) position, asserted to carry the same hidden value.
type ProofRequest struct {
	Credentials  []CredentialInput
	Equivalences [][]pok.AttributeRef
	Nonce        []byte
}

// Prover builds presentation bundles.
type Prover struct {
	Curve *math.Curve
	Rng   io.Reader
}

// Prove builds the presentation: per-credential commitments run in
// parallel, the aggregate challenge is derived once over all of them plus
// the nonce, and the per-credential responses are finished in parallel with
// that single challenge.
func (p *Prover) Prove(ctx context.Context, req *ProofRequest) (*PresentationBundle, error) {
	if len(req.Credentials) == 0 {
		return nil, &pok.Error{Type: pok.Validation, ErrorMsg: "proof request contains no credentials"}
	}

	for _, class := range req.Equivalences {
		for _, ref := range class {
			if ref.Credential < 0 || ref.Credential >= len(req.Credentials) {
				return nil, &pok.Error{Type: pok.Validation, ErrorMsg: fmt.Sprintf("equivalence class references credential [%d] of [%d]", ref.Credential, len(req.Credentials))}
			}

			if ref.Attribute < 0 || ref.Attribute >= len(req.Credentials[ref.Credential].Attributes) {
				return nil, &pok.Error{Type: pok.Validation, ErrorMsg: fmt.Sprintf("equivalence class references attribute [%d] of [%d] in credential [%d]", ref.Attribute, len(req.Credentials[ref.Credential].Attributes), ref.Credential)}
			}
		}
	}

	rng := p.Rng
	if rng == nil {
		rng = rand.Reader
	}

	equivSet, err := pok.ResolveEquivalences(p.Curve, rng, req.Equivalences)
	if err != nil {
		return nil, err
	}

	lib := bbs.NewBBSLib(p.Curve)

	states := make([]*pok.ProofState, len(req.Credentials))
	eg, _ := errgroup.WithContext(ctx)
	for k := range req.Credentials {
		k := k
		eg.Go(func() error {
			cred := &req.Credentials[k]

			msgs, err := pok.EncodeAttributes(p.Curve, cred.Attributes, pok.RevealedIndexSet(cred.Revealed))
			if err != nil {
				return errors.Wrapf(err, "credential %d", k)
			}

			equivSet.ApplyTo(k, msgs)

			pubKey, err := lib.UnmarshalPublicKey(cred.PublicKey)
			if err != nil {
				return &pok.Error{Type: pok.CryptoOperation, ErrorMsg: "unmarshal public key", Cause: err}
			}

			pkwg, err := pubKey.ToPublicKeyWithGenerators(len(cred.Attributes))
			if err != nil {
				return &pok.Error{Type: pok.CryptoOperation, ErrorMsg: "build public key generators", Cause: err}
			}

			states[k], err = pok.BuildCommitment(p.Curve, cred.Signature, pkwg, msgs)
			if err != nil {
				return errors.Wrapf(err, "credential %d", k)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	challenge, err := pok.AggregateChallenge(p.Curve, states, req.Nonce)
	if err != nil {
		return nil, err
	}

	proofs := make([]*pok.CredentialProof, len(states))
	eg, _ = errgroup.WithContext(ctx)
	for k := range states {
		k := k
		eg.Go(func() error {
			var err error
			proofs[k], err = states[k].Finish(challenge)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return assembleBundle(proofs, equivSet.Declarations(), req.Nonce), nil
}

// ProveBytes is Prove followed by proto serialization, the form in which a
// presentation crosses the host boundary.
func (p *Prover) ProveBytes(ctx context.Context, req *ProofRequest) ([]byte, error) {
	bundle, err := p.Prove(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, err := proto.Marshal(bundle)
	if err != nil {
		return nil, errors.Wrap(err, "marshal presentation bundle")
	}

	return raw, nil
}

func assembleBundle(proofs []*pok.CredentialProof, equivalences [][]pok.AttributeRef, nonce []byte) *PresentationBundle {
	bundle := &PresentationBundle{
		CredentialProofs: make([]*CredentialProof, len(proofs)),
		Equivalences:     make([]*EquivalenceClass, len(equivalences)),
		Nonce:            nonce,
	}

	for k, cp := range proofs {
		revealed := make([]uint32, len(cp.Revealed))
		for i, idx := range cp.Revealed {
			revealed[i] = uint32(idx)
		}

		bundle.CredentialProofs[k] = &CredentialProof{
			RevealedIndices: revealed,
			MessageCount:    uint32(cp.MessageCount),
			Proof:           cp.Proof,
		}
	}

	for i, class := range equivalences {
		members := make([]*AttributeRef, len(class))
		for j, ref := range class {
			members[j] = &AttributeRef{
				Credential: uint32(ref.Credential),
				Attribute:  uint32(ref.Attribute),
			}
		}

		bundle.Equivalences[i] = &EquivalenceClass{Members: members}
	}

	return bundle
}
