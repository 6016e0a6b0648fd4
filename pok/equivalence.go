/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package pok

import (
	"io"

	math "github.com/IBM/mathlib"
)

// AttributeRef identifies one attribute of one credential within a
// presentation, both zero-based and in presentation order.
type AttributeRef struct {
	Credential int
	Attribute  int
}

// EquivalenceClass is a set of attributes, possibly from different
// credentials, asserted to carry the same underlying value. The class owns
// exactly one blinding scalar, generated fresh for each presentation and
// never revealed.
type EquivalenceClass struct {
	Members  []AttributeRef
	blinding *math.Zr
}

// EquivalenceSet is the arena of equivalence classes of one presentation.
type EquivalenceSet struct {
	Classes []*EquivalenceClass

	byRef map[AttributeRef]int
}

// ResolveEquivalences builds the equivalence-class arena for a presentation.
// Each input group gets one fresh shared blinding scalar. An attribute may
// belong to at most one class.
func ResolveEquivalences(curve *math.Curve, rng io.Reader, links [][]AttributeRef) (*EquivalenceSet, error) {
	set := &EquivalenceSet{
		Classes: make([]*EquivalenceClass, 0, len(links)),
		byRef:   make(map[AttributeRef]int),
	}

	for _, members := range links {
		if len(members) == 0 {
			return nil, newError(Validation, nil, "empty equivalence class")
		}

		class := &EquivalenceClass{
			Members:  append([]AttributeRef{}, members...),
			blinding: curve.NewRandomZr(rng),
		}

		for _, ref := range members {
			if ref.Credential < 0 || ref.Attribute < 0 {
				return nil, newError(Validation, nil, "negative attribute reference [%d, %d]", ref.Credential, ref.Attribute)
			}

			if _, ok := set.byRef[ref]; ok {
				return nil, newError(Validation, nil, "attribute [%d] of credential [%d] appears in more than one equivalence class", ref.Attribute, ref.Credential)
			}

			set.byRef[ref] = len(set.Classes)
		}

		set.Classes = append(set.Classes, class)
	}

	return set, nil
}

// Lookup returns the shared blinding of the class ref belongs to, if any.
func (s *EquivalenceSet) Lookup(ref AttributeRef) (*math.Zr, bool) {
	if s == nil {
		return nil, false
	}

	ci, ok := s.byRef[ref]
	if !ok {
		return nil, false
	}

	return s.Classes[ci].blinding, true
}

// ApplyTo reclassifies the attributes of one credential that belong to an
// equivalence class. A matched attribute becomes HiddenEquivalence with the
// class blinding, overriding its earlier classification: the shared scalar
// is what carries the cross-credential equality, so it takes precedence
// over disclosure.
func (s *EquivalenceSet) ApplyTo(credential int, msgs []*AttributeMessage) {
	for i, msg := range msgs {
		blinding, ok := s.Lookup(AttributeRef{Credential: credential, Attribute: i})
		if !ok {
			continue
		}

		msg.Kind = HiddenEquivalence
		msg.Blinding = blinding
	}
}

// Declarations returns the class membership lists in arena order, for
// inclusion in the presentation bundle.
func (s *EquivalenceSet) Declarations() [][]AttributeRef {
	if s == nil {
		return nil
	}

	decls := make([][]AttributeRef, len(s.Classes))
	for i, class := range s.Classes {
		decls[i] = append([]AttributeRef{}, class.Members...)
	}

	return decls
}
