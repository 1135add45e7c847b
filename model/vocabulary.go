// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model is the normative model: the in-memory domain object graph a
// hydrator assembles from source text (communities, roles, artifacts,
// events, speech-acts, deontic tokens — Clause 6 of the ODP enterprise
// viewpoint). Every type here is immutable once constructed, with
// structural equality on its fields. Beyond accessors, the behaviour here
// is EventExpression.Evaluate, NumberInterval.Contains, and the
// construction-time checks (Community.BuildIndexes,
// Model.ValidateImportGraph, NewPolicyEnvelopeConfig).
package model

// SimpleType is a named scalar type tag, referenced by Parameter and
// Property via its name.
type SimpleType struct {
	Name string
}

// Parameter appears in action parameter lists and event artifact lists.
type Parameter struct {
	Name     string
	TypeHint string
}

// Property appears in Artifact.Properties.
type Property struct {
	Name     string
	TypeHint string
}

// Event is a named occurrence with an ordered parameter list. Events are
// values; whether one has occurred is external state kept by the engine.
type Event struct {
	Name      string
	Artifacts []Parameter
}

// ExpressionOp is the Boolean combinator of an EventExpression node.
type ExpressionOp string

const (
	// OpLeaf marks a leaf node wrapping a single Event reference.
	OpLeaf ExpressionOp = ""
	OpAnd  ExpressionOp = "AND"
	OpOr   ExpressionOp = "OR"
)

// EventExpression is a tree combining Event references with AND/OR.
// A leaf has Op == OpLeaf and wraps a single Event directly (Leaf != nil,
// Children == nil).
type EventExpression struct {
	Op       ExpressionOp
	Leaf     *Event
	Children []*EventExpression
}

// NewEventLeaf wraps a single event reference as a leaf expression.
func NewEventLeaf(e *Event) *EventExpression {
	return &EventExpression{Op: OpLeaf, Leaf: e}
}

// IsLeaf reports whether this node is a bare event reference.
func (x *EventExpression) IsLeaf() bool {
	return x.Op == OpLeaf && x.Leaf != nil
}

// Evaluate checks whether this expression holds given a set of event names
// that have occurred. Evaluation is pure and total:
//   - a leaf reports membership of its event in occurred;
//   - AND requires every child true (vacuously true with no children);
//   - OR requires any child true (vacuously false with no children);
//   - any other operator evaluates false.
func (x *EventExpression) Evaluate(occurred map[string]struct{}) bool {
	if x == nil {
		return false
	}
	if x.IsLeaf() {
		_, ok := occurred[x.Leaf.Name]
		return ok
	}

	switch x.Op {
	case OpAnd:
		for _, child := range x.Children {
			if !child.Evaluate(occurred) {
				return false
			}
		}
		return true
	case OpOr:
		for _, child := range x.Children {
			if child.Evaluate(occurred) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Guard is an opaque boolean formula over a named context. It carries no
// evaluation logic of its own — see runtime/guard for the evaluation
// mechanism — so the static model never depends on a scripting runtime.
type Guard struct {
	Raw string
}
