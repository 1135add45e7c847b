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

package model

// TokenType is the deontic flavour of a DeonticToken template.
type TokenType int

const (
	Burden TokenType = iota
	Permit
	Embargo
)

func (t TokenType) String() string {
	switch t {
	case Burden:
		return "burden"
	case Permit:
		return "permit"
	case Embargo:
		return "embargo"
	default:
		return "unknown"
	}
}

// DeonticToken is the template for a constraint an active party carries
// against some of its own future actions (Clause 6.4.1 of the ODP
// enterprise viewpoint). An instance of this template, bound to one
// holder, is held at runtime — see runtime.DeonticTokenInstance.
type DeonticToken struct {
	Name               string
	Type               TokenType
	Parameters         []string
	AffectedRole       *CommunityRole
	PreActivationGuard *Guard
	ActivationTrigger  *Event
	FinishExpression   *EventExpression
	PostEventGuard     *Guard
}

func (t *DeonticToken) IsBurden() bool  { return t.Type == Burden }
func (t *DeonticToken) IsPermit() bool  { return t.Type == Permit }
func (t *DeonticToken) IsEmbargo() bool { return t.Type == Embargo }

// DelegatedTokenType is the subset of token kinds a Delegation can transfer.
type DelegatedTokenType int

const (
	DelegatedPermit DelegatedTokenType = iota
	DelegatedBurden
)

func (d DelegatedTokenType) String() string {
	if d == DelegatedBurden {
		return "burden"
	}
	return "permit"
}
