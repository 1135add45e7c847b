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

// BaseAction holds the fields common to every action kind (Clause 6.4 of the
// ODP enterprise viewpoint): BasicAction, SpeechAct, Authorization,
// Declaration, and Delegation all embed it.
type BaseAction struct {
	Name         string
	Parameters   []Parameter
	Guard        *Guard
	TriggerEvent *Event
}

// Action is implemented by every action kind. Base returns the shared
// fields so dispatch code can stay kind-agnostic for the parts of action
// handling that don't care which concrete action it is holding.
type Action interface {
	Base() *BaseAction
}

func (a *BaseAction) Base() *BaseAction { return a }

// ActionCall is one step of a BasicAction's call sequence: invoke a named
// action on a role, passing the named arguments through from the caller's
// own parameter bindings.
type ActionCall struct {
	Role      *CommunityRole
	Action    string
	Arguments []string
}

// BasicAction performs its call sequence and returns a value; it carries no
// deontic consequence of its own (Clause 6.4 — behaviour without normative
// effect).
type BasicAction struct {
	BaseAction
	ReturnType string
	Calls      []ActionCall
}

// SpeechAct is an action whose performance changes the deontic tokens held
// by the parties filling its roles (Clause 6.4.7).
type SpeechAct struct {
	BaseAction
	Tokens []*DeonticToken
}

// Authorization is a SpeechAct that empowers rather than merely permits
// (Clause 6.6.4): it is distinguished from Permit only by name, not by
// mechanism, in this model.
type Authorization struct {
	SpeechAct
}

// Declaration is a SpeechAct with no further structure of its own.
type Declaration struct {
	SpeechAct
}

// Delegation transfers a permit or burden, identified by name, from the
// performer to another role (Clause 6.6.6). The recipient is the party
// passed as the "agent" argument, which must fulfill Agent; a Delegation
// whose Agent is nil (e.g. an unresolved agent role) is always denied.
type Delegation struct {
	SpeechAct
	TokenType DelegatedTokenType
	TokenName string
	Agent     *CommunityRole
}
