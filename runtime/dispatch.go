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

package runtime

import (
	"context"

	"github.com/civitas-lang/civitas/deontic"
	"github.com/civitas-lang/civitas/model"
	"github.com/civitas-lang/civitas/xerr"
)

// PerformAction is the engine's only mutation point: it runs to completion,
// in this exact order, before returning:
//
//  1. embargo screen — any active Embargo token held by the performer denies
//  2. guard screen — the action's guard, if any, evaluated against policy
//     values, domain functions, "self", and kwargs
//  3. built-in side effects, if the action name has one registered
//  4. delegation effects (if the action is a Delegation) — a failed
//     delegation precondition denies and skips event emission entirely
//  5. speech-act token minting — one new token instance per template the
//     action declares
//  6. event emission, if the action declares a trigger event
func (e *Engine) PerformAction(ctx context.Context, partyName, actionName string, kwargs *Args) (*Decision, error) {
	if kwargs == nil {
		kwargs = NewArgs()
	}

	party, ok := e.parties[partyName]
	if !ok {
		return nil, xerr.ErrUnknownParty(partyName)
	}

	action := party.Action(actionName)
	if action == nil {
		return nil, xerr.ErrUnknownAction(partyName, actionName)
	}
	base := action.Base()

	embargoVerdict, embargoReason := e.embargoScreen(party)

	guardVerdict, guardReason := deontic.Permitted, ""
	if base.Guard != nil {
		ok, err := e.evaluateGuard(ctx, base.Guard, party, kwargs)
		if err != nil {
			e.Log.Warn("guard evaluation error", "guard", base.Guard.Raw, "err", err)
		}
		if !ok {
			guardVerdict = deontic.Prohibited
			guardReason = "guard failed: " + base.Guard.Raw
		}
	}

	if screen := embargoVerdict.And(guardVerdict); !screen.IsPermitted() {
		reason := embargoReason
		if embargoVerdict.IsPermitted() {
			reason = guardReason
		}
		e.tracer.LogActionProhibited(party.Name, actionName, reason)
		return prohibited(reason), nil
	}

	e.tracer.LogAction(party.Name, actionName, kwargs.Map())

	if builtin, ok := e.builtins[actionName]; ok {
		if err := builtin(e, party, kwargs); err != nil {
			reason := "built-in effect failed: " + err.Error()
			e.tracer.LogActionProhibited(party.Name, actionName, reason)
			return prohibited(reason), nil
		}
	}

	performerGainedBurden := false

	if delegation, isDelegation := action.(*model.Delegation); isDelegation {
		ok, reason := e.performDelegation(delegation, party, kwargs)
		if !ok {
			e.tracer.LogActionProhibited(party.Name, actionName, reason)
			return prohibited(reason), nil
		}
	}

	if speechAct, ok := speechActOf(action); ok {
		if e.mintTokens(speechAct, party, kwargs) {
			performerGainedBurden = true
		}
	}

	if base.TriggerEvent != nil {
		if e.fireEvent(base.TriggerEvent, party) {
			performerGainedBurden = true
		}
	}

	if performerGainedBurden {
		return obligatory("performer now carries a newly activated burden"), nil
	}
	return permitted(), nil
}

// speechActOf extracts the embedded *model.SpeechAct from any action kind
// that carries one (SpeechAct itself, Authorization, Declaration,
// Delegation). BasicAction carries no deontic effect and returns false.
func speechActOf(action model.Action) (*model.SpeechAct, bool) {
	switch a := action.(type) {
	case *model.SpeechAct:
		return a, true
	case *model.Authorization:
		return &a.SpeechAct, true
	case *model.Declaration:
		return &a.SpeechAct, true
	case *model.Delegation:
		return &a.SpeechAct, true
	default:
		return nil, false
	}
}

func (e *Engine) embargoScreen(party *Party) (verdict deontic.Verdict, reason string) {
	for _, tok := range e.tokens {
		if tok.Owner == party && tok.State == Active && tok.Template.IsEmbargo() {
			return deontic.Prohibited, "active embargo '" + tok.Template.Name + "'"
		}
	}
	return deontic.Permitted, ""
}

func (e *Engine) evaluateGuard(ctx context.Context, g *model.Guard, party *Party, kwargs *Args) (bool, error) {
	domainFns := e.domainFunctions()
	bindings := make(map[string]any, len(e.policyValues)+len(domainFns)+1+kwargs.Len())
	for k, v := range e.policyValues {
		bindings[k] = v
	}
	for name, fn := range domainFns {
		bindings[name] = fn
	}
	bindings["self"] = party
	for k, v := range kwargs.Map() {
		bindings[k] = v
	}
	return e.guard.Evaluate(ctx, g.Raw, bindings)
}

// mintTokens creates one DeonticTokenInstance per template declared on a
// SpeechAct, resolving each one's owner via resolveTokenOwner, and reports
// whether any newly minted Burden token belongs to the performer.
func (e *Engine) mintTokens(speechAct *model.SpeechAct, performer *Party, kwargs *Args) bool {
	gainedBurden := false
	for _, template := range speechAct.Tokens {
		owner := resolveTokenOwner(template, performer, kwargs)
		tok := newTokenInstance(template, owner, kwargs)
		e.tokens = append(e.tokens, tok)
		e.tracer.LogTokenCreate(tok.InstanceID, template.Name, owner.Name)
		if owner == performer && template.IsBurden() {
			gainedBurden = true
		}
	}
	return gainedBurden
}
