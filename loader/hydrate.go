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

package loader

import (
	"fmt"

	"github.com/civitas-lang/civitas/model"
)

// hydrator carries the instantiate-then-link state for one manifest.
// Forward references (an action's trigger_event, a token's affected_role)
// are resolved by name in the linkage pass, once every community's
// artifacts, events, and role skeletons exist; references that still
// don't resolve become warnings, not errors.
type hydrator struct {
	communities map[string]*model.Community
	events      map[string]*model.Event   // "<community>.<event>"
	roles       map[string]*model.CommunityRole // "<community>.<role>"
	warnings    []string
}

// Hydrate builds a *model.Model from a parsed manifest. Duplicate role,
// artifact, event, or policy names within one community are a fatal
// construction error; every other unresolved reference is collected as a
// warning and left nil/zero on the hydrated object.
func Hydrate(raw *RawModel) (*model.Model, []string, error) {
	h := &hydrator{
		communities: make(map[string]*model.Community),
		events:      make(map[string]*model.Event),
		roles:       make(map[string]*model.CommunityRole),
	}

	m := &model.Model{}
	for _, st := range raw.SimpleType {
		m.SimpleTypes = append(m.SimpleTypes, model.SimpleType{Name: st.Name})
	}

	// Pass 1: instantiate every community skeleton so cross-community
	// imports can resolve regardless of declaration order.
	for _, rc := range raw.Community {
		c := &model.Community{Name: rc.Name, Objective: rc.Objective, Contract: rc.Contract}
		h.communities[rc.Name] = c
		m.Communities = append(m.Communities, c)
	}

	// Pass 2: artifacts, events, role skeletons, policies.
	for _, rc := range raw.Community {
		c := h.communities[rc.Name]

		for _, ra := range rc.Artifact {
			c.Artifacts = append(c.Artifacts, h.buildArtifact(ra))
		}
		for _, re := range rc.Event {
			ev := h.buildEvent(re)
			c.Events = append(c.Events, ev)
			h.events[rc.Name+"."+re.Name] = ev
		}
		for _, rr := range rc.Role {
			role := &model.CommunityRole{Name: rr.Name, Description: rr.Description}
			c.Roles = append(c.Roles, role)
			h.roles[rc.Name+"."+rr.Name] = role
		}
		for _, rp := range rc.Policy {
			c.Policies = append(c.Policies, h.buildPolicy(rp))
		}
	}

	// Pass 3: actions, tokens, imports — everything that can reference
	// another named entity.
	for _, rc := range raw.Community {
		c := h.communities[rc.Name]
		for _, rr := range rc.Role {
			role := h.roles[rc.Name+"."+rr.Name]
			for _, ra := range rr.Action {
				action := h.buildAction(ra, rc.Name)
				if action != nil {
					role.Actions = append(role.Actions, action)
					switch a := action.(type) {
					case *model.SpeechAct:
						role.Tokens = append(role.Tokens, a.Tokens...)
					case *model.Authorization:
						role.Tokens = append(role.Tokens, a.Tokens...)
					case *model.Declaration:
						role.Tokens = append(role.Tokens, a.Tokens...)
					}
				}
			}
		}
		for _, ri := range rc.Import {
			imp, ok := h.buildImport(ri, rc.Name)
			if ok {
				c.Imports = append(c.Imports, imp)
			}
		}
	}

	for _, c := range m.Communities {
		if err := c.BuildIndexes(); err != nil {
			return nil, h.warnings, err
		}
	}
	if err := m.ValidateImportGraph(); err != nil {
		return nil, h.warnings, err
	}

	return m, h.warnings, nil
}

func (h *hydrator) warn(format string, args ...any) {
	h.warnings = append(h.warnings, fmt.Sprintf(format, args...))
}

func (h *hydrator) buildArtifact(ra RawArtifact) *model.Artifact {
	a := &model.Artifact{Name: ra.Name}
	for _, p := range ra.Property {
		a.Properties = append(a.Properties, model.Property{Name: p.Name, TypeHint: p.TypeHint})
	}
	return a
}

func (h *hydrator) buildEvent(re RawEvent) *model.Event {
	ev := &model.Event{Name: re.Name}
	for _, p := range re.Artifact {
		ev.Artifacts = append(ev.Artifacts, model.Parameter{Name: p.Name, TypeHint: p.TypeHint})
	}
	return ev
}

func (h *hydrator) buildPolicy(rp RawPolicy) *model.Policy {
	p := &model.Policy{
		Name:             rp.Name,
		Type:             rp.Type,
		SettingBehaviour: model.PolicySettingBehaviour{PolicySettingRole: rp.PolicySettingRole},
		InitialValue:     h.resolvePolicyValue(rp.InitialValue),
	}
	for _, re := range rp.Envelope {
		ruleType, err := model.EnvelopeRuleTypeFromText(re.Type)
		if err != nil {
			h.warn("policy %q: %v", rp.Name, err)
			continue
		}
		rule := model.EnvelopeRule{Type: ruleType}
		for _, v := range re.Values {
			rule.Values = append(rule.Values, h.resolvePolicyValue(v))
		}
		p.Envelope.EnvelopeRules = append(p.Envelope.EnvelopeRules, rule)
	}
	return p
}

func (h *hydrator) resolvePolicyValue(v RawPolicyValue) model.PolicyValue {
	switch {
	case v.DurationVal != nil:
		unit, err := model.DurationUnitFromText(v.DurationUnit)
		if err != nil {
			h.warn("duration value: %v", err)
			return model.Duration{Value: *v.DurationVal}
		}
		return model.Duration{Value: *v.DurationVal, Unit: unit}
	case v.IntervalFrom != nil && v.IntervalTo != nil:
		return model.NumberInterval{From: *v.IntervalFrom, To: *v.IntervalTo}
	case v.Number != nil:
		return *v.Number
	case v.Bool != nil:
		return *v.Bool
	case v.String != nil:
		return *v.String
	default:
		return nil
	}
}

func (h *hydrator) buildAction(ra RawAction, commName string) model.Action {
	base := model.BaseAction{Name: ra.Name}
	for _, p := range ra.Parameter {
		base.Parameters = append(base.Parameters, model.Parameter{Name: p.Name, TypeHint: p.TypeHint})
	}
	if ra.Guard != "" {
		base.Guard = &model.Guard{Raw: ra.Guard}
	}
	if ra.TriggerEvent != "" {
		if ev, ok := h.events[commName+"."+ra.TriggerEvent]; ok {
			base.TriggerEvent = ev
		} else {
			h.warn("action %q: could not resolve trigger event %q", ra.Name, ra.TriggerEvent)
		}
	}

	switch ra.Kind {
	case "basic":
		return &model.BasicAction{BaseAction: base}
	case "speech_act":
		return &model.SpeechAct{BaseAction: base, Tokens: h.buildTokens(ra.Token, commName, ra.Name)}
	case "authorization":
		return &model.Authorization{SpeechAct: model.SpeechAct{BaseAction: base, Tokens: h.buildTokens(ra.Token, commName, ra.Name)}}
	case "declaration":
		return &model.Declaration{SpeechAct: model.SpeechAct{BaseAction: base, Tokens: h.buildTokens(ra.Token, commName, ra.Name)}}
	case "delegation":
		tokenType, err := delegatedTokenTypeFromText(ra.DelegatedTokenType)
		if err != nil {
			h.warn("action %q: %v", ra.Name, err)
			return nil
		}
		agent, ok := h.roles[commName+"."+ra.Agent]
		if !ok {
			h.warn("action %q: could not resolve delegation agent role %q", ra.Name, ra.Agent)
		}
		return &model.Delegation{
			SpeechAct: model.SpeechAct{BaseAction: base},
			TokenType: tokenType,
			TokenName: ra.TokenName,
			Agent:     agent,
		}
	default:
		h.warn("action %q: unknown kind %q, skipping", ra.Name, ra.Kind)
		return nil
	}
}

func delegatedTokenTypeFromText(text string) (model.DelegatedTokenType, error) {
	switch text {
	case "permit":
		return model.DelegatedPermit, nil
	case "burden":
		return model.DelegatedBurden, nil
	default:
		return 0, fmt.Errorf("unknown delegated token type %q", text)
	}
}

func (h *hydrator) buildTokens(raw []RawToken, commName, actionName string) []*model.DeonticToken {
	var tokens []*model.DeonticToken
	for _, rt := range raw {
		tokenType, err := tokenTypeFromText(rt.Kind)
		if err != nil {
			h.warn("action %q token %q: %v", actionName, rt.Name, err)
			continue
		}
		tok := &model.DeonticToken{Name: rt.Name, Type: tokenType}
		if rt.AffectedRole != "" {
			if role, ok := h.roles[commName+"."+rt.AffectedRole]; ok {
				tok.AffectedRole = role
			} else {
				h.warn("token %q: could not resolve affected role %q", rt.Name, rt.AffectedRole)
			}
		}
		if rt.ActivationTrigger != "" {
			if ev, ok := h.events[commName+"."+rt.ActivationTrigger]; ok {
				tok.ActivationTrigger = ev
			} else {
				h.warn("token %q: could not resolve activation trigger %q", rt.Name, rt.ActivationTrigger)
			}
		}
		if rt.FinishExpression != nil {
			tok.FinishExpression = h.buildEventExpression(rt.FinishExpression, commName)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func tokenTypeFromText(text string) (model.TokenType, error) {
	switch text {
	case "burden":
		return model.Burden, nil
	case "permit":
		return model.Permit, nil
	case "embargo":
		return model.Embargo, nil
	default:
		return 0, fmt.Errorf("unknown token kind %q", text)
	}
}

// buildEventExpression preserves the original grammar's node-tag inversion:
// a node tagged "event_expression" is an AND of its operands, and one
// tagged "and_expression" is an OR. A bare event reference (no tag) is a
// leaf.
func (h *hydrator) buildEventExpression(raw *RawEventExpr, commName string) *model.EventExpression {
	if raw.Event != "" {
		ev, ok := h.events[commName+"."+raw.Event]
		if !ok {
			h.warn("event expression: could not resolve event %q", raw.Event)
			return nil
		}
		return model.NewEventLeaf(ev)
	}

	var op model.ExpressionOp
	switch raw.Tag {
	case "event_expression":
		op = model.OpAnd
	case "and_expression":
		op = model.OpOr
	default:
		h.warn("event expression: unknown node tag %q", raw.Tag)
		return &model.EventExpression{}
	}

	expr := &model.EventExpression{Op: op}
	for i := range raw.Operand {
		if child := h.buildEventExpression(&raw.Operand[i], commName); child != nil {
			expr.Children = append(expr.Children, child)
		}
	}
	return expr
}

func (h *hydrator) buildImport(ri RawImport, commName string) (model.Import, bool) {
	imported, ok := h.communities[ri.Community]
	if !ok {
		h.warn("community %q: could not resolve import %q", commName, ri.Community)
		return model.Import{}, false
	}

	imp := model.Import{ImportedCommunity: imported, Name: ri.Name}
	for _, rf := range ri.RoleFulfillment {
		role, roleOK := h.roles[commName+"."+rf.Role]
		importedRole, importedOK := h.roles[ri.Community+"."+rf.ImportedRole]
		if !roleOK || !importedOK {
			h.warn("import %q: could not resolve role fulfillment %q -> %q", ri.Name, rf.Role, rf.ImportedRole)
			continue
		}
		imp.RoleFulfillment = append(imp.RoleFulfillment, model.RoleFulfillment{Role: role, ImportedRole: importedRole})
	}
	for _, ta := range ri.TokenAlias {
		imp.TokenAliases = append(imp.TokenAliases, model.TokenAlias{Name: ta.Name, ImportedName: ta.ImportedName})
	}
	for _, pe := range ri.PolicyEnvelope {
		var rules []model.EnvelopeRule
		for _, r := range pe.Rule {
			ruleType, err := model.EnvelopeRuleTypeFromText(r.Type)
			if err != nil {
				h.warn("import %q policy envelope %q: %v", ri.Name, pe.Policy, err)
				continue
			}
			rule := model.EnvelopeRule{Type: ruleType}
			for _, v := range r.Values {
				rule.Values = append(rule.Values, h.resolvePolicyValue(v))
			}
			rules = append(rules, rule)
		}
		cfg, err := model.NewPolicyEnvelopeConfig(pe.Policy, rules)
		if err != nil {
			h.warn("import %q: %v", ri.Name, err)
			continue
		}
		imp.PolicyEnvelope = append(imp.PolicyEnvelope, cfg)
	}
	return imp, true
}
