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

// Package loader reads a TOML manifest and hydrates it into a *model.Model.
// The manifest shape below mirrors the original grammar's node tags
// structurally, including one deliberate naming
// inversion inherited from the original hydrator: a node tagged
// "event_expression" combines its operands with AND, and one tagged
// "and_expression" combines them with OR. This is preserved verbatim, not
// fixed, because changing it would silently change the meaning of every
// manifest already written against it.
package loader

// RawModel is the root of a manifest file.
type RawModel struct {
	SimpleType []RawSimpleType `toml:"simple_type"`
	Community  []RawCommunity  `toml:"community"`
}

type RawSimpleType struct {
	Name string `toml:"name"`
}

type RawCommunity struct {
	Name      string        `toml:"name"`
	Objective string        `toml:"objective"`
	Contract  string        `toml:"contract"`
	Import    []RawImport   `toml:"import"`
	Artifact  []RawArtifact `toml:"artifact"`
	Event     []RawEvent    `toml:"event"`
	Role      []RawRole     `toml:"role"`
	Policy    []RawPolicy   `toml:"policy"`
}

type RawImport struct {
	Community       string               `toml:"community"`
	Name            string               `toml:"name"`
	RoleFulfillment []RawRoleFulfillment `toml:"role_fulfillment"`
	TokenAlias      []RawTokenAlias      `toml:"token_alias"`
	PolicyEnvelope  []RawPolicyEnvelope  `toml:"policy_envelope"`
}

type RawRoleFulfillment struct {
	Role         string `toml:"role"`
	ImportedRole string `toml:"imported_role"`
}

type RawTokenAlias struct {
	Name         string `toml:"name"`
	ImportedName string `toml:"imported_name"`
}

type RawArtifact struct {
	Name     string        `toml:"name"`
	Property []RawProperty `toml:"property"`
}

type RawProperty struct {
	Name     string `toml:"name"`
	TypeHint string `toml:"type"`
}

type RawEvent struct {
	Name     string        `toml:"name"`
	Artifact []RawProperty `toml:"artifact"`
}

type RawRole struct {
	Name        string      `toml:"name"`
	Description string      `toml:"description"`
	Action      []RawAction `toml:"action"`
}

// RawAction's Kind discriminates "basic", "speech_act", "authorization",
// "declaration", "delegation" in place of the original's class tag.
type RawAction struct {
	Kind         string        `toml:"kind"`
	Name         string        `toml:"name"`
	Parameter    []RawProperty `toml:"parameter"`
	Guard        string        `toml:"guard"`
	TriggerEvent string        `toml:"trigger_event"`
	Token        []RawToken    `toml:"token"`

	// Delegation-only fields.
	DelegatedTokenType string `toml:"delegated_token_type"`
	TokenName          string `toml:"token_name"`
	Agent              string `toml:"agent"`
}

// RawToken's Kind is "burden", "permit", or "embargo".
type RawToken struct {
	Kind              string         `toml:"kind"`
	Name              string         `toml:"name"`
	AffectedRole      string         `toml:"affected_role"`
	ActivationTrigger string         `toml:"activation_trigger"`
	FinishExpression  *RawEventExpr  `toml:"finish_expression"`
}

// RawEventExpr is a node in the event-expression tree. Event is set for a
// bare event reference (a leaf); otherwise Tag is the raw node tag
// ("event_expression" or "and_expression") combining the Operand nodes.
type RawEventExpr struct {
	Tag      string          `toml:"tag"`
	Event    string          `toml:"event"`
	Operand  []RawEventExpr  `toml:"operand"`
}

type RawPolicy struct {
	Name                string              `toml:"name"`
	Type                string              `toml:"type"`
	PolicySettingRole   string              `toml:"policy_setting_role"`
	InitialValue        RawPolicyValue      `toml:"initial_value"`
	Envelope            []RawEnvelopeRule   `toml:"envelope"`
}

type RawPolicyValue struct {
	Number       *float64 `toml:"number"`
	String       *string  `toml:"string"`
	Bool         *bool    `toml:"bool"`
	DurationVal  *float64 `toml:"duration_value"`
	DurationUnit string   `toml:"duration_unit"`
	IntervalFrom *float64 `toml:"interval_from"`
	IntervalTo   *float64 `toml:"interval_to"`
}

type RawEnvelopeRule struct {
	Type   string           `toml:"type"`
	Values []RawPolicyValue `toml:"values"`
}

type RawPolicyEnvelope struct {
	Policy string            `toml:"policy"`
	Rule   []RawEnvelopeRule `toml:"rule"`
}
