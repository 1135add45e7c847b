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

// Package runtime is the single-threaded simulation engine: live parties,
// artifact instances, and deontic token instances, driven entirely through
// Engine.PerformAction — no concurrency within one Engine.
package runtime

import (
	"github.com/civitas-lang/civitas/model"
	"github.com/google/uuid"
)

// Party is a live enterprise object able to fill action roles (Clause 6.6.1).
type Party struct {
	Name           string
	FulfillsRoles  []*model.CommunityRole
}

// HasRole reports whether this party fulfills a role with the given name.
func (p *Party) HasRole(roleName string) bool {
	for _, r := range p.FulfillsRoles {
		if r.Name == roleName {
			return true
		}
	}
	return false
}

// Action finds an action by name by searching every role this party fills.
func (p *Party) Action(actionName string) model.Action {
	for _, r := range p.FulfillsRoles {
		if a := r.ActionByName(actionName); a != nil {
			return a
		}
	}
	return nil
}

func (p *Party) String() string { return p.Name }

// ArtifactInstance is a live instance of an Artifact template.
type ArtifactInstance struct {
	InstanceID string
	Template   *model.Artifact
	Properties *Args
}

// Property looks up a live property value by name, returning (nil, false)
// if the instance carries no such property.
func (a *ArtifactInstance) Property(name string) (any, bool) {
	return a.Properties.Get(name)
}

func (a *ArtifactInstance) String() string {
	return "ArtifactInstance(" + a.InstanceID + ")"
}

// DeonticTokenState is where a live token instance sits in its lifecycle.
type DeonticTokenState int

const (
	Inactive DeonticTokenState = iota
	Active
	Discharged
)

func (s DeonticTokenState) String() string {
	switch s {
	case Active:
		return "ACTIVE"
	case Discharged:
		return "DISCHARGED"
	default:
		return "INACTIVE"
	}
}

// DeonticTokenInstance is a live, stateful token held by exactly one party.
type DeonticTokenInstance struct {
	InstanceID string
	Template   *model.DeonticToken
	Owner      *Party
	State      DeonticTokenState
	Context    *Args
}

func newTokenInstance(template *model.DeonticToken, owner *Party, context *Args) *DeonticTokenInstance {
	state := Inactive
	if template.ActivationTrigger == nil {
		state = Active
	}
	return &DeonticTokenInstance{
		InstanceID: "token-" + uuid.NewString()[:6],
		Template:   template,
		Owner:      owner,
		State:      state,
		Context:    context,
	}
}
