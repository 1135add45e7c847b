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

import "github.com/civitas-lang/civitas/xerr"

// TokenAlias renames an imported token template within the importing
// community's namespace.
type TokenAlias struct {
	Name         string
	ImportedName string
}

// RoleFulfillment binds a role declared on the importing community to a
// role on the imported one, so a party filling the former is understood to
// also fill the latter.
type RoleFulfillment struct {
	Role         *CommunityRole
	ImportedRole *CommunityRole
}

// Import is one community's use of another: which roles fulfill which,
// which token templates are aliased, and how the imported policies'
// envelopes are narrowed.
type Import struct {
	ImportedCommunity *Community
	Name              string
	RoleFulfillment   []RoleFulfillment
	TokenAliases      []TokenAlias
	PolicyEnvelope    []PolicyEnvelopeConfig
}

// Community is the top-level composite enterprise object: the set of
// roles, artifacts, events, and policies that together define one
// normative vocabulary (Clause 6.2.2).
type Community struct {
	Name      string
	Contract  string
	Objective string
	Imports   []Import
	Events    []*Event
	Artifacts []*Artifact
	Roles     []*CommunityRole
	Policies  []*Policy

	roleIndex     map[string]*CommunityRole
	artifactIndex map[string]*Artifact
	eventIndex    map[string]*Event
	policyIndex   map[string]*Policy
}

// BuildIndexes populates the by-name lookup tables from the community's
// slices. Role names, artifact names, event names, and policy names must
// each be unique within a community; a duplicate is a construction error,
// not a silently-shadowed entry.
func (c *Community) BuildIndexes() error {
	c.roleIndex = make(map[string]*CommunityRole, len(c.Roles))
	for _, r := range c.Roles {
		if _, dup := c.roleIndex[r.Name]; dup {
			return xerr.ErrDuplicateName("role", r.Name, c.Name)
		}
		c.roleIndex[r.Name] = r
	}

	c.artifactIndex = make(map[string]*Artifact, len(c.Artifacts))
	for _, a := range c.Artifacts {
		if _, dup := c.artifactIndex[a.Name]; dup {
			return xerr.ErrDuplicateName("artifact", a.Name, c.Name)
		}
		c.artifactIndex[a.Name] = a
	}

	c.eventIndex = make(map[string]*Event, len(c.Events))
	for _, e := range c.Events {
		if _, dup := c.eventIndex[e.Name]; dup {
			return xerr.ErrDuplicateName("event", e.Name, c.Name)
		}
		c.eventIndex[e.Name] = e
	}

	c.policyIndex = make(map[string]*Policy, len(c.Policies))
	for _, p := range c.Policies {
		if _, dup := c.policyIndex[p.Name]; dup {
			return xerr.ErrDuplicateName("policy", p.Name, c.Name)
		}
		c.policyIndex[p.Name] = p
	}

	return nil
}

func (c *Community) Role(name string) *CommunityRole     { return c.roleIndex[name] }
func (c *Community) ArtifactByName(name string) *Artifact { return c.artifactIndex[name] }
func (c *Community) Event(name string) *Event            { return c.eventIndex[name] }
func (c *Community) PolicyByName(name string) *Policy     { return c.policyIndex[name] }

func (c *Community) String() string { return c.Name }
