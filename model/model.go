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

import (
	"github.com/civitas-lang/civitas/depgraph"
	"github.com/civitas-lang/civitas/xerr"
)

// Model is the fully hydrated, two-pass-linked normative model a loader
// produces from manifest text: every SimpleType and Community it declares,
// cross-referenced and indexed.
type Model struct {
	SimpleTypes []SimpleType
	Communities []*Community
}

type communityName string

func (c communityName) String() string { return string(c) }

// ValidateImportGraph rejects a Model whose communities import one another
// cyclically. A community importing itself, directly or transitively,
// would make hydration's two-pass instantiate-then-link order ill-defined.
func (m *Model) ValidateImportGraph() error {
	g := depgraph.New[communityName]()
	for _, c := range m.Communities {
		g.AddNode(communityName(c.Name))
	}
	for _, c := range m.Communities {
		for _, imp := range c.Imports {
			if imp.ImportedCommunity == nil {
				continue
			}
			if err := g.AddEdge(communityName(c.Name), communityName(imp.ImportedCommunity.Name)); err != nil {
				return xerr.ErrImportCycle([]string{c.Name, imp.ImportedCommunity.Name})
			}
		}
	}

	if _, err := g.TopoSort(); err != nil {
		cycle := g.DetectFirstCycle()
		path := make([]string, 0, len(cycle))
		for _, n := range cycle {
			path = append(path, n.String())
		}
		return xerr.ErrImportCycle(path)
	}
	return nil
}

// CommunityByName finds a top-level community by its declared name.
func (m *Model) CommunityByName(name string) *Community {
	for _, c := range m.Communities {
		if c.Name == name {
			return c
		}
	}
	return nil
}
