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
	"testing"

	"github.com/civitas-lang/civitas/xerr"
	"github.com/stretchr/testify/suite"
)

type CommunityTestSuite struct {
	suite.Suite
}

func TestCommunityTestSuite(t *testing.T) {
	suite.Run(t, new(CommunityTestSuite))
}

func (s *CommunityTestSuite) TestBuildIndexesFindsEntries() {
	role := &CommunityRole{Name: "borrower"}
	art := &Artifact{Name: "book"}
	ev := &Event{Name: "returned"}
	pol := &Policy{Name: "max_loans"}

	c := &Community{
		Name:      "library",
		Roles:     []*CommunityRole{role},
		Artifacts: []*Artifact{art},
		Events:    []*Event{ev},
		Policies:  []*Policy{pol},
	}

	s.Require().NoError(c.BuildIndexes())
	s.Same(role, c.Role("borrower"))
	s.Same(art, c.ArtifactByName("book"))
	s.Same(ev, c.Event("returned"))
	s.Same(pol, c.PolicyByName("max_loans"))
	s.Nil(c.Role("nonexistent"))
}

func (s *CommunityTestSuite) TestDuplicateRoleNameIsConstructionError() {
	c := &Community{
		Name: "library",
		Roles: []*CommunityRole{
			{Name: "borrower"},
			{Name: "borrower"},
		},
	}

	err := c.BuildIndexes()
	s.Require().Error(err)
	var constructionErr xerr.ConstructionError
	s.ErrorAs(err, &constructionErr)
}

func (s *CommunityTestSuite) TestDuplicateArtifactNameIsConstructionError() {
	c := &Community{
		Name: "library",
		Artifacts: []*Artifact{
			{Name: "book"},
			{Name: "book"},
		},
	}

	s.Require().Error(c.BuildIndexes())
}

func (s *CommunityTestSuite) TestDuplicateEventNameIsConstructionError() {
	c := &Community{
		Name: "library",
		Events: []*Event{
			{Name: "returned"},
			{Name: "returned"},
		},
	}

	s.Require().Error(c.BuildIndexes())
}
