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

	"github.com/stretchr/testify/suite"
)

type ModelTestSuite struct {
	suite.Suite
}

func TestModelTestSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) TestAcyclicImportsValidate() {
	core := &Community{Name: "core"}
	lib := &Community{
		Name:    "library",
		Imports: []Import{{ImportedCommunity: core, Name: "core"}},
	}

	m := &Model{Communities: []*Community{core, lib}}
	s.Require().NoError(m.ValidateImportGraph())
}

func (s *ModelTestSuite) TestSelfImportIsRejected() {
	lib := &Community{Name: "library"}
	lib.Imports = []Import{{ImportedCommunity: lib, Name: "library"}}

	m := &Model{Communities: []*Community{lib}}
	s.Require().Error(m.ValidateImportGraph())
}

func (s *ModelTestSuite) TestTransitiveCycleIsRejected() {
	a := &Community{Name: "a"}
	b := &Community{Name: "b"}
	c := &Community{Name: "c"}
	a.Imports = []Import{{ImportedCommunity: b, Name: "b"}}
	b.Imports = []Import{{ImportedCommunity: c, Name: "c"}}
	c.Imports = []Import{{ImportedCommunity: a, Name: "a"}}

	m := &Model{Communities: []*Community{a, b, c}}
	s.Require().Error(m.ValidateImportGraph())
}

func (s *ModelTestSuite) TestCommunityByName() {
	core := &Community{Name: "core"}
	m := &Model{Communities: []*Community{core}}
	s.Same(core, m.CommunityByName("core"))
	s.Nil(m.CommunityByName("missing"))
}
