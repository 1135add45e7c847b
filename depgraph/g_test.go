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

package depgraph

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type strNode string

func (s strNode) String() string { return string(s) }

type DepGraphTestSuite struct {
	suite.Suite
}

func TestDepGraphTestSuite(t *testing.T) {
	suite.Run(t, new(DepGraphTestSuite))
}

func (s *DepGraphTestSuite) TestAcyclicTopoSort() {
	g := New[strNode]()
	g.AddNode("library")
	g.AddNode("core")
	s.Require().NoError(g.AddEdge("library", "core"))

	order, err := g.TopoSort()
	s.Require().NoError(err)
	s.Require().Len(order, 2)
	s.Equal(strNode("core"), order[0])
	s.Equal(strNode("library"), order[1])
}

func (s *DepGraphTestSuite) TestSelfImportRejected() {
	g := New[strNode]()
	g.AddNode("library")
	err := g.AddEdge("library", "library")
	s.ErrorIs(err, ErrSelfImport)
}

func (s *DepGraphTestSuite) TestCycleDetected() {
	g := New[strNode]()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("c")
	s.Require().NoError(g.AddEdge("a", "b"))
	s.Require().NoError(g.AddEdge("b", "c"))
	s.Require().NoError(g.AddEdge("c", "a"))

	_, err := g.TopoSort()
	s.Require().Error(err)
	var cycleErr ErrCycle
	s.Require().ErrorAs(err, &cycleErr)

	cycle := g.DetectFirstCycle()
	s.NotEmpty(cycle)
}

func (s *DepGraphTestSuite) TestNoCycleOnDiamond() {
	g := New[strNode]()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("c")
	g.AddNode("d")
	s.Require().NoError(g.AddEdge("a", "b"))
	s.Require().NoError(g.AddEdge("a", "c"))
	s.Require().NoError(g.AddEdge("b", "d"))
	s.Require().NoError(g.AddEdge("c", "d"))

	cycle := g.DetectFirstCycle()
	s.Empty(cycle)

	order, err := g.TopoSort()
	s.Require().NoError(err)
	s.Len(order, 4)
}
