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

package trace

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TracerTestSuite struct {
	suite.Suite
}

func TestTracerTestSuite(t *testing.T) {
	suite.Run(t, new(TracerTestSuite))
}

func (s *TracerTestSuite) TestHistoryAccumulatesInOrder() {
	tr := NewTracer()
	tr.LogAction("alice", "borrow_item", map[string]any{"item": "book-1"})
	tr.LogActionProhibited("bob", "borrow_item", "embargoed")
	tr.LogTokenCreate("tok-1", "return_burden", "alice")
	tr.LogTokenStateChange("tok-1", "return_burden", "alice", "finished", "item_returned")

	s.Require().Len(tr.History, 4)
	s.Equal("action", tr.History[0].Kind)
	s.Equal("action-prohibited", tr.History[1].Kind)
	s.Equal("token-create", tr.History[2].Kind)
	s.Equal("token-state-change", tr.History[3].Kind)
	s.Equal("alice", tr.History[0].Meta["party"])
	s.Equal("embargoed", tr.History[1].Meta["reason"])
}

func (s *TracerTestSuite) TestNodeAttachAndDone() {
	parent, done := New("action", "borrow_item", nil)
	child, childDone := New("guard", "", map[string]any{"raw": "stock > 0"})
	childDone()
	parent.Attach(child)
	done()

	s.Require().Len(parent.Children, 1)
	s.Same(child, parent.Children[0])
}

func (s *TracerTestSuite) TestSetResultAndSetErr() {
	n, done := New("guard", "", nil)
	done()
	n.SetResult(true)
	n.SetErr(nil)
	s.Equal(true, n.Result)
	s.Empty(n.Err)
}
