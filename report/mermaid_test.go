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

package report

import (
	"bytes"
	"testing"

	"github.com/civitas-lang/civitas/runtime/trace"
	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"
)

type ReportTestSuite struct {
	suite.Suite
}

func TestReportTestSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}

func (s *ReportTestSuite) history() []*trace.Node {
	tracer := trace.NewTracer()
	tracer.LogAction("alice", "borrowItem", map[string]any{"item": "book-1"})
	tracer.LogTokenCreate("tok-1", "return_burden", "alice")
	tracer.LogActionProhibited("bob", "borrowItem", "embargo active")
	tracer.LogTokenStateChange("tok-1", "return_burden", "alice", "discharged", "item_returned")
	return tracer.History
}

func (s *ReportTestSuite) TestMermaidIncludesParticipantsAndSteps() {
	out := Mermaid(s.history())

	s.Contains(out, "sequenceDiagram")
	s.Contains(out, "participant Engine")
	s.Contains(out, "participant alice")
	s.Contains(out, "participant bob")
	s.Contains(out, "alice->>+Engine: borrowItem()")
	s.Contains(out, "Token 'return_burden' CREATED")
	s.Contains(out, "[Attempt] borrowItem()")
	s.Contains(out, "Prohibited")
	s.Contains(out, "is now discharged")
}

func (s *ReportTestSuite) TestMermaidEscapesQuotesInReason() {
	tracer := trace.NewTracer()
	tracer.LogActionProhibited("bob", "borrowItem", `policy "max-loans" exceeded`)

	out := Mermaid(tracer.History)
	s.Contains(out, "policy 'max-loans' exceeded")
	s.NotContains(out, `"max-loans"`)
}

func (s *ReportTestSuite) TestMermaidEmptyHistory() {
	out := Mermaid(nil)
	s.Contains(out, "sequenceDiagram")
	s.Contains(out, "participant Engine")
}

func (s *ReportTestSuite) TestWriteConsoleProducesOneLinePerEntry() {
	var buf bytes.Buffer
	color.NoColor = true
	WriteConsole(&buf, s.history())

	out := buf.String()
	s.Contains(out, "[ACTION] alice performed borrowItem")
	s.Contains(out, "[TOKEN] return_burden created for alice")
	s.Contains(out, "[PROHIBITED] bob attempted borrowItem: embargo active")
	s.Contains(out, "[TOKEN] return_burden held by alice is now discharged")
}
