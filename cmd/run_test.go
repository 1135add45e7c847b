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

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/civitas-lang/civitas/model"
	"github.com/civitas-lang/civitas/runtime"
	"github.com/stretchr/testify/suite"
)

const scenarioJSON = `[
	{"party": {"name": "alice", "roles": ["borrower"]}},
	{"action": {"party": "alice", "action": "borrowItem", "kwargs": {"item": "book-1"}}}
]`

type RunCmdTestSuite struct {
	suite.Suite
}

func TestRunCmdTestSuite(t *testing.T) {
	suite.Run(t, new(RunCmdTestSuite))
}

func (s *RunCmdTestSuite) TestPlayScenarioAppliesEverySteps() {
	role := &model.CommunityRole{Name: "borrower"}
	role.Actions = []model.Action{&model.SpeechAct{BaseAction: model.BaseAction{Name: "borrowItem"}}}
	community := &model.Community{Name: "library", Roles: []*model.CommunityRole{role}, Artifacts: []*model.Artifact{{Name: "Loan"}}}
	s.Require().NoError(community.BuildIndexes())

	engine, err := runtime.NewEngine(&model.Model{Communities: []*model.Community{community}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	defer engine.Close()

	dir := s.T().TempDir()
	path := filepath.Join(dir, "scenario.json")
	s.Require().NoError(os.WriteFile(path, []byte(scenarioJSON), 0o644))

	s.Require().NoError(playScenario(context.Background(), engine, path))

	_, ok := engine.Party("alice")
	s.True(ok)
	s.Require().Len(engine.Tracer().History, 1)
}

func (s *RunCmdTestSuite) TestPlayScenarioRejectsEmptyStep() {
	role := &model.CommunityRole{Name: "borrower"}
	community := &model.Community{Name: "library", Roles: []*model.CommunityRole{role}}
	s.Require().NoError(community.BuildIndexes())

	engine, err := runtime.NewEngine(&model.Model{Communities: []*model.Community{community}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	defer engine.Close()

	dir := s.T().TempDir()
	path := filepath.Join(dir, "scenario.json")
	s.Require().NoError(os.WriteFile(path, []byte(`[{}]`), 0o644))

	s.Require().Error(playScenario(context.Background(), engine, path))
}
