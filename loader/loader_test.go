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

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

const libraryManifest = `
[[community]]
name = "library"
objective = "lend items to members without losing track of them"

[[community.event]]
name = "item_borrowed"

[[community.event]]
name = "item_returned"

[[community.role]]
name = "borrower"

[[community.role.action]]
kind = "speech_act"
name = "borrowItem"
guard = "loanCount(self) < 3"
trigger_event = "item_borrowed"

[[community.role.action.token]]
kind = "burden"
name = "return_burden"
affected_role = "borrower"
activation_trigger = "item_borrowed"

[community.role.action.token.finish_expression]
tag = "event_expression"
event = "item_returned"
`

type LoaderTestSuite struct {
	suite.Suite
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) TestLoadManifestFromFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "library.civitas.toml")
	s.Require().NoError(writeFile(path, libraryManifest))

	m, warnings, err := LoadManifest(path)
	s.Require().NoError(err)
	s.Empty(warnings)

	lib := m.CommunityByName("library")
	s.Require().NotNil(lib)
	s.Equal("lend items to members without losing track of them", lib.Objective)

	role := lib.Role("borrower")
	s.Require().NotNil(role)
	s.Require().NotNil(role.ActionByName("borrowItem"))
	s.Require().NotNil(role.TokenByName("return_burden"))
}

func (s *LoaderTestSuite) TestLoadManifestMissingFile() {
	_, _, err := LoadManifest(filepath.Join(s.T().TempDir(), "missing.toml"))
	s.Require().Error(err)
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
