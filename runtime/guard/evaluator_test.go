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

package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type EvaluatorTestSuite struct {
	suite.Suite
	eval *Evaluator
}

func TestEvaluatorTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func (s *EvaluatorTestSuite) SetupTest() {
	e, err := NewEvaluator(4)
	s.Require().NoError(err)
	s.eval = e
}

func (s *EvaluatorTestSuite) TearDownTest() {
	s.eval.Close()
}

func (s *EvaluatorTestSuite) TestTrueExpression() {
	ok, err := s.eval.Evaluate(context.Background(), "loanCount < 3", map[string]any{"loanCount": 1})
	s.Require().NoError(err)
	s.True(ok)
}

func (s *EvaluatorTestSuite) TestFalseExpression() {
	ok, err := s.eval.Evaluate(context.Background(), "loanCount < 3", map[string]any{"loanCount": 5})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *EvaluatorTestSuite) TestSyntaxErrorFailsClosed() {
	ok, err := s.eval.Evaluate(context.Background(), "this is not js(((", nil)
	s.Require().Error(err)
	s.False(ok)
}

func (s *EvaluatorTestSuite) TestNonBooleanResultCoerces() {
	ok, err := s.eval.Evaluate(context.Background(), "0", nil)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *EvaluatorTestSuite) TestDomainFunctionBinding() {
	calls := 0
	bindings := map[string]any{
		"hasUnpaidFines": func() bool {
			calls++
			return true
		},
	}
	ok, err := s.eval.Evaluate(context.Background(), "hasUnpaidFines()", bindings)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(1, calls)
}
