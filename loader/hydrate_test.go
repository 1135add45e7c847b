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
	"testing"

	"github.com/civitas-lang/civitas/model"
	"github.com/civitas-lang/civitas/xerr"
	"github.com/stretchr/testify/suite"
)

func libraryRawModel() *RawModel {
	return &RawModel{
		Community: []RawCommunity{
			{
				Name: "library",
				Event: []RawEvent{
					{Name: "item_borrowed"},
					{Name: "item_returned"},
				},
				Role: []RawRole{
					{
						Name: "borrower",
						Action: []RawAction{
							{
								Kind:         "speech_act",
								Name:         "borrowItem",
								Guard:        "loanCount(self) < 3",
								TriggerEvent: "item_borrowed",
								Token: []RawToken{
									{
										Kind:              "burden",
										Name:              "return_burden",
										AffectedRole:      "borrower",
										ActivationTrigger: "item_borrowed",
										FinishExpression: &RawEventExpr{
											Tag:   "event_expression",
											Event: "item_returned",
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

type HydrateTestSuite struct {
	suite.Suite
}

func TestHydrateTestSuite(t *testing.T) {
	suite.Run(t, new(HydrateTestSuite))
}

func (s *HydrateTestSuite) TestHydratesLibraryScenario() {
	m, warnings, err := Hydrate(libraryRawModel())
	s.Require().NoError(err)
	s.Empty(warnings)

	comm := m.CommunityByName("library")
	s.Require().NotNil(comm)

	role := comm.Role("borrower")
	s.Require().NotNil(role)

	action := role.ActionByName("borrowItem")
	s.Require().NotNil(action)
	s.Equal("loanCount(self) < 3", action.Base().Guard.Raw)
	s.Equal("item_borrowed", action.Base().TriggerEvent.Name)

	token := role.TokenByName("return_burden")
	s.Require().NotNil(token)
	s.True(token.IsBurden())
	s.Same(role, token.AffectedRole)
	s.True(token.FinishExpression.IsLeaf())
	s.Equal("item_returned", token.FinishExpression.Leaf.Name)
}

func (s *HydrateTestSuite) TestDuplicateRoleNameIsFatal() {
	raw := &RawModel{
		Community: []RawCommunity{
			{
				Name: "library",
				Role: []RawRole{
					{Name: "borrower"},
					{Name: "borrower"},
				},
			},
		},
	}

	_, _, err := Hydrate(raw)
	s.Require().Error(err)
	var constructionErr xerr.ConstructionError
	s.ErrorAs(err, &constructionErr)
}

func (s *HydrateTestSuite) TestUnresolvedTriggerEventIsWarningNotError() {
	raw := &RawModel{
		Community: []RawCommunity{
			{
				Name: "library",
				Role: []RawRole{
					{
						Name: "borrower",
						Action: []RawAction{
							{Kind: "basic", Name: "doSomething", TriggerEvent: "no_such_event"},
						},
					},
				},
			},
		},
	}

	m, warnings, err := Hydrate(raw)
	s.Require().NoError(err)
	s.Require().NotEmpty(warnings)

	action := m.CommunityByName("library").Role("borrower").ActionByName("doSomething")
	s.Require().NotNil(action)
	s.Nil(action.Base().TriggerEvent)
}

// TestEventExpressionTagInversion locks in the inherited naming quirk: a
// node tagged "event_expression" is an AND, and one tagged "and_expression"
// is an OR.
func (s *HydrateTestSuite) TestEventExpressionTagInversion() {
	raw := &RawModel{
		Community: []RawCommunity{
			{
				Name: "library",
				Event: []RawEvent{
					{Name: "a"},
					{Name: "b"},
				},
				Role: []RawRole{
					{
						Name: "borrower",
						Action: []RawAction{
							{
								Kind: "speech_act",
								Name: "doSpeechAct",
								Token: []RawToken{
									{
										Kind: "burden",
										Name: "and_named_token",
										FinishExpression: &RawEventExpr{
											Tag: "event_expression",
											Operand: []RawEventExpr{
												{Event: "a"},
												{Event: "b"},
											},
										},
									},
									{
										Kind: "burden",
										Name: "or_named_token",
										FinishExpression: &RawEventExpr{
											Tag: "and_expression",
											Operand: []RawEventExpr{
												{Event: "a"},
												{Event: "b"},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	m, warnings, err := Hydrate(raw)
	s.Require().NoError(err)
	s.Empty(warnings)

	role := m.CommunityByName("library").Role("borrower")
	andToken := role.TokenByName("and_named_token")
	orToken := role.TokenByName("or_named_token")
	s.Require().NotNil(andToken)
	s.Require().NotNil(orToken)

	s.Equal(model.OpAnd, andToken.FinishExpression.Op)
	s.Equal(model.OpOr, orToken.FinishExpression.Op)

	occurredAOnly := map[string]struct{}{"a": {}}
	s.False(andToken.FinishExpression.Evaluate(occurredAOnly))
	s.True(orToken.FinishExpression.Evaluate(occurredAOnly))
}

func (s *HydrateTestSuite) TestImportResolvesAcrossDeclarationOrder() {
	raw := &RawModel{
		Community: []RawCommunity{
			{
				Name: "library",
				Import: []RawImport{
					{Community: "membership", Name: "members"},
				},
			},
			{
				Name: "membership",
			},
		},
	}

	m, warnings, err := Hydrate(raw)
	s.Require().NoError(err)
	s.Empty(warnings)

	lib := m.CommunityByName("library")
	s.Require().Len(lib.Imports, 1)
	s.Equal("membership", lib.Imports[0].ImportedCommunity.Name)
}
