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

package runtime

// domainFunctions returns the functions exposed to guard expressions
// alongside policy values and "self" (Clause 6.4.6 — guards may reference
// derived facts about the community's state, not only literal parameters).
// These model the library scenario's derived facts. The set is fixed:
// RegisterBuiltin registers action side effects, not guard functions, and
// there is no registration point for further domain functions.
func (e *Engine) domainFunctions() map[string]any {
	return map[string]any{
		"loanCount":      e.loanCount,
		"hasUnpaidFines": e.hasUnpaidFines,
		"isOverdue":      e.isOverdue,
	}
}

func (e *Engine) loanCount(p *Party) int {
	count := 0
	for _, art := range e.artifacts {
		if art.Template.Name != "Loan" {
			continue
		}
		if borrower, ok := art.Property("borrower"); ok {
			if borrowerParty, ok := borrower.(*Party); ok && borrowerParty == p {
				count++
			}
		}
	}
	e.Log.Debug("guard domain function", "fn", "loanCount", "party", p.Name, "result", count)
	return count
}

func (e *Engine) hasUnpaidFines(p *Party) bool {
	for _, art := range e.artifacts {
		if art.Template.Name != "Fine" {
			continue
		}
		borrower, ok := art.Property("borrower")
		if !ok {
			continue
		}
		borrowerParty, ok := borrower.(*Party)
		if !ok || borrowerParty != p {
			continue
		}
		isPaid, _ := art.Property("isPaid")
		if paid, ok := isPaid.(bool); !ok || !paid {
			found := true
			e.Log.Debug("guard domain function", "fn", "hasUnpaidFines", "party", p.Name, "result", found)
			return found
		}
	}
	e.Log.Debug("guard domain function", "fn", "hasUnpaidFines", "party", p.Name, "result", false)
	return false
}

// isOverdue reports a Loan artifact instance's isOverdue property.
func (e *Engine) isOverdue(loan *ArtifactInstance) bool {
	if loan == nil {
		return false
	}
	overdue, _ := loan.Property("isOverdue")
	result, _ := overdue.(bool)
	e.Log.Debug("guard domain function", "fn", "isOverdue", "loan", loan.InstanceID, "result", result)
	return result
}
