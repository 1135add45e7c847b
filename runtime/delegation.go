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

import "github.com/civitas-lang/civitas/model"

// performDelegation transfers an active token the delegator owns to a
// recipient fulfilling the delegation's agent role (Clause 6.6.6). A
// failed precondition here denies the whole action and, unlike every other
// speech act, skips event emission entirely.
func (e *Engine) performDelegation(d *model.Delegation, delegator *Party, kwargs *Args) (ok bool, reason string) {
	newOwnerVal, _ := kwargs.Get("agent")
	newOwner, _ := newOwnerVal.(*Party)
	if newOwner == nil || d.Agent == nil || !newOwner.HasRole(d.Agent.Name) {
		return false, "delegation recipient does not fulfill the required agent role"
	}

	loanContext, _ := kwargs.Get("loan")

	var found *DeonticTokenInstance
	for _, tok := range e.tokens {
		if tok.Owner != delegator || tok.Template.Name != d.TokenName || tok.State != Active {
			continue
		}
		existingLoan, _ := tok.Context.Get("loan")
		if existingLoan != loanContext {
			continue
		}
		found = tok
		break
	}

	if found == nil {
		return false, "no active token named '" + d.TokenName + "' found to delegate in this context"
	}

	found.Owner = newOwner
	e.tracer.LogTokenStateChange(found.InstanceID, found.Template.Name, newOwner.Name, found.State.String(), "delegated via "+d.Name)
	return true, ""
}
