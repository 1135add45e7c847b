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

// fireEvent processes an event's consequences on every live token: it may
// activate a token whose activation trigger is this event, or discharge an
// active token whose finish expression evaluates true against this single
// event. Finish expressions are only ever checked against the event that
// just fired, not the full history. It reports whether a Burden token
// owned by performer newly became Active.
func (e *Engine) fireEvent(event *model.Event, performer *Party) bool {
	occurred := map[string]struct{}{event.Name: {}}
	performerGainedBurden := false

	for _, tok := range e.tokens {
		switch {
		case tok.State == Inactive && tok.Template.ActivationTrigger != nil && tok.Template.ActivationTrigger.Name == event.Name:
			tok.State = Active
			e.tracer.LogTokenStateChange(tok.InstanceID, tok.Template.Name, tok.Owner.Name, tok.State.String(), event.Name)
			if tok.Owner == performer && tok.Template.IsBurden() {
				performerGainedBurden = true
			}
		case tok.State == Active && tok.Template.FinishExpression != nil:
			if tok.Template.FinishExpression.Evaluate(occurred) {
				tok.State = Discharged
				e.tracer.LogTokenStateChange(tok.InstanceID, tok.Template.Name, tok.Owner.Name, tok.State.String(), event.Name)
			}
		}
	}

	return performerGainedBurden
}
