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

// Tracer records the top-level steps of a simulation run: one entry per
// perform_action call that gets past the party and action lookups
// (successful or prohibited; an action that passes its screens and then
// fails in a built-in effect or a delegation gets a second, prohibited
// entry), one per token created, and one per token state or owner change. Its History is the sole input to report.Mermaid and
// the colorized console listing — both are pure functions over it.
type Tracer struct {
	History []*Node
}

func NewTracer() *Tracer {
	return &Tracer{}
}

func (t *Tracer) record(n *Node) *Node {
	t.History = append(t.History, n)
	return n
}

// LogAction records a performed action, attributing it to its party.
func (t *Tracer) LogAction(party, actionName string, args map[string]any) *Node {
	return t.record(&Node{
		Kind: "action",
		Op:   actionName,
		Meta: map[string]any{
			"party": party,
			"args":  args,
		},
	})
}

// LogActionProhibited records an attempted action that the engine denied.
func (t *Tracer) LogActionProhibited(party, actionName, reason string) *Node {
	return t.record(&Node{
		Kind: "action-prohibited",
		Op:   actionName,
		Meta: map[string]any{
			"party":  party,
			"reason": reason,
		},
	})
}

// LogTokenCreate records a deontic token instance coming into existence.
func (t *Tracer) LogTokenCreate(tokenID, templateName, owner string) *Node {
	return t.record(&Node{
		Kind: "token-create",
		Op:   templateName,
		Meta: map[string]any{
			"token_id": tokenID,
			"owner":    owner,
		},
	})
}

// LogTokenStateChange records a token instance moving to a new state as a
// consequence of an event, or changing owner through a delegation (then
// triggerEvent names the delegating action).
func (t *Tracer) LogTokenStateChange(tokenID, templateName, owner, newState, triggerEvent string) *Node {
	return t.record(&Node{
		Kind: "token-state-change",
		Op:   templateName,
		Meta: map[string]any{
			"token_id":      tokenID,
			"owner":         owner,
			"new_state":     newState,
			"trigger_event": triggerEvent,
		},
	})
}
