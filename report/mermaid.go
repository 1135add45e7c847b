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

// Package report renders a trace.Tracer's history as a Mermaid sequence
// diagram and a colorized console listing. Both are pure functions over
// []*trace.Node; neither mutates or re-derives engine state.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/civitas-lang/civitas/runtime/trace"
)

// Mermaid renders a simulation history as a Mermaid sequenceDiagram, one
// participant per distinct party/owner name referenced anywhere in the
// history plus a fixed "Engine" participant.
func Mermaid(history []*trace.Node) string {
	participants := mermaidParticipants(history)

	var b strings.Builder
	b.WriteString("sequenceDiagram\n")
	b.WriteString("    participant Engine\n")
	for _, p := range participants {
		fmt.Fprintf(&b, "    participant %s\n", p)
	}
	b.WriteString("\n")

	for _, n := range history {
		switch n.Kind {
		case "action":
			party, _ := n.Meta["party"].(string)
			fmt.Fprintf(&b, "    %s->>+Engine: %s()\n", party, n.Op)

		case "action-prohibited":
			party, _ := n.Meta["party"].(string)
			reason, _ := n.Meta["reason"].(string)
			reason = strings.ReplaceAll(reason, `"`, "'")
			fmt.Fprintf(&b, "    %s->>+Engine: [Attempt] %s()\n", party, n.Op)
			fmt.Fprintf(&b, "    Engine-->>-%s: Prohibited\n", party)
			fmt.Fprintf(&b, "    Note over Engine,%s: %s\n", party, reason)

		case "token-create":
			owner, _ := n.Meta["owner"].(string)
			fmt.Fprintf(&b, "    Note over %s: Token '%s' CREATED\n", owner, n.Op)

		case "token-state-change":
			owner, _ := n.Meta["owner"].(string)
			newState, _ := n.Meta["new_state"].(string)
			triggerEvent, _ := n.Meta["trigger_event"].(string)
			fmt.Fprintf(&b, "    Engine-->>-Engine: Event: %s\n", triggerEvent)
			fmt.Fprintf(&b, "    Note over %s: Token '%s' is now %s\n", owner, n.Op, newState)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func mermaidParticipants(history []*trace.Node) []string {
	seen := make(map[string]struct{})
	for _, n := range history {
		if party, ok := n.Meta["party"].(string); ok && party != "" {
			seen[party] = struct{}{}
		}
		if owner, ok := n.Meta["owner"].(string); ok && owner != "" {
			seen[owner] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
