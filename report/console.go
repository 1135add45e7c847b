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
	"io"

	"github.com/civitas-lang/civitas/runtime/trace"
	"github.com/fatih/color"
)

// logColors mirrors the original tracer's palette: success/error/warning/
// info/default, one per node kind.
var (
	colorSuccess = color.New(color.FgGreen)
	colorError   = color.New(color.FgRed)
	colorWarning = color.New(color.FgYellow)
	colorInfo    = color.New(color.FgCyan)
	colorDefault = color.New(color.FgHiBlack)
)

// WriteConsole writes one colorized line per history entry to w: a
// permitted or obligatory action in green, a prohibited attempt in red, and
// token lifecycle notes in cyan/yellow.
func WriteConsole(w io.Writer, history []*trace.Node) {
	for _, n := range history {
		switch n.Kind {
		case "action":
			party, _ := n.Meta["party"].(string)
			colorSuccess.Fprintf(w, "[ACTION] %s performed %s\n", party, n.Op)

		case "action-prohibited":
			party, _ := n.Meta["party"].(string)
			reason, _ := n.Meta["reason"].(string)
			colorError.Fprintf(w, "[PROHIBITED] %s attempted %s: %s\n", party, n.Op, reason)

		case "token-create":
			owner, _ := n.Meta["owner"].(string)
			colorInfo.Fprintf(w, "[TOKEN] %s created for %s\n", n.Op, owner)

		case "token-state-change":
			owner, _ := n.Meta["owner"].(string)
			newState, _ := n.Meta["new_state"].(string)
			colorWarning.Fprintf(w, "[TOKEN] %s held by %s is now %s\n", n.Op, owner, newState)

		default:
			colorDefault.Fprintf(w, "[%s] %s\n", n.Kind, n.Op)
		}
	}
}
