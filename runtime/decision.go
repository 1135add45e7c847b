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

import "github.com/civitas-lang/civitas/deontic"

// Decision is the outcome PerformAction reports for a single call, in
// addition to the trace entry it records.
type Decision struct {
	Verdict deontic.Verdict
	Reason  string
}

func permitted() *Decision {
	return &Decision{Verdict: deontic.Permitted}
}

func prohibited(reason string) *Decision {
	return &Decision{Verdict: deontic.Prohibited, Reason: reason}
}

func obligatory(reason string) *Decision {
	return &Decision{Verdict: deontic.Obligatory, Reason: reason}
}
