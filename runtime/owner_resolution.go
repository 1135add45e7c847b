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

// resolveTokenOwner determines who a freshly minted token belongs to. A
// token with no affected role always belongs to the performer. Otherwise
// scan the action's arguments in order: a Party argument fulfilling the
// role is the owner; failing that, scan each ArtifactInstance argument's
// own properties (in insertion order) for a Party fulfilling the role;
// failing both, the performer is the owner.
func resolveTokenOwner(template *model.DeonticToken, performer *Party, actionArgs *Args) *Party {
	if template.AffectedRole == nil {
		return performer
	}
	roleName := template.AffectedRole.Name

	for _, key := range actionArgs.Keys() {
		arg, _ := actionArgs.Get(key)
		if p, ok := arg.(*Party); ok && p.HasRole(roleName) {
			return p
		}
	}
	for _, key := range actionArgs.Keys() {
		arg, _ := actionArgs.Get(key)
		art, ok := arg.(*ArtifactInstance)
		if !ok || art.Properties == nil {
			continue
		}
		for _, propKey := range art.Properties.Keys() {
			v, _ := art.Properties.Get(propKey)
			if p, ok := v.(*Party); ok && p.HasRole(roleName) {
				return p
			}
		}
	}
	return performer
}
