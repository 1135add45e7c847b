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

package model

// Artifact is a template for the enterprise objects referenced, rather than
// performing, an action (Clause 6.3.3: "that object may be called an
// artefact"). Parties is the set of roles allowed to hold it.
type Artifact struct {
	Name       string
	Parties    []*CommunityRole
	Properties []Property
}

func (a *Artifact) String() string { return a.Name }
