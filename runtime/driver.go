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

import (
	"github.com/civitas-lang/civitas/model"
	"github.com/civitas-lang/civitas/xerr"
)

// CreateParty instantiates a party fulfilling the named roles, drawn from
// the model's first community (the driver's single-community assumption).
func (e *Engine) CreateParty(name string, roleNames []string) error {
	if _, exists := e.parties[name]; exists {
		return xerr.ErrPartyExists(name)
	}
	if len(e.Model.Communities) == 0 {
		return xerr.ErrUnknownRole("<no communities loaded>")
	}

	community := e.Model.Communities[0]
	roles := make([]*model.CommunityRole, 0, len(roleNames))
	for _, rn := range roleNames {
		r := community.Role(rn)
		if r == nil {
			return xerr.ErrUnknownRole(rn)
		}
		roles = append(roles, r)
	}

	e.parties[name] = &Party{Name: name, FulfillsRoles: roles}
	e.Log.Info("created party", "name", name, "roles", roleNames)
	return nil
}

// CreateArtifactInstance instantiates an Artifact template with the given
// properties, drawn from the model's first community.
func (e *Engine) CreateArtifactInstance(artifactType, instanceID string, properties *Args) (*ArtifactInstance, error) {
	if _, exists := e.artifacts[instanceID]; exists {
		return nil, xerr.ErrArtifactExists(instanceID)
	}
	if len(e.Model.Communities) == 0 {
		return nil, xerr.ErrUnknownArtifactTemplate(artifactType)
	}

	community := e.Model.Communities[0]
	template := community.ArtifactByName(artifactType)
	if template == nil {
		return nil, xerr.ErrUnknownArtifactTemplate(artifactType)
	}
	if properties == nil {
		properties = NewArgs()
	}

	instance := &ArtifactInstance{
		InstanceID: instanceID,
		Template:   template,
		Properties: properties,
	}
	e.artifacts[instanceID] = instance
	e.Log.Info("created artifact", "type", artifactType, "id", instanceID)
	return instance, nil
}
