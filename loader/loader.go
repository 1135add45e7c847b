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

package loader

import (
	"os"

	"github.com/civitas-lang/civitas/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrManifestInvalid  = errors.New("manifest file invalid")
)

// LoadManifest reads a TOML community manifest from path, hydrates it into a
// *model.Model, and validates its import graph. Warnings are unresolved
// references the hydrator chose not to treat as fatal; the model returned
// alongside them is still usable.
func LoadManifest(path string) (*model.Model, []string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrap(ErrManifestNotFound, path)
		}
		return nil, nil, errors.Wrap(err, "read manifest")
	}

	var raw RawModel
	if err := toml.Unmarshal(b, &raw); err != nil {
		return nil, nil, errors.Wrap(ErrManifestInvalid, err.Error())
	}

	m, warnings, err := Hydrate(&raw)
	if err != nil {
		return nil, warnings, errors.Wrap(err, "hydrate manifest")
	}

	return m, warnings, nil
}
