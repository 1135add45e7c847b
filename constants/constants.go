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

// Package constants holds names shared between cmd and the rest of the
// module: the application name and the environment variables its CLI
// recognizes.
package constants

const (
	APPNAME    = "civitas"
	APPVERSION = "0.1.0"

	ManifestFileExtension = "civitas.toml"
)

const (
	EnvLogLevel = "CIVITAS_LOG_LEVEL"
	EnvDebug    = "CIVITAS_DEBUG"
)
