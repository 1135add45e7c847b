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

// Package xerr is the engine's error taxonomy: a small set of typed
// sentinel errors wrapped with github.com/pkg/errors so callers can both
// errors.Is against the kind and read a human-readable message.
package xerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConstructionError: duplicate names during index build, malformed policy
// envelopes, or other defects discovered while assembling the static model.
type ConstructionError struct{}

func (e ConstructionError) Error() string { return "construction error" }

func ErrDuplicateName(kind, name, community string) error {
	return errors.Wrapf(ConstructionError{}, "duplicate %s name %q in community %q", kind, name, community)
}

func ErrEmptyEnvelope(policy string) error {
	return errors.Wrapf(ConstructionError{}, "policy envelope for %q needs a non-empty policy name and at least one envelope rule", policy)
}

func ErrImportCycle(path []string) error {
	return errors.Wrapf(ConstructionError{}, "community import cycle: %v", path)
}

// DriverMisuseError: unknown party/action/artifact template, duplicate ids.
// These are reported as errors to the caller and never propagated as a
// panic.
type DriverMisuseError struct{}

func (e DriverMisuseError) Error() string { return "driver misuse" }

func ErrUnknownParty(name string) error {
	return errors.Wrapf(DriverMisuseError{}, "party %q not found", name)
}

func ErrPartyExists(name string) error {
	return errors.Wrapf(DriverMisuseError{}, "party %q already exists", name)
}

func ErrUnknownRole(name string) error {
	return errors.Wrapf(DriverMisuseError{}, "role %q not found", name)
}

func ErrUnknownAction(party, action string) error {
	return errors.Wrapf(DriverMisuseError{}, "action %q not found for party %q", action, party)
}

func ErrUnknownArtifactTemplate(name string) error {
	return errors.Wrapf(DriverMisuseError{}, "artifact template %q not found", name)
}

func ErrArtifactExists(id string) error {
	return errors.Wrapf(DriverMisuseError{}, "artifact %q already exists", id)
}

// NormativeDenialError: embargo, guard failure, delegation precondition.
// Logged via the tracer's log_action_prohibited entry; no state change.
type NormativeDenialError struct{ Reason string }

func (e NormativeDenialError) Error() string { return fmt.Sprintf("denied: %s", e.Reason) }

func ErrDenied(reason string) error {
	return NormativeDenialError{Reason: reason}
}

// EvaluationError: a guard expression raised during evaluation. Caught,
// logged, and treated as false by the engine — this type exists so the
// tracer can still record the underlying cause.
type EvaluationError struct{}

func (e EvaluationError) Error() string { return "guard evaluation error" }

func ErrGuardEvaluation(raw string, cause error) error {
	return errors.Wrapf(EvaluationError{}, "guard %q: %v", raw, cause)
}
