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
	"log/slog"

	"github.com/civitas-lang/civitas/model"
	"github.com/civitas-lang/civitas/runtime/guard"
	"github.com/civitas-lang/civitas/runtime/trace"
)

// BuiltinEffect is a named side-effecting action body (Clause 6.4.4 —
// actions carry behaviour distinct from their deontic consequences),
// invoked after an action's guard passes and before its deontic effects are
// applied. It may read and write artifact instances on the engine and
// mutate kwargs (e.g. to bind a freshly created artifact back for the
// token-effect and event-firing stages that follow).
type BuiltinEffect func(e *Engine, performer *Party, kwargs *Args) error

// Engine is the single-threaded simulation driver over one hydrated Model.
// All mutation happens inside PerformAction; nothing here is safe for
// concurrent use by multiple goroutines against the same instance.
type Engine struct {
	Model *model.Model
	Log   *slog.Logger

	parties  map[string]*Party
	artifacts map[string]*ArtifactInstance
	tokens   []*DeonticTokenInstance
	tracer   *trace.Tracer
	guard    *guard.Evaluator

	policyValues map[string]model.PolicyValue
	builtins     map[string]BuiltinEffect
}

// NewEngine builds an Engine over m, caching every policy's initial value
// and pre-populating the built-in registry with borrowItem, returnItem,
// fineBorrower, and payFine.
func NewEngine(m *model.Model, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}

	ev, err := guard.NewEvaluator(16)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		Model:        m,
		Log:          log,
		parties:      make(map[string]*Party),
		artifacts:    make(map[string]*ArtifactInstance),
		tracer:       trace.NewTracer(),
		guard:        ev,
		policyValues: make(map[string]model.PolicyValue),
		builtins:     make(map[string]BuiltinEffect),
	}

	for _, c := range m.Communities {
		for _, p := range c.Policies {
			e.policyValues[p.Name] = p.InitialValue
		}
	}

	e.RegisterBuiltin("borrowItem", builtinBorrowItem)
	e.RegisterBuiltin("returnItem", builtinReturnItem)
	e.RegisterBuiltin("fineBorrower", builtinFineBorrower)
	e.RegisterBuiltin("payFine", builtinPayFine)

	return e, nil
}

// RegisterBuiltin adds or replaces a named built-in effect.
func (e *Engine) RegisterBuiltin(name string, fn BuiltinEffect) {
	e.builtins[name] = fn
}

// Tracer exposes the accumulated decision history for report export.
func (e *Engine) Tracer() *trace.Tracer {
	return e.tracer
}

// Close releases the engine's pooled JS runtimes.
func (e *Engine) Close() {
	e.guard.Close()
}

// PolicyValue reads a policy's current cached value by name.
func (e *Engine) PolicyValue(name string) (model.PolicyValue, bool) {
	v, ok := e.policyValues[name]
	return v, ok
}

// SetPolicyValue overwrites a policy's cached value. It checks neither the
// policy's setting role nor its envelope bounds (Clause 6.8), and nothing
// inside the engine calls it: PerformAction and the other driver
// operations never change policy values.
func (e *Engine) SetPolicyValue(name string, v model.PolicyValue) {
	e.policyValues[name] = v
}

// Party looks up a live party by name.
func (e *Engine) Party(name string) (*Party, bool) {
	p, ok := e.parties[name]
	return p, ok
}

// ArtifactInstance looks up a live artifact instance by id.
func (e *Engine) ArtifactInstance(id string) (*ArtifactInstance, bool) {
	a, ok := e.artifacts[id]
	return a, ok
}
