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

// Package guard evaluates a model.Guard's raw boolean JavaScript expression
// against a named context. Guard expressions are opaque to the static
// model — evaluation is entirely this package's concern, kept separate so
// model never imports a scripting runtime.
package guard

import (
	"context"

	"github.com/civitas-lang/civitas/xerr"
	"github.com/dop251/goja"
	"github.com/jackc/puddle/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Evaluator runs guard expressions in a pool of reusable JS runtimes.
type Evaluator struct {
	pool  *puddle.Pool[*goja.Runtime]
	cache map[uint64]bool
}

// NewEvaluator builds an Evaluator whose runtime pool grows to maxRuntimes.
func NewEvaluator(maxRuntimes int32) (*Evaluator, error) {
	pool, err := puddle.NewPool(&puddle.Config[*goja.Runtime]{
		Constructor: func(ctx context.Context) (*goja.Runtime, error) {
			return goja.New(), nil
		},
		Destructor: func(vm *goja.Runtime) {
			vm.ClearInterrupt()
		},
		MaxSize: maxRuntimes,
	})
	if err != nil {
		return nil, err
	}
	return &Evaluator{pool: pool, cache: make(map[uint64]bool)}, nil
}

// Evaluate coerces the result of running raw against bindings to a bool:
// a non-boolean result goes through JS truthiness, with undefined and null
// false. A guard that raises or times out is treated as false (a
// fail-closed default), and the raised error is still returned so the
// caller can attach it to the trace.
func (e *Evaluator) Evaluate(ctx context.Context, raw string, bindings map[string]any) (bool, error) {
	key, hashErr := hashstructure.Hash(struct {
		Raw      string
		Bindings map[string]any
	}{raw, bindings}, hashstructure.FormatV2, nil)
	if hashErr == nil {
		if cached, ok := e.cache[key]; ok {
			return cached, nil
		}
	}

	res, err := e.pool.Acquire(ctx)
	if err != nil {
		return false, xerr.ErrGuardEvaluation(raw, err)
	}
	defer res.Release()
	vm := res.Value()
	vm.ClearInterrupt()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	for name, value := range bindings {
		if err := vm.Set(name, value); err != nil {
			return false, xerr.ErrGuardEvaluation(raw, err)
		}
	}

	value, err := vm.RunString(raw)
	if err != nil {
		return false, xerr.ErrGuardEvaluation(raw, err)
	}

	ok := toBoolean(value)
	if hashErr == nil {
		e.cache[key] = ok
	}
	return ok, nil
}

func toBoolean(v goja.Value) bool {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return false
	}
	return v.ToBoolean()
}

// Close releases all pooled runtimes.
func (e *Evaluator) Close() {
	e.pool.Close()
}
