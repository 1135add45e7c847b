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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/binaek/cling"
	"github.com/civitas-lang/civitas/loader"
	"github.com/civitas-lang/civitas/report"
	"github.com/civitas-lang/civitas/runtime"
	"github.com/pkg/errors"
)

func addRunCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("run", runCmd).
			WithArgument(cling.NewStringCmdInput("manifest").
				WithDescription("Manifest file to load").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("scenario").
				WithDefault("").
				WithDescription("JSON file of driver steps to play through the engine").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("mermaid-out").
				WithDefault("").
				WithDescription("File to write the run's Mermaid sequence diagram to").
				AsFlag(),
			),
	)
}

type runCmdArgs struct {
	Manifest   string `cling-name:"manifest"`
	Scenario   string `cling-name:"scenario"`
	MermaidOut string `cling-name:"mermaid-out"`
}

// scenarioStep is one line of a scenario file: exactly one of Party,
// Artifact, or Action is set.
type scenarioStep struct {
	Party *struct {
		Name  string   `json:"name"`
		Roles []string `json:"roles"`
	} `json:"party,omitempty"`

	Artifact *struct {
		Type       string         `json:"type"`
		ID         string         `json:"id"`
		Properties map[string]any `json:"properties"`
	} `json:"artifact,omitempty"`

	Action *struct {
		Party  string         `json:"party"`
		Action string         `json:"action"`
		Kwargs map[string]any `json:"kwargs"`
	} `json:"action,omitempty"`
}

func runCmd(ctx context.Context, args []string) error {
	input := runCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	m, warnings, err := loader.LoadManifest(input.Manifest)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}

	engine, err := runtime.NewEngine(m, nil)
	if err != nil {
		return errors.Wrap(err, "construct engine")
	}
	defer engine.Close()

	if input.Scenario != "" {
		if err := playScenario(ctx, engine, input.Scenario); err != nil {
			return err
		}
	}

	if input.MermaidOut != "" {
		diagram := report.Mermaid(engine.Tracer().History)
		if err := os.WriteFile(input.MermaidOut, []byte(diagram), 0o644); err != nil {
			return errors.Wrap(err, "write mermaid diagram")
		}
	}

	report.WriteConsole(os.Stdout, engine.Tracer().History)
	return nil
}

func playScenario(ctx context.Context, engine *runtime.Engine, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read scenario")
	}

	var steps []scenarioStep
	if err := json.Unmarshal(b, &steps); err != nil {
		return errors.Wrap(err, "parse scenario")
	}

	for i, step := range steps {
		switch {
		case step.Party != nil:
			if err := engine.CreateParty(step.Party.Name, step.Party.Roles); err != nil {
				return errors.Wrapf(err, "scenario step %d: create party", i)
			}
		case step.Artifact != nil:
			_, err := engine.CreateArtifactInstance(step.Artifact.Type, step.Artifact.ID, runtime.ArgsFromMap(step.Artifact.Properties))
			if err != nil {
				return errors.Wrapf(err, "scenario step %d: create artifact", i)
			}
		case step.Action != nil:
			_, err := engine.PerformAction(ctx, step.Action.Party, step.Action.Action, runtime.ArgsFromMap(step.Action.Kwargs))
			if err != nil {
				return errors.Wrapf(err, "scenario step %d: perform action", i)
			}
		default:
			return fmt.Errorf("scenario step %d: empty step", i)
		}
	}
	return nil
}
