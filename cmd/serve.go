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

	"github.com/binaek/cling"
	"github.com/civitas-lang/civitas/api"
	"github.com/civitas-lang/civitas/loader"
	"github.com/civitas-lang/civitas/runtime"
)

func addServeCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("serve", serveCmd).
			WithArgument(cling.NewStringCmdInput("manifest").
				WithDescription("Manifest file to load").
				AsArgument(),
			).
			WithFlag(cling.
				NewIntCmdInput("port").
				WithDefault(7529).
				WithDescription("Port to listen on").
				AsFlag(),
			).
			WithFlag(cling.
				NewCmdSliceInput[string]("listen").
				WithDefault([]string{"local"}).
				WithDescription("Address(es) to listen on").
				AsFlag(),
			),
	)
}

type serveCmdArgs struct {
	Manifest string   `cling-name:"manifest"`
	Port     int      `cling-name:"port"`
	Listen   []string `cling-name:"listen"`
}

func serveCmd(ctx context.Context, args []string) error {
	input := serveCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	m, _, err := loader.LoadManifest(input.Manifest)
	if err != nil {
		return err
	}

	engine, err := runtime.NewEngine(m, nil)
	if err != nil {
		return err
	}
	defer engine.Close()

	server := api.NewServer(engine)
	if err := server.Setup(ctx, input.Port, input.Listen); err != nil {
		return err
	}
	server.StartServer(ctx)

	<-ctx.Done()
	return server.StopServer(context.WithoutCancel(ctx))
}
