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
	"fmt"
	"os"
	"path/filepath"

	"github.com/binaek/cling"
	"github.com/civitas-lang/civitas/constants"
	"github.com/pkg/errors"
)

func addInitCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("init", initCmd).
			WithFlag(cling.NewStringCmdInput("directory").WithDefault(".").WithDescription("The directory to initialize in, must be empty.").AsFlag()).
			WithArgument(cling.NewStringCmdInput("name").WithDescription("The name of the first community.").AsArgument()),
	)
}

type initCmdArgs struct {
	Directory string `cling-name:"directory"`
	Name      string `cling-name:"name"`
}

const manifestTemplate = `[[community]]
name = "%s"
objective = ""
contract = ""
`

func initCmd(ctx context.Context, args []string) error {
	input := initCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	stat, err := os.Stat(input.Directory)
	if err != nil {
		return err
	}
	if !stat.IsDir() {
		return errors.New("directory is not a directory")
	}

	entries, err := os.ReadDir(input.Directory)
	if err != nil {
		return errors.Wrap(err, "could not read directory")
	}
	if len(entries) > 0 {
		return errors.New("directory is not empty - please choose a different directory")
	}

	path := filepath.Join(input.Directory, input.Name+"."+constants.ManifestFileExtension)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "could not create manifest file")
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(fmt.Sprintf(manifestTemplate, input.Name)); err != nil {
		return errors.Wrap(err, "could not write manifest file")
	}

	return nil
}
