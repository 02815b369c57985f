// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/utxokit/internal/config"
	"github.com/blinklabs-io/utxokit/utxo"
	"github.com/spf13/cobra"
)

type selectResult struct {
	Status   string      `json:"status"`
	Selected []utxo.UTxO `json:"selected"`
}

func selectCommand() *cobra.Command {
	cmdFlags := struct {
		require []string
		sort    bool
	}{}
	cmd := &cobra.Command{
		Use:   "select [utxo-file]",
		Short: "Select UTxOs covering the required assets",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := configFromCommand(cmd)
			inFile := ""
			if len(args) > 0 {
				inFile = args[0]
			}
			if err := selectRun(
				cfg,
				inFile,
				cmdFlags.require,
				cmdFlags.sort,
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			); err != nil {
				slog.Error(err.Error(), "component", programName)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringArrayVarP(&cmdFlags.require, "require", "r", nil, "required asset as unit=quantity (repeatable)")
	cmd.Flags().BoolVar(&cmdFlags.sort, "sort", false, "sort UTxOs by lovelace in the configured order before selecting")
	return cmd
}

func selectRun(
	cfg *config.Config,
	inFile string,
	require []string,
	sortFirst bool,
	stdin io.Reader,
	stdout io.Writer,
) error {
	required, err := parseAssets(require)
	if err != nil {
		return err
	}
	data, err := readInput(inFile, stdin)
	if err != nil {
		return err
	}
	utxos, err := parseUtxos(data)
	if err != nil {
		return err
	}
	if sortFirst {
		utxos = utxo.SortByLovelace(utxos, cfg.Order())
	}
	selection, err := utxo.Select(utxos, required, utxo.WithSelectLogger(slog.Default()))
	if err != nil {
		return err
	}
	return writeJSON(
		stdout,
		selectResult{
			Status:   selection.Status.String(),
			Selected: selection.Selected,
		},
	)
}
