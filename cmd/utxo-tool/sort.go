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

func sortCommand() *cobra.Command {
	cmdFlags := struct {
		order string
	}{}
	cmd := &cobra.Command{
		Use:   "sort [utxo-file]",
		Short: "Sort UTxOs by lovelace",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := configFromCommand(cmd)
			if cmdFlags.order != "" {
				cfg.SortOrder = cmdFlags.order
			}
			inFile := ""
			if len(args) > 0 {
				inFile = args[0]
			}
			if err := sortRun(cfg, inFile, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				slog.Error(err.Error(), "component", programName)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&cmdFlags.order, "order", "o", "", "sort order: descending or ascending (overrides config)")
	return cmd
}

func sortRun(cfg *config.Config, inFile string, stdin io.Reader, stdout io.Writer) error {
	order, err := utxo.ParseSortOrder(cfg.SortOrder)
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
	return writeJSON(stdout, utxo.SortByLovelace(utxos, order))
}
