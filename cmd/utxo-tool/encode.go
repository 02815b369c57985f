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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/utxokit/internal/config"
	"github.com/blinklabs-io/utxokit/utxo"
	"github.com/spf13/cobra"
)

func encodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [utxo-file]",
		Short: "Encode UTxOs from YAML or JSON into hex CBOR, one per line",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := configFromCommand(cmd)
			inFile := ""
			if len(args) > 0 {
				inFile = args[0]
			}
			if err := encodeRun(cfg, inFile, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				slog.Error(err.Error(), "component", programName)
				os.Exit(1)
			}
		},
	}
	return cmd
}

func encodeRun(cfg *config.Config, inFile string, stdin io.Reader, stdout io.Writer) error {
	data, err := readInput(inFile, stdin)
	if err != nil {
		return err
	}
	utxos, err := parseUtxos(data)
	if err != nil {
		return err
	}
	translator := utxo.NewTranslator(
		utxo.WithWorkers(cfg.Workers),
		utxo.WithLogger(slog.Default()),
	)
	outputs, err := translator.ToUnspentOutputs(utxos)
	if err != nil {
		return err
	}
	for _, output := range outputs {
		cborHex, err := output.CborHex()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, cborHex); err != nil {
			return err
		}
	}
	slog.Debug(
		"encoded UTxOs",
		"component", programName,
		"count", len(outputs),
		"workers", translator.Workers(),
	)
	return nil
}
