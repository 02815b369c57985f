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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/utxokit/internal/config"
	"github.com/blinklabs-io/utxokit/ledger"
	"github.com/blinklabs-io/utxokit/utxo"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
)

const (
	decodeFormatUtxo    = "utxo"
	decodeFormatUtxorpc = "utxorpc"
)

type utxorpcResult struct {
	Input  json.RawMessage `json:"input"`
	Output json.RawMessage `json:"output"`
}

func decodeCommand() *cobra.Command {
	cmdFlags := struct {
		input  string
		format string
	}{}
	cmd := &cobra.Command{
		Use:   "decode [cbor-hex...]",
		Short: "Decode hex CBOR unspent outputs into JSON",
		Long:  "Decode hex CBOR unspent outputs into JSON. Without arguments, one hex string per line is read from the input file or stdin",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := configFromCommand(cmd)
			if err := decodeRun(
				cfg,
				args,
				cmdFlags.input,
				cmdFlags.format,
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			); err != nil {
				slog.Error(err.Error(), "component", programName)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&cmdFlags.input, "input", "i", "", "file with one hex CBOR string per line")
	cmd.Flags().StringVarP(&cmdFlags.format, "format", "f", decodeFormatUtxo, "output format: utxo or utxorpc")
	return cmd
}

func decodeRun(
	cfg *config.Config,
	args []string,
	inFile string,
	format string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	if format == "" {
		format = decodeFormatUtxo
	}
	if format != decodeFormatUtxo && format != decodeFormatUtxorpc {
		return fmt.Errorf("unknown output format: %s", format)
	}
	cborHexes := args
	if len(cborHexes) == 0 {
		data, err := readInput(inFile, stdin)
		if err != nil {
			return err
		}
		cborHexes, err = parseHexLines(data)
		if err != nil {
			return err
		}
	}
	outputs := make([]*ledger.UnspentOutput, 0, len(cborHexes))
	for _, cborHex := range cborHexes {
		output, err := ledger.NewUnspentOutputFromCborHex(cborHex)
		if err != nil {
			return err
		}
		outputs = append(outputs, output)
	}
	if format == decodeFormatUtxorpc {
		return writeUtxorpc(stdout, outputs)
	}
	translator := utxo.NewTranslator(
		utxo.WithWorkers(cfg.Workers),
		utxo.WithLogger(slog.Default()),
	)
	utxos, err := translator.FromUnspentOutputs(outputs)
	if err != nil {
		return err
	}
	return writeJSON(stdout, utxos)
}

func writeUtxorpc(stdout io.Writer, outputs []*ledger.UnspentOutput) error {
	ret := make([]utxorpcResult, 0, len(outputs))
	for idx, output := range outputs {
		rpcOutput, err := output.UtxoOutput.Utxorpc()
		if err != nil {
			return fmt.Errorf("output %d: %w", idx, err)
		}
		inputJson, err := protojson.Marshal(output.UtxoInput.Utxorpc())
		if err != nil {
			return err
		}
		outputJson, err := protojson.Marshal(rpcOutput)
		if err != nil {
			return err
		}
		ret = append(
			ret,
			utxorpcResult{
				Input:  inputJson,
				Output: outputJson,
			},
		)
	}
	return writeJSON(stdout, ret)
}
