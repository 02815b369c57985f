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
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/blinklabs-io/utxokit/utxo"
	"gopkg.in/yaml.v3"
)

// readInput reads the named file, or stdin when the name is empty or "-"
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// parseUtxos parses a list of UTxOs in YAML or JSON form
func parseUtxos(data []byte) ([]utxo.UTxO, error) {
	var ret []utxo.UTxO
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("failed to parse UTxOs: %w", err)
	}
	if ret == nil {
		ret = []utxo.UTxO{}
	}
	return ret, nil
}

// parseAssets parses "unit=quantity" pairs into an asset bag. Repeated units are summed
func parseAssets(pairs []string) (asset.Assets, error) {
	ret := asset.Assets{}
	for _, pair := range pairs {
		unit, qtyStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid asset %q: expected unit=quantity", pair)
		}
		unit = strings.TrimSpace(unit)
		if err := asset.ValidateUnit(unit); err != nil {
			return nil, err
		}
		qty, ok := new(big.Int).SetString(strings.TrimSpace(qtyStr), 10)
		if !ok {
			return nil, fmt.Errorf("invalid quantity in %q", pair)
		}
		if qty.Sign() < 0 {
			return nil, asset.UnitError{Unit: unit, Err: asset.ErrNegativeQuantity}
		}
		ret = asset.Merge(ret, asset.Assets{unit: qty})
	}
	return ret, nil
}

// parseHexLines splits input into non-empty, trimmed lines
func parseHexLines(data []byte) ([]string, error) {
	var ret []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret = append(ret, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ret) == 0 {
		return nil, errors.New("no input")
	}
	return ret, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
