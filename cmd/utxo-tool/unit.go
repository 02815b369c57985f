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

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/spf13/cobra"
)

type unitInfo struct {
	Unit        string  `json:"unit"`
	PolicyId    string  `json:"policyId"`
	AssetName   string  `json:"assetName"`
	Name        string  `json:"name"`
	Label       *uint16 `json:"label,omitempty"`
	Fingerprint string  `json:"fingerprint"`
}

func unitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit <unit>...",
		Short: "Show the parts and fingerprint of asset units",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := unitRun(args, cmd.OutOrStdout()); err != nil {
				slog.Error(err.Error(), "component", programName)
				os.Exit(1)
			}
		},
	}
	return cmd
}

func unitRun(units []string, stdout io.Writer) error {
	ret := make([]unitInfo, 0, len(units))
	for _, unit := range units {
		fingerprint, err := asset.Fingerprint(unit)
		if err != nil {
			return err
		}
		parts := asset.SplitUnit(unit)
		info := unitInfo{
			Unit:        unit,
			PolicyId:    parts.PolicyId,
			AssetName:   parts.AssetName,
			Name:        parts.Name,
			Fingerprint: fingerprint,
		}
		if parts.HasLabel {
			label := parts.Label
			info.Label = &label
		}
		ret = append(ret, info)
	}
	return writeJSON(stdout, ret)
}
