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

package utxo

import (
	"log/slog"
	"sync/atomic"

	"github.com/blinklabs-io/utxokit/ledger"
	"golang.org/x/sync/errgroup"
)

// Translator runs batch translations. With more than one worker, elements are translated in
// parallel while keeping index order and the sequential failure semantics
type Translator struct {
	logger  *slog.Logger
	workers int
}

type TranslatorOptionFunc func(*Translator)

// NewTranslator returns a Translator configured with the provided options
func NewTranslator(opts ...TranslatorOptionFunc) *Translator {
	t := &Translator{
		workers: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.workers < 1 {
		t.workers = 1
	}
	return t
}

// WithLogger specifies the logger to use. Defaults to slog.Default()
func WithLogger(logger *slog.Logger) TranslatorOptionFunc {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithWorkers specifies how many elements of a batch may be translated at once
func WithWorkers(workers int) TranslatorOptionFunc {
	return func(t *Translator) {
		t.workers = workers
	}
}

// Workers returns the configured batch parallelism
func (t *Translator) Workers() int {
	return t.workers
}

// ToUnspentOutputs translates each UTxO with ToUnspentOutput
func (t *Translator) ToUnspentOutputs(utxos []UTxO) ([]*ledger.UnspentOutput, error) {
	return translateBatch(t, "to_unspent_outputs", utxos, ToUnspentOutput)
}

// FromUnspentOutputs translates each unspent output with FromUnspentOutput
func (t *Translator) FromUnspentOutputs(xs []*ledger.UnspentOutput) ([]UTxO, error) {
	return translateBatch(t, "from_unspent_outputs", xs, FromUnspentOutput)
}

// FromOutputs translates each output with FromOutput
func (t *Translator) FromOutputs(outs []ledger.TransactionOutput) ([]TxOutput, error) {
	return translateBatch(t, "from_outputs", outs, FromOutput)
}

// FromInputs translates each input with FromInput
func (t *Translator) FromInputs(ins []ledger.TransactionInput) ([]OutRef, error) {
	return translateBatch(t, "from_inputs", ins, FromInput)
}

var defaultTranslator = NewTranslator()

// ToUnspentOutputs translates each UTxO in order. It fails on the first element that
// can't be translated
func ToUnspentOutputs(utxos []UTxO) ([]*ledger.UnspentOutput, error) {
	return defaultTranslator.ToUnspentOutputs(utxos)
}

// FromUnspentOutputs translates each unspent output in order. It fails on the first element
// that can't be translated
func FromUnspentOutputs(xs []*ledger.UnspentOutput) ([]UTxO, error) {
	return defaultTranslator.FromUnspentOutputs(xs)
}

func FromOutputs(outs []ledger.TransactionOutput) ([]TxOutput, error) {
	return defaultTranslator.FromOutputs(outs)
}

func FromInputs(ins []ledger.TransactionInput) ([]OutRef, error) {
	return defaultTranslator.FromInputs(ins)
}

func translateBatch[S any, D any](
	t *Translator,
	operation string,
	items []S,
	fn func(S) (D, error),
) ([]D, error) {
	ret := make([]D, len(items))
	if t.workers <= 1 || len(items) <= 1 {
		for idx, item := range items {
			res, err := fn(item)
			if err != nil {
				return nil, t.batchError(operation, idx, err)
			}
			ret[idx] = res
		}
		return ret, nil
	}
	errs := make([]error, len(items))
	// Lowest index known to have failed. Elements after it are skipped, but every element
	// before it still runs so that the reported failure matches a sequential pass
	var firstFailed atomic.Int64
	firstFailed.Store(int64(len(items)))
	var g errgroup.Group
	g.SetLimit(t.workers)
	for idx := range items {
		if int64(idx) > firstFailed.Load() {
			break
		}
		g.Go(func() error {
			if int64(idx) > firstFailed.Load() {
				return nil
			}
			res, err := fn(items[idx])
			if err != nil {
				errs[idx] = err
				for {
					cur := firstFailed.Load()
					if int64(idx) >= cur ||
						firstFailed.CompareAndSwap(cur, int64(idx)) {
						break
					}
				}
				return err
			}
			ret[idx] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		idx := int(firstFailed.Load())
		return nil, t.batchError(operation, idx, errs[idx])
	}
	return ret, nil
}

func (t *Translator) batchError(operation string, idx int, err error) error {
	t.logger.Debug(
		"batch translation failed",
		"component", "utxo",
		"operation", operation,
		"index", idx,
		"error", err,
	)
	return BatchElementError{Index: idx, Err: err}
}
