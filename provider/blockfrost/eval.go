// Copyright 2025 Blink Labs Software
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

package blockfrost

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cardanoforge/txcore/ledger/common"
	"github.com/cardanoforge/txcore/ledger/conway"
)

// ErrScriptEvaluationFailure is returned when the Blockfrost response
// carries an EvaluationFailure result instead of an EvaluationResult.
var ErrScriptEvaluationFailure = errors.New("script evaluation failure")

type evalUnits struct {
	Memory int64 `json:"memory"`
	Steps  int64 `json:"steps"`
}

type evalResponse struct {
	Result struct {
		EvaluationResult  map[string]evalUnits `json:"EvaluationResult"`
		EvaluationFailure json.RawMessage       `json:"EvaluationFailure"`
	} `json:"result"`
}

var redeemerTagByName = map[string]common.RedeemerTag{
	"spend":       common.RedeemerTagSpend,
	"mint":        common.RedeemerTagMint,
	"certificate": common.RedeemerTagCert,
	"withdrawal":  common.RedeemerTagReward,
	"vote":        common.RedeemerTagVoting,
	"propose":     common.RedeemerTagProposing,
}

// ApplyScriptEvaluation parses a Blockfrost script-evaluation response and
// copies the reported ex-units into the matching entries of redeemers.
// Unrecognized keys in EvaluationResult (unknown tag, or a tag this module
// doesn't model) are skipped rather than treated as errors, matching
// Blockfrost's practice of returning forward-compatible tag names.
func ApplyScriptEvaluation(body []byte, redeemers *conway.ConwayRedeemers) error {
	var resp evalResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if resp.Result.EvaluationFailure != nil {
		return fmt.Errorf("%w: %s", ErrScriptEvaluationFailure, resp.Result.EvaluationFailure)
	}
	if resp.Result.EvaluationResult == nil {
		return errors.New("invalid json: missing result.EvaluationResult")
	}
	for key, units := range resp.Result.EvaluationResult {
		tagStr, indexStr, ok := strings.Cut(key, ":")
		if !ok {
			continue
		}
		tag, ok := redeemerTagByName[tagStr]
		if !ok {
			continue
		}
		index, err := strconv.ParseUint(indexStr, 10, 32)
		if err != nil {
			continue
		}
		redeemerKey := common.RedeemerKey{Tag: tag, Index: uint32(index)}
		value, ok := redeemers.Redeemers[redeemerKey]
		if !ok {
			continue
		}
		value.ExUnits.Memory = units.Memory
		value.ExUnits.Steps = units.Steps
		redeemers.Redeemers[redeemerKey] = value
	}
	return nil
}
