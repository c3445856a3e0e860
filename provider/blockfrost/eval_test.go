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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardanoforge/txcore/ledger/common"
	"github.com/cardanoforge/txcore/ledger/conway"
)

func TestApplyScriptEvaluationSetsExUnits(t *testing.T) {
	redeemers := &conway.ConwayRedeemers{
		Redeemers: map[common.RedeemerKey]common.RedeemerValue{
			{Tag: common.RedeemerTagSpend, Index: 0}: {},
		},
	}
	body := []byte(`{"result":{"EvaluationResult":{"spend:0":{"memory":2000,"steps":500000}}}}`)

	err := ApplyScriptEvaluation(body, redeemers)

	require.NoError(t, err)
	value := redeemers.Redeemers[common.RedeemerKey{Tag: common.RedeemerTagSpend, Index: 0}]
	assert.Equal(t, int64(2000), value.ExUnits.Memory)
	assert.Equal(t, int64(500000), value.ExUnits.Steps)
}

func TestApplyScriptEvaluationSkipsUnknownTag(t *testing.T) {
	redeemers := &conway.ConwayRedeemers{
		Redeemers: map[common.RedeemerKey]common.RedeemerValue{
			{Tag: common.RedeemerTagSpend, Index: 0}: {},
		},
	}
	body := []byte(`{"result":{"EvaluationResult":{"unknown:7":{"memory":1,"steps":1}}}}`)

	err := ApplyScriptEvaluation(body, redeemers)

	require.NoError(t, err)
	value := redeemers.Redeemers[common.RedeemerKey{Tag: common.RedeemerTagSpend, Index: 0}]
	assert.Zero(t, value.ExUnits.Memory)
}

func TestApplyScriptEvaluationFailure(t *testing.T) {
	redeemers := &conway.ConwayRedeemers{
		Redeemers: map[common.RedeemerKey]common.RedeemerValue{},
	}
	body := []byte(`{"result":{"EvaluationFailure":{"error":"boom"}}}`)

	err := ApplyScriptEvaluation(body, redeemers)

	require.ErrorIs(t, err, ErrScriptEvaluationFailure)
}
