/*
 * MIT License
 *
 * Copyright (c) 2025 Vincent Maciejewski, M2 Tech
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package remote

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent212/actors-go/actor"
)

type tradeMsg struct {
	actor.Meta
	Symbol   string  `json:"symbol"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (*tradeMsg) KindID() int { return 200 }

func TestRegistryRoundTrip(t *testing.T) {
	RegisterJSON[tradeMsg]("Trade")

	in := &tradeMsg{Symbol: "AAPL", Quantity: 100, Price: 187.5}
	body, err := Serialize(in)
	require.NoError(t, err)

	out, err := Deserialize("Trade", body)
	require.NoError(t, err)

	trade := out.(*tradeMsg)
	assert.Equal(t, in.Symbol, trade.Symbol)
	assert.Equal(t, in.Quantity, trade.Quantity)
	assert.Equal(t, in.Price, trade.Price)
}

func TestRegistryTypeName(t *testing.T) {
	RegisterJSON[tradeMsg]("Trade")
	assert.Equal(t, "Trade", TypeName(200))
	assert.Empty(t, TypeName(201))
	assert.True(t, IsRegistered("Trade"))
	assert.False(t, IsRegistered("Quote"))
}

func TestRegistryReRegistrationOverwrites(t *testing.T) {
	RegisterJSON[tradeMsg]("Trade")
	RegisterJSON[tradeMsg]("Trade")

	body, err := Serialize(&tradeMsg{Symbol: "MSFT"})
	require.NoError(t, err)
	out, err := Deserialize("Trade", body)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", out.(*tradeMsg).Symbol)
}

func TestSerializeUnregisteredKind(t *testing.T) {
	_, err := Serialize(&actor.Timeout{Data: 1})
	assert.ErrorIs(t, err, ErrTypeNotRegistered)
}

func TestDeserializeUnknownTypeName(t *testing.T) {
	_, err := Deserialize("Nope", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrTypeNotRegistered)
}

func TestDeserializeMalformedBody(t *testing.T) {
	RegisterJSON[tradeMsg]("Trade")
	_, err := Deserialize("Trade", json.RawMessage(`{"quantity":"not a number"}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTypeNotRegistered)
}

func TestRejectIsRegisteredAtInit(t *testing.T) {
	require.True(t, IsRegistered("Reject"))
	require.Equal(t, "Reject", TypeName(actor.KindReject))

	body, err := Serialize(&Reject{MessageType: "Ping", Reason: "nope", RejectedBy: "pong"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message_type":"Ping","reason":"nope","rejected_by":"pong"}`, string(body))
}
