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
	"strings"
)

// envelope is the JSON record carried on the wire between processes.
// All five keys are mandatory; the sender pair is null when there is no
// reply path. Unknown keys are ignored on receipt.
type envelope struct {
	SenderActor    *string         `json:"sender_actor"`
	SenderEndpoint *string         `json:"sender_endpoint"`
	Receiver       string          `json:"receiver"`
	MessageType    string          `json:"message_type"`
	Message        json.RawMessage `json:"message"`
}

func (e *envelope) hasSender() bool {
	return e.SenderActor != nil && e.SenderEndpoint != nil
}

// connectAddress rewrites a bind-style endpoint into one a sender can
// connect to: a leading wildcard host becomes loopback.
func connectAddress(endpoint string) string {
	endpoint = strings.Replace(endpoint, "*:", "localhost:", 1)
	return strings.Replace(endpoint, "0.0.0.0:", "localhost:", 1)
}

// bindAddress rewrites the conventional "*" wildcard into the form the
// transport accepts for binding.
func bindAddress(endpoint string) string {
	return strings.Replace(endpoint, "*:", "0.0.0.0:", 1)
}
