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

import "github.com/vincent212/actors-go/actor"

// Reject is sent back to a remote sender when its envelope cannot be
// delivered: the receiver is unknown, the wire type is unregistered, or
// the body fails to deserialize.
type Reject struct {
	actor.Meta
	// MessageType is the wire-type name of the rejected message.
	MessageType string `json:"message_type"`
	// Reason states why the message was rejected.
	Reason string `json:"reason"`
	// RejectedBy names the actor or receiver that rejected it.
	RejectedBy string `json:"rejected_by"`
}

// KindID implements actor.Message.
func (*Reject) KindID() int { return actor.KindReject }

func init() {
	RegisterJSON[Reject]("Reject")
}
