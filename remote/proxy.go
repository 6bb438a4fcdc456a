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
	"github.com/google/uuid"

	"github.com/vincent212/actors-go/actor"
)

// ReplyProxy stands in for a remote sender as the sender of a delivered
// message: when the local actor replies, the proxy forwards the reply
// through the Sender to the original remote actor. It has no worker and
// no mailbox; Post forwards immediately on the calling thread (the
// Sender's own queue keeps it non-blocking).
type ReplyProxy struct {
	name           string
	sender         *Sender
	remoteActor    string
	remoteEndpoint string
}

var _ actor.Ref = (*ReplyProxy)(nil)

func newReplyProxy(sender *Sender, remoteActor, remoteEndpoint string) *ReplyProxy {
	return &ReplyProxy{
		name:           "reply-proxy-" + uuid.NewString(),
		sender:         sender,
		remoteActor:    remoteActor,
		remoteEndpoint: remoteEndpoint,
	}
}

// Name implements actor.Ref.
func (p *ReplyProxy) Name() string { return p.name }

// RemoteActor returns the name of the remote actor replies go to.
func (p *ReplyProxy) RemoteActor() string { return p.remoteActor }

// RemoteEndpoint returns the endpoint replies go to.
func (p *ReplyProxy) RemoteEndpoint() string { return p.remoteEndpoint }

// Post forwards m to the remote actor through the Sender. The reply
// path carries no sender of its own.
func (p *ReplyProxy) Post(m actor.Message, _ actor.Ref) {
	if err := p.sender.SendTo(p.remoteEndpoint, p.remoteActor, m, nil); err != nil {
		p.sender.Logger().Errorf("reply to %q at %s: %v", p.remoteActor, p.remoteEndpoint, err)
	}
}
