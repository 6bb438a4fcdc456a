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
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol"
	"go.nanomsg.org/mangos/v3/protocol/pull"
	"go.uber.org/atomic"

	"github.com/vincent212/actors-go/actor"
	"github.com/vincent212/actors-go/log"
)

// recvTimeout bounds each poll of the pull socket so the Receiver's
// cooperative loop keeps yielding through its own mailbox.
const recvTimeout = 10 * time.Millisecond

// Receiver is the actor that accepts envelopes from remote processes.
// It binds a pull socket and polls it with a short timeout from a
// Continue-driven loop: each Continue attempts one receive, routes the
// result and posts the next Continue. Incoming messages are delivered
// to local actors registered by name, with a ReplyProxy installed as
// the sender so replies find their way back.
type Receiver struct {
	*actor.Base

	sock         protocol.Socket
	sender       *Sender
	bindEndpoint string
	logger       log.Logger
	running      *atomic.Bool

	registryMu sync.Mutex
	registry   map[string]actor.Ref
}

// NewReceiver creates a Receiver bound to bindEndpoint (e.g.
// "tcp://0.0.0.0:5001"; a leading "*:" is rewritten to "0.0.0.0:").
// The sender is used for Rejects and reply proxies. The Receiver must
// be managed like any other actor.
func NewReceiver(bindEndpoint string, sender *Sender, opts ...actor.Option) (*Receiver, error) {
	sock, err := pull.NewSocket()
	if err != nil {
		return nil, errors.Wrap(err, "create pull socket")
	}
	if err := sock.SetOption(mangos.OptionRecvDeadline, recvTimeout); err != nil {
		_ = sock.Close()
		return nil, errors.Wrap(err, "set receive deadline")
	}
	addr := bindAddress(bindEndpoint)
	if err := sock.Listen(addr); err != nil {
		_ = sock.Close()
		return nil, errors.Wrapf(err, "bind %s", addr)
	}

	r := &Receiver{
		Base:         actor.NewBase("remote-receiver", opts...),
		sock:         sock,
		sender:       sender,
		bindEndpoint: bindEndpoint,
		running:      atomic.NewBool(false),
		registry:     make(map[string]actor.Ref),
	}
	r.logger = r.Base.Logger()
	actor.RegisterHandler(r.Base, r.onStart)
	actor.RegisterHandler(r.Base, r.onContinue)
	actor.RegisterHandler(r.Base, r.onShutdown)
	r.Base.OnEnd(func() {
		if err := r.sock.Close(); err != nil {
			r.logger.Errorf("close pull socket: %v", err)
		}
	})
	return r, nil
}

// RegisterActor makes the given local actor reachable from remote
// processes under the given name.
func (r *Receiver) RegisterActor(name string, ref actor.Ref) {
	r.registryMu.Lock()
	r.registry[name] = ref
	r.registryMu.Unlock()
}

// UnregisterActor removes a name from the receiver's registry.
func (r *Receiver) UnregisterActor(name string) {
	r.registryMu.Lock()
	delete(r.registry, name)
	r.registryMu.Unlock()
}

func (r *Receiver) lookup(name string) actor.Ref {
	r.registryMu.Lock()
	defer r.registryMu.Unlock()
	return r.registry[name]
}

func (r *Receiver) onStart(*actor.Start) {
	r.running.Store(true)
	r.logger.Infof("remote receiver polling %s", r.bindEndpoint)
	r.Base.Post(&actor.Continue{}, r.Base)
}

func (r *Receiver) onShutdown(*actor.Shutdown) {
	r.running.Store(false)
}

// onContinue performs one poll cycle and re-arms the loop.
func (r *Receiver) onContinue(*actor.Continue) {
	if !r.running.Load() {
		return
	}

	data, err := r.sock.Recv()
	switch {
	case err == nil:
		r.handleFrame(data)
	case errors.Is(err, mangos.ErrRecvTimeout):
		// quiet socket, poll again
	default:
		r.logger.Errorf("receive on %s: %v", r.bindEndpoint, err)
	}

	if r.running.Load() {
		r.Base.Post(&actor.Continue{}, r.Base)
	}
}

// handleFrame parses one envelope and routes it. An unparseable frame
// is dropped: with no envelope there is no return address to Reject to.
func (r *Receiver) handleFrame(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		r.logger.Warnf("drop unparseable envelope: %v", err)
		return
	}

	target := r.lookup(env.Receiver)
	if target == nil {
		r.logger.Warnf("no local actor %q", env.Receiver)
		if env.hasSender() {
			r.reject(&env, fmt.Sprintf("Actor '%s' not found", env.Receiver), env.Receiver)
		}
		return
	}

	m, err := Deserialize(env.MessageType, env.Message)
	if err != nil {
		if errors.Is(err, ErrTypeNotRegistered) {
			r.logger.Warnf("unknown message type %q for %q", env.MessageType, env.Receiver)
			if env.hasSender() {
				r.reject(&env, fmt.Sprintf("Unknown message type: %s", env.MessageType), env.Receiver)
			}
			return
		}
		r.logger.Warnf("deserialize %q for %q: %v", env.MessageType, env.Receiver, err)
		if env.hasSender() {
			r.reject(&env, fmt.Sprintf("Failed to deserialize message: %v", err), env.Receiver)
		}
		return
	}

	var replyTo actor.Ref
	if env.hasSender() {
		replyTo = newReplyProxy(r.sender, *env.SenderActor, *env.SenderEndpoint)
	}
	target.Post(m, replyTo)
}

func (r *Receiver) reject(env *envelope, reason, rejectedBy string) {
	rej := &Reject{
		MessageType: env.MessageType,
		Reason:      reason,
		RejectedBy:  rejectedBy,
	}
	if err := r.sender.SendTo(*env.SenderEndpoint, *env.SenderActor, rej, nil); err != nil {
		r.logger.Errorf("send reject to %q at %s: %v", *env.SenderActor, *env.SenderEndpoint, err)
	}
}
