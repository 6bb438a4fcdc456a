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

package actor

// RemoteSender is the surface of the remote bridge's sender actor that
// remote references dispatch through. It is implemented by
// remote.Sender; the indirection keeps the reference type free of a
// dependency on the bridge.
type RemoteSender interface {
	// SendTo serializes m and forwards it to the named actor at the given
	// endpoint. The message is consumed whether or not the send succeeds.
	SendTo(endpoint, actorName string, m Message, sender Ref) error
	// LocalEndpoint returns the endpoint remote peers reply to.
	LocalEndpoint() string
}

// ActorRef is a uniform send-side reference to a local or remote actor.
// The zero value is invalid.
//
//	local := actor.NewLocalRef(pong.Base)
//	remote := sender.RemoteRef("pong", "tcp://localhost:5001")
//	local.Post(&Ping{Count: 1}, self)
//	remote.Post(&Ping{Count: 1}, self) // same syntax
type ActorRef struct {
	local    *Base
	name     string
	endpoint string
	via      RemoteSender
}

// NewLocalRef creates a reference to an in-process actor.
func NewLocalRef(b *Base) ActorRef {
	if b == nil {
		panic(ErrNilActor)
	}
	return ActorRef{local: b, name: b.name}
}

// NewRemoteRef creates a reference to an actor in another process,
// reached through the given sender.
func NewRemoteRef(name, endpoint string, via RemoteSender) ActorRef {
	return ActorRef{name: name, endpoint: endpoint, via: via}
}

// IsLocal reports whether the reference targets an in-process actor.
func (r ActorRef) IsLocal() bool { return r.local != nil }

// IsRemote reports whether the reference targets an actor in another
// process.
func (r ActorRef) IsRemote() bool { return r.via != nil }

// IsValid reports whether the reference targets anything at all.
func (r ActorRef) IsValid() bool { return r.local != nil || r.via != nil }

// Name returns the target actor's name.
func (r ActorRef) Name() string { return r.name }

// Endpoint returns the remote endpoint, or "" for local references.
func (r ActorRef) Endpoint() string { return r.endpoint }

// Local returns the underlying local actor, or nil for remote
// references.
func (r ActorRef) Local() *Base { return r.local }

// Post delivers m asynchronously through the reference. A local post
// never fails; a remote post fails when the message kind is not
// registered for serialization, in which case the message is consumed
// regardless.
func (r ActorRef) Post(m Message, sender Ref) error {
	switch {
	case r.local != nil:
		r.local.Post(m, sender)
		return nil
	case r.via != nil:
		return r.via.SendTo(r.endpoint, r.name, m, sender)
	default:
		return ErrInvalidRef
	}
}

// Call delivers m synchronously. Synchronous delivery is local-only;
// calling through a remote reference returns ErrRemoteCall.
func (r ActorRef) Call(m Message, sender Ref) (Message, error) {
	if r.local == nil {
		return nil, ErrRemoteCall
	}
	return r.local.Call(m, sender), nil
}
