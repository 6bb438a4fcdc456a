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

// Message is implemented by every value exchanged between actors.
//
// A concrete message embeds Meta and declares its kind id:
//
//	type Ping struct {
//		actor.Meta
//		Count int
//	}
//
//	func (*Ping) KindID() int { return 100 }
//
// Kind ids 0..511 hit the per-actor handler cache after the first
// dispatch; larger ids are legal but always go through the map. Ids
// below 100 are reserved for the runtime.
//
// Messages must be pointers. Once a message has been accepted by Post
// the receiving actor owns it exclusively; reusing it is a programming
// error. A message delivered through Call stays owned by the caller.
type Message interface {
	// KindID returns the dispatch identity of the message kind.
	KindID() int

	meta() *Meta
}

// Meta carries the per-message bookkeeping maintained by the runtime.
// Embed it (by value) in every message type.
type Meta struct {
	sender      Ref
	destination *Base
	synchronous bool
	last        bool
}

func (m *Meta) meta() *Meta { return m }

// Sender returns the actor reference the message was sent with, or nil.
// Valid once the message has been delivered to a handler.
func (m *Meta) Sender() Ref { return m.sender }

// Synchronous reports whether the message was delivered through Call.
func (m *Meta) Synchronous() bool { return m.synchronous }

// Last reports whether the pop that delivered this message left the
// receiver's mailbox empty. Always true for Call deliveries.
func (m *Meta) Last() bool { return m.last }

// Ref is the minimal send-side surface of an actor. It is implemented
// by *Base and by threadless forwarders such as the remote bridge's
// reply proxy.
type Ref interface {
	// Name returns the actor's name.
	Name() string
	// Post delivers a message asynchronously. It never blocks.
	Post(m Message, sender Ref)
}
