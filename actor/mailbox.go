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

import "sync"

// DefaultMailboxCapacity is the ring size used when no capacity is
// configured.
const DefaultMailboxCapacity = 64

// Mailbox is a blocking multi-producer/single-consumer FIFO used as an
// actor's inbox.
//
// Structurally it is a fixed-capacity ring buffer backed by an unbounded
// overflow queue. A push lands in the overflow whenever the overflow is
// non-empty or the ring is full; a pop serves the ring first, then the
// head of the overflow. Together the two rules preserve total FIFO order
// across both sub-queues: the overflow can only grow while the ring
// still holds older messages, and it drains only once the ring is empty.
//
// Producers never block. The consumer blocks in Pop until a message is
// available; cancellation is signalled exclusively by enqueuing a
// Shutdown message.
type Mailbox struct {
	mu   sync.Mutex
	cond *sync.Cond

	ring  []Message
	head  int
	count int

	overflow []Message
	ohead    int
}

// NewMailbox creates a mailbox with the given ring capacity. A capacity
// of zero or less selects DefaultMailboxCapacity.
func NewMailbox(capacity int) *Mailbox {
	if capacity <= 0 {
		capacity = DefaultMailboxCapacity
	}
	m := &Mailbox{ring: make([]Message, capacity)}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Push appends a message. Ordering across concurrent producers is the
// serialization imposed by the mailbox mutex. Push never fails and never
// blocks on a full ring; excess messages spill into the overflow.
func (m *Mailbox) Push(msg Message) {
	m.mu.Lock()
	if m.overflowLen() > 0 || m.count == len(m.ring) {
		m.overflow = append(m.overflow, msg)
	} else {
		m.ring[(m.head+m.count)%len(m.ring)] = msg
		m.count++
	}
	m.mu.Unlock()
	m.cond.Signal()
}

// Pop blocks until a message is available and removes it. The returned
// boolean is true when the pop emptied both sub-queues.
func (m *Mailbox) Pop() (Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.count == 0 && m.overflowLen() == 0 {
		m.cond.Wait()
	}

	var msg Message
	if m.count > 0 {
		msg = m.ring[m.head]
		m.ring[m.head] = nil
		m.head = (m.head + 1) % len(m.ring)
		m.count--
	} else {
		msg = m.overflow[m.ohead]
		m.overflow[m.ohead] = nil
		m.ohead++
		if m.ohead == len(m.overflow) {
			m.overflow = m.overflow[:0]
			m.ohead = 0
		}
	}

	last := m.count == 0 && m.overflowLen() == 0
	return msg, last
}

// Peek returns the message at the head of the mailbox without removing
// it, or nil when the mailbox is empty.
func (m *Mailbox) Peek() Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count > 0 {
		return m.ring[m.head]
	}
	if m.overflowLen() > 0 {
		return m.overflow[m.ohead]
	}
	return nil
}

// Len returns the number of queued messages across ring and overflow.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count + m.overflowLen()
}

// IsEmpty reports whether the mailbox holds no messages.
func (m *Mailbox) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count == 0 && m.overflowLen() == 0
}

// overflowLen must be called with the mutex held.
func (m *Mailbox) overflowLen() int {
	return len(m.overflow) - m.ohead
}
