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

// Package actor implements a low-latency in-process actor runtime: one
// worker thread per managed actor, a blocking ring+overflow mailbox,
// per-kind handler dispatch with an id cache, synchronous and
// asynchronous delivery, single-threaded actor groups and a lifecycle
// manager with CPU affinity and real-time scheduling support.
package actor

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/vincent212/actors-go/log"
)

// Base is the runtime core of an actor. Concrete actors embed a *Base
// and register handlers during construction:
//
//	type Pong struct {
//		*actor.Base
//	}
//
//	func NewPong() *Pong {
//		p := &Pong{Base: actor.NewBase("pong")}
//		actor.RegisterHandler(p.Base, p.onPing)
//		return p
//	}
//
// All observable actor state is mutated only by the actor's own worker
// (or, for group members, the group's worker). The mailbox is the only
// cross-thread mutation site.
type Base struct {
	name     string
	mailbox  *Mailbox
	handlers handlerTable
	logger   log.Logger

	// dispatchMu serializes handler invocation. Call acquires it on the
	// caller's thread, which is how synchronous delivery serializes with
	// the worker's normal processing.
	dispatchMu       sync.Mutex
	replyTarget      Ref
	pendingSyncReply Message
	processingSync   bool

	terminated *atomic.Bool
	msgCount   *atomic.Int64
	tid        *atomic.Int64

	// group is the non-owning backref set when this actor is a member of
	// a Group; asGroup is set when this Base is a Group's own core.
	group   *Group
	asGroup *Group

	managed  bool
	manager  *Manager
	affinity []int
	priority int
	class    SchedClass

	initHook  func()
	endHook   func()
	unhandled func(Message)
}

// NewBase creates an actor core with the given name.
func NewBase(name string, opts ...Option) *Base {
	b := &Base{
		name:       name,
		logger:     log.DefaultLogger,
		terminated: atomic.NewBool(false),
		msgCount:   atomic.NewInt64(0),
		tid:        atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.mailbox == nil {
		b.mailbox = NewMailbox(DefaultMailboxCapacity)
	}
	return b
}

// Name returns the actor's name.
func (b *Base) Name() string { return b.name }

// Logger returns the actor's logger.
func (b *Base) Logger() log.Logger { return b.logger }

// QueueLength returns the number of messages waiting in the mailbox.
func (b *Base) QueueLength() int { return b.mailbox.Len() }

// Peek returns the message at the head of the mailbox without removing
// it, or nil when the mailbox is empty.
func (b *Base) Peek() Message { return b.mailbox.Peek() }

// MessageCount returns the number of messages processed so far.
func (b *Base) MessageCount() int64 { return b.msgCount.Load() }

// Terminated reports whether the actor has shut down. Once true, Post
// becomes a no-op.
func (b *Base) Terminated() bool { return b.terminated.Load() }

// ThreadID returns the OS thread id of the actor's worker, or 0 before
// the worker has started.
func (b *Base) ThreadID() int64 { return b.tid.Load() }

// OnInit installs the hook invoked on the worker thread before the
// first message is dequeued.
func (b *Base) OnInit(fn func()) { b.initHook = fn }

// OnEnd installs the hook invoked on the worker thread after the actor
// stops processing messages.
func (b *Base) OnEnd(fn func()) { b.endHook = fn }

// OnUnhandled installs the fallback invoked for messages with no
// registered handler. Without a fallback such messages are dropped.
func (b *Base) OnUnhandled(fn func(Message)) { b.unhandled = fn }

// Post delivers m asynchronously. The message is tagged with this actor
// as its destination and is owned by the receiver from here on; posting
// a message that already has a destination panics. Posts to a
// terminated actor are silently dropped. Group members enqueue on their
// group's mailbox. Post never blocks.
func (b *Base) Post(m Message, sender Ref) {
	if b == nil {
		panic(ErrNilActor)
	}
	if b.terminated.Load() {
		return
	}
	if m == nil {
		panic(ErrNilMessage)
	}

	mt := m.meta()
	if mt.destination != nil {
		panic(ErrMessageReuse)
	}
	mt.synchronous = false
	mt.last = false
	mt.sender = sender
	mt.destination = b

	if b.group != nil {
		b.group.mailbox.Push(m)
		return
	}
	b.mailbox.Push(m)
}

// Call delivers m synchronously: the matching handler runs on the
// caller's thread, under the receiver's dispatch lock, and the value the
// handler passed to Reply (if any) is returned. Ownership of m stays
// with the caller. Calling a terminated actor returns nil immediately.
// Calling self panics: the dispatch lock is not reentrant.
func (b *Base) Call(m Message, sender Ref) Message {
	if b == nil {
		panic(ErrNilActor)
	}
	if m == nil {
		panic(ErrNilMessage)
	}
	if s, ok := sender.(*Base); ok && s == b {
		panic(ErrCallToSelf)
	}

	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()

	mt := m.meta()
	mt.sender = sender
	mt.synchronous = true
	mt.last = true

	b.pendingSyncReply = nil
	b.processingSync = true

	if b.terminated.Load() {
		return nil
	}
	b.msgCount.Inc()

	if !b.handlers.invoke(m) && b.unhandled != nil {
		b.unhandled(m)
	}

	reply := b.pendingSyncReply
	b.pendingSyncReply = nil
	return reply
}

// Reply responds to the message currently being processed. For a
// synchronous delivery the reply is handed back to the Call caller; for
// an asynchronous one it is posted to the remembered sender. Replying
// with no return address panics.
func (b *Base) Reply(m Message) {
	if b.processingSync {
		m.meta().sender = b
		b.pendingSyncReply = m
		return
	}
	if b.replyTarget == nil {
		panic(ErrNoReturnAddress)
	}
	b.replyTarget.Post(m, b)
}

// Terminate initiates graceful shutdown by posting a Shutdown to the
// actor itself. Messages already queued are processed first. Additional
// Shutdowns to an already terminated actor have no effect.
func (b *Base) Terminate() {
	b.Post(&Shutdown{}, nil)
}

// FastTerminate delivers a Shutdown synchronously and marks the actor
// terminated. It is used for actors that have no worker of their own,
// such as group members.
func (b *Base) FastTerminate() {
	b.Call(&Shutdown{}, nil)
	b.terminated.Store(true)
}

// process dispatches one message under the dispatch lock. The receiver
// owns m; it becomes garbage once the handler returns.
func (b *Base) process(m Message) {
	b.dispatchMu.Lock()
	b.msgCount.Inc()
	b.processingSync = false
	if !b.handlers.invoke(m) && b.unhandled != nil {
		b.unhandled(m)
	}
	b.dispatchMu.Unlock()
}

// run is the worker loop. It executes on a dedicated, OS-locked
// goroutine started by the Manager. The loop exits after dispatching a
// Shutdown message or once a handler marks the actor terminated.
func (b *Base) run() {
	if b.initHook != nil {
		b.initHook()
	}

	for {
		m, last := b.mailbox.Pop()
		mt := m.meta()
		mt.last = last
		b.replyTarget = mt.sender

		isShutdown := m.KindID() == KindShutdown

		b.process(m)

		if isShutdown || b.terminated.Load() {
			break
		}
	}

	b.terminated.Store(true)
	if b.endHook != nil {
		b.endHook()
	}
}
