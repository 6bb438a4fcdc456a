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

// Reserved kind ids. Application message kinds should start at 100.
const (
	// KindContinue identifies the self-scheduling Continue message.
	KindContinue = 1
	// KindShutdown identifies the Shutdown message that terminates an actor.
	KindShutdown = 5
	// KindStart identifies the Start message delivered before an actor's
	// worker begins draining its mailbox.
	KindStart = 6
	// KindTimeout identifies timer expirations.
	KindTimeout = 8
	// KindReject identifies the wire-level rejection message.
	KindReject = 9
	// KindRemoteDispatch identifies the remote bridge's internal dispatch
	// record. It is never serialized.
	KindRemoteDispatch = 10
)

// Start is delivered to every managed actor during Manager.Init, via
// Call, before any worker exists.
type Start struct{ Meta }

// KindID implements Message.
func (*Start) KindID() int { return KindStart }

// Shutdown terminates the receiving actor. It is the sole cancellation
// mechanism: a worker blocked on its mailbox is woken by the enqueue and
// exits after dispatching it.
type Shutdown struct{ Meta }

// KindID implements Message.
func (*Shutdown) KindID() int { return KindShutdown }

// Continue drives cooperative self-scheduled loops: an actor posts it to
// itself to yield between polling cycles.
type Continue struct{ Meta }

// KindID implements Message.
func (*Continue) KindID() int { return KindContinue }

// Timeout is delivered by the Scheduler when a timer fires. Data is the
// opaque value supplied at scheduling time.
type Timeout struct {
	Meta
	Data int
}

// KindID implements Message.
func (*Timeout) KindID() int { return KindTimeout }
