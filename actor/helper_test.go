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

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/vincent212/actors-go/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testMsg is the application message used across the package tests.
type testMsg struct {
	Meta
	Seq int
}

func (*testMsg) KindID() int { return 100 }

// probeMsg uses a kind id past the handler cache to exercise the
// map-only dispatch path.
type probeMsg struct {
	Meta
	Seq int
}

func (*probeMsg) KindID() int { return 512 }

type queryMsg struct {
	Meta
	Symbol string
}

func (*queryMsg) KindID() int { return 101 }

type answerMsg struct {
	Meta
	Symbol   string
	Quantity int
	AvgPrice float64
}

func (*answerMsg) KindID() int { return 102 }

func newTestBase(name string) *Base {
	return NewBase(name, WithLogger(log.DiscardLogger))
}

// startWorker runs b's loop on its own goroutine the way a Manager
// would, returning a channel closed when the worker exits.
func startWorker(b *Base) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		b.run()
		close(done)
	}()
	return done
}
