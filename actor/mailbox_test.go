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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailboxFIFO(t *testing.T) {
	mailbox := NewMailbox(8)
	for i := 1; i <= 5; i++ {
		mailbox.Push(&testMsg{Seq: i})
	}
	require.EqualValues(t, 5, mailbox.Len())

	for i := 1; i <= 5; i++ {
		m, last := mailbox.Pop()
		assert.Equal(t, i, m.(*testMsg).Seq)
		assert.Equal(t, i == 5, last)
	}
	assert.True(t, mailbox.IsEmpty())
}

func TestMailboxOverflowBoundary(t *testing.T) {
	mailbox := NewMailbox(DefaultMailboxCapacity)
	for i := 1; i <= DefaultMailboxCapacity; i++ {
		mailbox.Push(&testMsg{Seq: i})
	}
	// ring is exactly full, overflow still empty
	require.EqualValues(t, DefaultMailboxCapacity, mailbox.Len())
	require.EqualValues(t, 0, mailbox.overflowLen())

	mailbox.Push(&testMsg{Seq: DefaultMailboxCapacity + 1})
	require.EqualValues(t, 1, mailbox.overflowLen())

	m, last := mailbox.Pop()
	assert.Equal(t, 1, m.(*testMsg).Seq)
	assert.False(t, last)
}

func TestMailboxOverflowPreservesOrder(t *testing.T) {
	const total = 200
	mailbox := NewMailbox(DefaultMailboxCapacity)
	for i := 1; i <= total; i++ {
		mailbox.Push(&testMsg{Seq: i})
	}

	for i := 1; i <= total; i++ {
		m, last := mailbox.Pop()
		require.Equal(t, i, m.(*testMsg).Seq)
		require.Equal(t, i == total, last)
	}
}

// Once the ring has drained mid-stream, new pushes must keep landing in
// the overflow until it empties, or ordering would be lost.
func TestMailboxOverflowDrainsBeforeRingRefills(t *testing.T) {
	mailbox := NewMailbox(4)
	for i := 1; i <= 6; i++ {
		mailbox.Push(&testMsg{Seq: i})
	}
	m, _ := mailbox.Pop()
	require.Equal(t, 1, m.(*testMsg).Seq)

	// ring has room now, but overflow is non-empty: stay in overflow
	mailbox.Push(&testMsg{Seq: 7})
	for i := 2; i <= 7; i++ {
		m, _ := mailbox.Pop()
		require.Equal(t, i, m.(*testMsg).Seq)
	}
	assert.True(t, mailbox.IsEmpty())
}

func TestMailboxPeek(t *testing.T) {
	mailbox := NewMailbox(4)
	assert.Nil(t, mailbox.Peek())

	mailbox.Push(&testMsg{Seq: 42})
	peeked := mailbox.Peek()
	require.NotNil(t, peeked)
	assert.Equal(t, 42, peeked.(*testMsg).Seq)
	assert.EqualValues(t, 1, mailbox.Len())
}

func TestMailboxPopBlocksUntilPush(t *testing.T) {
	mailbox := NewMailbox(4)
	got := make(chan Message)
	go func() {
		m, _ := mailbox.Pop()
		got <- m
	}()

	mailbox.Push(&testMsg{Seq: 9})
	m := <-got
	assert.Equal(t, 9, m.(*testMsg).Seq)
}

func TestMailboxConcurrentProducersKeepPerProducerOrder(t *testing.T) {
	const producers = 4
	const perProducer = 250
	mailbox := NewMailbox(DefaultMailboxCapacity)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				mailbox.Push(&testMsg{Seq: p*perProducer + i})
			}
		}(p)
	}
	wg.Wait()

	lastSeen := make([]int, producers)
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	for i := 0; i < producers*perProducer; i++ {
		m, _ := mailbox.Pop()
		seq := m.(*testMsg).Seq
		p := seq / perProducer
		require.Greater(t, seq, lastSeen[p], "producer %d out of order", p)
		lastSeen[p] = seq
	}
	assert.True(t, mailbox.IsEmpty())
}
