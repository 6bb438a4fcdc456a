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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMemberPostsLandInGroupMailbox(t *testing.T) {
	g := NewGroup("grp")
	a := newTestBase("a")
	b := newTestBase("b")
	g.Add(a)
	g.Add(b)

	a.Post(&testMsg{Seq: 1}, nil)
	b.Post(&testMsg{Seq: 2}, nil)

	assert.Zero(t, a.QueueLength())
	assert.Zero(t, b.QueueLength())
	assert.Equal(t, 2, g.Base.QueueLength())
}

func TestGroupDispatchesMembersSeriallyInPostOrder(t *testing.T) {
	g := NewGroup("grp")
	a := newTestBase("a")
	b := newTestBase("b")
	g.Add(a)
	g.Add(b)

	var order []string
	RegisterHandler(a, func(m *testMsg) { order = append(order, "a") })
	RegisterHandler(b, func(m *testMsg) { order = append(order, "b") })

	a.Post(&testMsg{Seq: 1}, nil)
	b.Post(&testMsg{Seq: 2}, nil)
	a.Post(&testMsg{Seq: 3}, nil)
	g.Base.Terminate()

	done := startWorker(g.Base)
	<-done

	assert.Equal(t, []string{"a", "b", "a"}, order)
	// forwarded messages plus the shutdown broadcast call
	assert.EqualValues(t, 3, a.MessageCount())
	assert.EqualValues(t, 2, b.MessageCount())
}

func TestGroupStartBroadcastInitializesMembers(t *testing.T) {
	g := NewGroup("grp")
	a := newTestBase("a")
	b := newTestBase("b")

	var order []string
	a.OnInit(func() { order = append(order, "a-init") })
	b.OnInit(func() { order = append(order, "b-init") })
	RegisterHandler(a, func(*Start) { order = append(order, "a-start") })
	RegisterHandler(b, func(*Start) { order = append(order, "b-start") })

	g.Add(a)
	g.Add(b)

	g.Base.Call(&Start{}, nil)
	assert.Equal(t, []string{"a-init", "a-start", "b-init", "b-start"}, order)
}

func TestGroupShutdownBroadcastTerminatesMembers(t *testing.T) {
	g := NewGroup("grp")
	a := newTestBase("a")
	b := newTestBase("b")

	var ended []string
	a.OnEnd(func() { ended = append(ended, "a") })
	b.OnEnd(func() { ended = append(ended, "b") })

	g.Add(a)
	g.Add(b)

	g.Base.Call(&Shutdown{}, nil)

	assert.Equal(t, []string{"a", "b"}, ended)
	assert.True(t, a.Terminated())
	assert.True(t, b.Terminated())
}

func TestGroupMemberReplyReachesSender(t *testing.T) {
	g := NewGroup("grp")
	member := newTestBase("member")
	RegisterHandler(member, func(m *testMsg) {
		member.Reply(&testMsg{Seq: m.Seq * 10})
	})
	g.Add(member)

	caller := newTestBase("caller")
	var got int
	RegisterHandler(caller, func(m *testMsg) {
		got = m.Seq
		caller.Terminate()
	})

	groupDone := startWorker(g.Base)
	callerDone := startWorker(caller)

	member.Post(&testMsg{Seq: 4}, caller)

	<-callerDone
	g.Base.Terminate()
	<-groupDone

	assert.Equal(t, 40, got)
}

func TestGroupStartAddressedToMemberIsForwarded(t *testing.T) {
	g := NewGroup("grp")
	member := newTestBase("member")
	var memberStarts int
	RegisterHandler(member, func(*Start) { memberStarts++ })
	g.Add(member)

	// posted to the member, routed through the group mailbox
	member.Post(&Start{}, nil)
	g.Base.Terminate()

	done := startWorker(g.Base)
	<-done

	require.Equal(t, 1, memberStarts)
}
