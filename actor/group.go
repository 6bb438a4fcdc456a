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

// Group runs several lightweight actors on a single worker thread. The
// group's mailbox is the shared inbox: posting to a member enqueues on
// the group, and the group's worker dispatches each message to its
// destination member serially.
//
// A Group is always managed as a single top-level registration; its
// members must not be separately managed.
//
//	grp := actor.NewGroup("workers")
//	grp.Add(a.Base)
//	grp.Add(b.Base)
//	mgr.Manage(grp.Base, nil, 0, actor.SchedDefault)
type Group struct {
	*Base
	members []*Base
	byName  map[string]*Base
}

// NewGroup creates an empty group.
func NewGroup(name string, opts ...Option) *Group {
	g := &Group{
		Base:   NewBase(name, opts...),
		byName: make(map[string]*Base),
	}
	g.Base.asGroup = g
	RegisterHandler(g.Base, g.onStart)
	RegisterHandler(g.Base, g.onShutdown)
	g.Base.OnUnhandled(g.forward)
	return g
}

// Add appends a member to the group. Members are added before the group
// is managed; they share the group's worker and never own a mailbox of
// their own.
func (g *Group) Add(member *Base) {
	if member == nil {
		panic(ErrNilActor)
	}
	member.group = g
	g.members = append(g.members, member)
	g.byName[member.name] = member
}

// Members returns the group's members in insertion order.
func (g *Group) Members() []*Base { return g.members }

// onStart handles the Start broadcast from the Manager: each member's
// init hook runs, then Start is delivered to it via Call, all on the
// calling thread so initialization is serialized. A Start addressed to
// an individual member is forwarded instead.
func (g *Group) onStart(m *Start) {
	if dst := m.meta().destination; dst != nil && dst != g.Base {
		g.forward(m)
		return
	}
	for _, member := range g.members {
		if member.initHook != nil {
			member.initHook()
		}
		member.Call(&Start{}, g.Base)
	}
}

// onShutdown handles the Shutdown broadcast: each member receives
// Shutdown via Call first, then its end hook runs, both on the group's
// thread. A Shutdown addressed to an individual member is forwarded.
func (g *Group) onShutdown(m *Shutdown) {
	if dst := m.meta().destination; dst != nil && dst != g.Base {
		g.forward(m)
		return
	}
	for _, member := range g.members {
		member.FastTerminate()
		if member.endHook != nil {
			member.endHook()
		}
	}
}

// forward dispatches a member-addressed message on the group's thread,
// setting the member's reply target first.
func (g *Group) forward(m Message) {
	member := m.meta().destination
	if member == nil || member == g.Base {
		return
	}
	member.replyTarget = m.meta().sender
	member.process(m)
}
