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
	"runtime"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vincent212/actors-go/internal/sched"
)

// SchedClass selects the kernel scheduling class for an actor's worker.
type SchedClass int

const (
	// SchedDefault keeps the worker in the default time-sharing class.
	// When a real-time priority is configured it is promoted to SchedFIFO.
	SchedDefault SchedClass = iota
	// SchedFIFO requests first-in first-out real-time scheduling.
	SchedFIFO
	// SchedRR requests round-robin real-time scheduling.
	SchedRR
)

// WorkerStats describes one managed actor's worker.
type WorkerStats struct {
	ThreadID     int64
	MessageCount int64
}

// Manager registers actors, spawns one worker per top-level actor,
// applies CPU affinity and real-time scheduling, and drives the
// start/shutdown protocol. The Manager is itself an actor: posting a
// Shutdown to it terminates every managed actor and, once their workers
// drain, End returns.
//
//	mgr := actor.NewManager("main")
//	mgr.Manage(pong.Base, nil, 0, actor.SchedDefault)
//	mgr.Manage(ping.Base, mapset.NewSet(2), 50, actor.SchedFIFO)
//	mgr.Init()
//	mgr.End()
type Manager struct {
	*Base

	actors   []*Base
	managed  map[string]*Base
	expanded map[string]*Base

	workers *errgroup.Group
}

// NewManager creates a Manager.
func NewManager(name string, opts ...Option) *Manager {
	m := &Manager{
		Base:     NewBase(name, opts...),
		managed:  make(map[string]*Base),
		expanded: make(map[string]*Base),
		workers:  &errgroup.Group{},
	}
	RegisterHandler(m.Base, m.onStart)
	RegisterHandler(m.Base, m.onShutdown)
	return m
}

// Manage registers an actor. The actor's name must be unique within the
// Manager, including the names exposed by group expansion; a duplicate
// panics. Affinity is a set of CPU indices (nil or empty means no
// pinning) and is validated against the machine's CPU count. A priority
// greater than zero requests real-time scheduling in the given class.
// Registration must complete before Init.
func (m *Manager) Manage(b *Base, affinity mapset.Set[int], priority int, class SchedClass) {
	if b == nil {
		panic(ErrNilActor)
	}
	if b.managed {
		panic(ErrAlreadyManaged)
	}
	if _, ok := m.managed[b.name]; ok {
		m.logger.Errorf("actor %q already managed", b.name)
		panic(ErrAlreadyManaged)
	}
	if _, ok := m.expanded[b.name]; ok {
		panic(ErrGroupMemberManaged)
	}

	var cores []int
	if affinity != nil {
		cores = affinity.ToSlice()
		for _, core := range cores {
			if core < 0 || core >= runtime.NumCPU() {
				m.logger.Errorf("bad core id %d for actor %q", core, b.name)
				panic(ErrBadCoreID)
			}
		}
	}

	m.managed[b.name] = b
	m.expanded[b.name] = b

	b.manager = m
	if g := b.asGroup; g != nil {
		if len(g.members) == 0 {
			panic(ErrEmptyGroup)
		}
		for _, member := range g.members {
			if _, ok := m.expanded[member.name]; ok {
				panic(ErrGroupMemberManaged)
			}
			m.expanded[member.name] = member
			member.manager = m
		}
	}

	m.actors = append(m.actors, b)
	b.managed = true
	b.affinity = cores
	b.priority = priority
	b.class = class
}

// Init starts the runtime. Start is first delivered to every managed
// actor via Call, on the calling thread, so synchronous preconditions
// are established before any worker exists; follow-up messages posted
// by Start handlers simply wait in mailboxes. Then one worker is
// spawned per top-level actor (plus one for the Manager itself) and the
// configured affinity and scheduling class are applied. OS refusals are
// logged and otherwise ignored.
func (m *Manager) Init() {
	for _, a := range m.actors {
		m.logger.Infof("manager %q sending start to %q", m.name, a.name)
		a.Call(&Start{}, nil)
	}

	for _, a := range m.actors {
		m.spawnWorker(a)
	}
	m.spawnWorker(m.Base)

	m.Base.Post(&Start{}, nil)
}

// End blocks until every worker, the Manager's own included, has
// terminated.
func (m *Manager) End() {
	_ = m.workers.Wait()
}

// ActorByName returns the managed actor with the given name, searching
// group members as well, or nil.
func (m *Manager) ActorByName(name string) *Base {
	return m.expanded[name]
}

// ManagedNames returns the names of all managed actors, including the
// members of managed groups.
func (m *Manager) ManagedNames() []string {
	names := make([]string, 0, len(m.expanded))
	for name := range m.expanded {
		names = append(names, name)
	}
	return names
}

// ManagedActors returns the top-level managed actors in registration
// order. Groups are single entries.
func (m *Manager) ManagedActors() []*Base {
	return m.actors
}

// QueueLengths returns the pending message count per top-level actor.
func (m *Manager) QueueLengths() map[string]int {
	lengths := make(map[string]int, len(m.managed))
	for name, a := range m.managed {
		lengths[name] = a.QueueLength()
	}
	return lengths
}

// TotalQueueLength returns the pending message count across all
// top-level actors.
func (m *Manager) TotalQueueLength() int {
	total := 0
	for _, a := range m.actors {
		total += a.QueueLength()
	}
	return total
}

// WorkerStats returns the worker thread id and processed message count
// per top-level actor.
func (m *Manager) WorkerStats() map[string]WorkerStats {
	stats := make(map[string]WorkerStats, len(m.managed))
	for name, a := range m.managed {
		stats[name] = WorkerStats{ThreadID: a.tid.Load(), MessageCount: a.msgCount.Load()}
	}
	return stats
}

func (m *Manager) onStart(*Start) {}

// onShutdown terminates every managed actor by posting a Shutdown to
// it. The posted message wakes workers blocked on their mailbox, which
// drain in FIFO order and exit; End then returns. The Manager's own
// worker stops after this handler.
func (m *Manager) onShutdown(*Shutdown) {
	for _, a := range m.actors {
		if a.terminated.Load() {
			continue
		}
		a.Terminate()
	}
}

// spawnWorker runs b's loop on its own goroutine, locked to an OS
// thread so affinity and scheduling class apply to the worker alone.
func (m *Manager) spawnWorker(b *Base) {
	m.workers.Go(func() error {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		tid := sched.ThreadID()
		b.tid.Store(int64(tid))
		m.applyScheduling(b, tid)

		b.run()
		return nil
	})
}

// applyScheduling pins the worker and raises it into the configured
// scheduling class. Failures are logged and otherwise ignored.
func (m *Manager) applyScheduling(b *Base, tid int) {
	if len(b.affinity) > 0 {
		m.logger.Infof("actor %q pinning to cpus %v", b.name, b.affinity)
		if err := sched.SetAffinity(tid, b.affinity); err != nil {
			m.logger.Errorf("actor %q could not set affinity: %v", b.name, err)
		}
	}

	if b.priority <= 0 {
		return
	}
	policy := sched.PolicyFIFO
	if b.class == SchedRR {
		policy = sched.PolicyRR
	}
	m.logger.Infof("actor %q setting real-time priority %d", b.name, b.priority)
	if err := sched.SetRealtime(tid, policy, b.priority); err != nil {
		m.logger.Errorf("actor %q could not set priority: %v", b.name, err)
	}
}
