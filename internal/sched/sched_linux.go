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

//go:build linux

// Package sched wraps the Linux thread-scheduling syscalls used to pin
// actor workers to CPUs and raise them into real-time scheduling
// classes. Callers must have locked the goroutine to its OS thread.
package sched

import "golang.org/x/sys/unix"

// Policy is a kernel scheduling policy.
type Policy uint32

const (
	// PolicyOther is the default time-sharing policy.
	PolicyOther Policy = unix.SCHED_NORMAL
	// PolicyFIFO is first-in first-out real-time scheduling.
	PolicyFIFO Policy = unix.SCHED_FIFO
	// PolicyRR is round-robin real-time scheduling.
	PolicyRR Policy = unix.SCHED_RR
)

// ThreadID returns the caller's kernel thread id.
func ThreadID() int {
	return unix.Gettid()
}

// SetAffinity pins the thread tid to the given CPU indices.
func SetAffinity(tid int, cpus []int) error {
	if len(cpus) == 0 {
		return nil
	}
	var set unix.CPUSet
	set.Zero()
	for _, cpu := range cpus {
		set.Set(cpu)
	}
	return unix.SchedSetaffinity(tid, &set)
}

// SetRealtime moves the thread tid into the given real-time policy at
// the given priority (1..99, requires CAP_SYS_NICE).
func SetRealtime(tid int, policy Policy, priority int) error {
	attr := &unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   uint32(policy),
		Priority: uint32(priority),
	}
	return unix.SchedSetAttr(tid, attr, 0)
}
