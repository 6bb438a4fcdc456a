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

import "errors"

var (
	// ErrNilActor is raised when an operation targets a nil actor.
	ErrNilActor = errors.New("actor is nil")
	// ErrNilMessage is raised when a nil message is posted or called.
	ErrNilMessage = errors.New("message is nil")
	// ErrMessageReuse is raised when a message that is already in flight
	// is posted again.
	ErrMessageReuse = errors.New("message already has a destination")
	// ErrCallToSelf is raised when an actor issues a synchronous call to
	// itself.
	ErrCallToSelf = errors.New("synchronous call to self")
	// ErrNoReturnAddress is raised by Reply when the message being
	// processed carried no sender.
	ErrNoReturnAddress = errors.New("reply has no return address")
	// ErrAlreadyManaged is raised when a second actor with an already
	// managed name is registered.
	ErrAlreadyManaged = errors.New("actor name already managed")
	// ErrGroupMemberManaged is raised when an actor is registered whose
	// name is exposed by an already managed group.
	ErrGroupMemberManaged = errors.New("actor already managed as a group member")
	// ErrEmptyGroup is raised when a group is managed before members were
	// added to it.
	ErrEmptyGroup = errors.New("group has no members")
	// ErrBadCoreID is raised when an affinity set names a CPU that does
	// not exist.
	ErrBadCoreID = errors.New("cpu core id out of range")
	// ErrRemoteCall is returned when Call is attempted through a remote
	// reference. Synchronous delivery is local-only.
	ErrRemoteCall = errors.New("synchronous call is local-only")
	// ErrInvalidRef is returned when an empty ActorRef is used.
	ErrInvalidRef = errors.New("invalid actor reference")
)
