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

package remote

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/vincent212/actors-go/actor"
)

// ErrTypeNotRegistered is returned when a message kind or wire-type
// name has no entry in the serialization registry.
var ErrTypeNotRegistered = errors.New("message type not registered")

// SerializeFunc turns a message into its JSON wire body.
type SerializeFunc func(actor.Message) (json.RawMessage, error)

// DeserializeFunc turns a JSON wire body back into a message.
type DeserializeFunc func(json.RawMessage) (actor.Message, error)

type registryEntry struct {
	kindID      int
	typeName    string
	serialize   SerializeFunc
	deserialize DeserializeFunc
}

// registry is the process-wide mapping between message kinds and their
// wire representation. Registration happens once per kind before any
// remote send; all access is mutex-guarded.
var registry = struct {
	sync.Mutex
	byID   map[int]*registryEntry
	byName map[string]*registryEntry
}{
	byID:   make(map[int]*registryEntry),
	byName: make(map[string]*registryEntry),
}

// Register associates a message kind with its wire-type name and codec
// functions. Registering the same kind again overwrites the previous
// entry.
func Register(kindID int, typeName string, serialize SerializeFunc, deserialize DeserializeFunc) {
	entry := &registryEntry{
		kindID:      kindID,
		typeName:    typeName,
		serialize:   serialize,
		deserialize: deserialize,
	}
	registry.Lock()
	registry.byID[kindID] = entry
	registry.byName[typeName] = entry
	registry.Unlock()
}

// RegisterJSON registers message kind T under the given wire-type name
// using encoding/json struct tags for the body:
//
//	type Ping struct {
//		actor.Meta
//		Count int `json:"count"`
//	}
//
//	func (*Ping) KindID() int { return 100 }
//
//	remote.RegisterJSON[Ping]("Ping")
func RegisterJSON[T any, PT messagePtr[T]](typeName string) {
	var zero T
	kindID := PT(&zero).KindID()
	Register(kindID, typeName,
		func(m actor.Message) (json.RawMessage, error) {
			return json.Marshal(m)
		},
		func(body json.RawMessage) (actor.Message, error) {
			out := new(T)
			if err := json.Unmarshal(body, out); err != nil {
				return nil, err
			}
			return PT(out), nil
		})
}

type messagePtr[T any] interface {
	*T
	actor.Message
}

// TypeName returns the wire-type name registered for the given kind id,
// or "" when the kind is unregistered.
func TypeName(kindID int) string {
	registry.Lock()
	defer registry.Unlock()
	if entry, ok := registry.byID[kindID]; ok {
		return entry.typeName
	}
	return ""
}

// IsRegistered reports whether the wire-type name has a registry entry.
func IsRegistered(typeName string) bool {
	registry.Lock()
	defer registry.Unlock()
	_, ok := registry.byName[typeName]
	return ok
}

// Serialize produces the JSON wire body for m.
func Serialize(m actor.Message) (json.RawMessage, error) {
	registry.Lock()
	entry, ok := registry.byID[m.KindID()]
	registry.Unlock()
	if !ok {
		return nil, errors.Wrapf(ErrTypeNotRegistered, "kind id %d", m.KindID())
	}
	return entry.serialize(m)
}

// Deserialize builds a new message from a wire-type name and body. An
// unregistered name yields ErrTypeNotRegistered.
func Deserialize(typeName string, body json.RawMessage) (actor.Message, error) {
	registry.Lock()
	entry, ok := registry.byName[typeName]
	registry.Unlock()
	if !ok {
		return nil, errors.Wrapf(ErrTypeNotRegistered, "%s", typeName)
	}
	return entry.deserialize(body)
}
