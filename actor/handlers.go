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

import "reflect"

// handlerCacheSize bounds the fast-path dispatch array. Message kinds
// with ids in [0, handlerCacheSize) dispatch through an O(1) array read
// after the first lookup; larger ids always take the map.
const handlerCacheSize = 512

type handler func(Message)

// handlerTable maps message kind identities to bound handler functions.
// Registration happens during actor construction, before the worker
// starts; afterwards the table is only read. The cache and the
// known-absent bitset are mutated during dispatch, which is always
// serialized by the owning actor's dispatch mutex.
type handlerTable struct {
	byType map[reflect.Type]handler
	cache  [handlerCacheSize]handler
	absent [handlerCacheSize / 64]uint64
}

func (t *handlerTable) register(rt reflect.Type, h handler) {
	if t.byType == nil {
		t.byType = make(map[reflect.Type]handler)
	}
	// Overwrite silently: the last registration for a kind wins.
	t.byType[rt] = h
}

// invoke dispatches m to its registered handler and reports whether one
// was found. Lookup is two-tiered: the id cache first, then the kind
// identity map; misses populate the known-absent bitset so repeated
// unhandled kinds stay O(1).
func (t *handlerTable) invoke(m Message) bool {
	id := m.KindID()
	fast := id >= 0 && id < handlerCacheSize
	if fast {
		if h := t.cache[id]; h != nil {
			h(m)
			return true
		}
		if t.absent[id>>6]&(1<<(uint(id)&63)) != 0 {
			return false
		}
	}

	h, ok := t.byType[reflect.TypeOf(m)]
	if !ok {
		if fast {
			t.absent[id>>6] |= 1 << (uint(id) & 63)
		}
		return false
	}
	h(m)
	if fast {
		t.cache[id] = h
	}
	return true
}

// RegisterHandler binds fn as the handler for message kind T on actor b.
// It must be called during actor construction, before the actor is
// managed. Registering the same kind twice overwrites the previous
// binding.
func RegisterHandler[T Message](b *Base, fn func(T)) {
	if b == nil {
		panic(ErrNilActor)
	}
	b.handlers.register(reflect.TypeFor[T](), func(m Message) { fn(m.(T)) })
}
