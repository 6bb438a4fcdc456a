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

// Package remote federates in-process actors across processes over a
// JSON envelope protocol carried on push/pull sockets. The Sender
// serializes on the caller's thread and writes on its own worker; the
// Receiver polls a pull socket, routes envelopes to registered local
// actors and installs a reply proxy pointing back at the remote sender.
package remote

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/pkg/errors"
	"go.nanomsg.org/mangos/v3/protocol"
	"go.nanomsg.org/mangos/v3/protocol/push"
	"go.uber.org/multierr"

	// register the TCP transport with mangos
	_ "go.nanomsg.org/mangos/v3/transport/tcp"

	"github.com/vincent212/actors-go/actor"
	"github.com/vincent212/actors-go/log"
)

// remoteDispatch is the internal record the Sender posts to itself for
// each outbound message. The body is serialized before the record is
// queued, so the per-message CPU cost lands on the calling thread and
// the socket write is serialized on the Sender's worker. It is never
// put on the wire.
type remoteDispatch struct {
	actor.Meta
	endpoint       string
	actorName      string
	senderName     string
	senderEndpoint string
	messageType    string
	body           json.RawMessage
}

// KindID implements actor.Message.
func (*remoteDispatch) KindID() int { return actor.KindRemoteDispatch }

// Sender is the actor that delivers messages to remote processes. It
// owns one cached push socket per destination endpoint; because the
// writes happen on the Sender's own worker, callers never block on the
// network and the sockets are never shared across threads.
type Sender struct {
	*actor.Base

	localEndpoint string
	logger        log.Logger

	mu      sync.Mutex
	sockets map[string]protocol.Socket
}

// NewSender creates a Sender. localEndpoint is the endpoint remote
// peers use to reply to this process (e.g. "tcp://localhost:5002").
// The Sender must be managed like any other actor before use.
func NewSender(localEndpoint string, opts ...actor.Option) *Sender {
	s := &Sender{
		Base:          actor.NewBase("remote-sender", opts...),
		localEndpoint: localEndpoint,
		sockets:       make(map[string]protocol.Socket),
	}
	s.logger = s.Base.Logger()
	actor.RegisterHandler(s.Base, s.onStart)
	actor.RegisterHandler(s.Base, s.onDispatch)
	s.Base.OnEnd(func() {
		if err := s.Close(); err != nil {
			s.logger.Errorf("remote sender close: %v", err)
		}
	})
	return s
}

var _ actor.RemoteSender = (*Sender)(nil)

// LocalEndpoint returns the endpoint remote peers reply to.
func (s *Sender) LocalEndpoint() string { return s.localEndpoint }

// SendTo delivers m to the named actor at the given endpoint. The wire
// body is serialized immediately, on the caller's thread; the message
// is consumed either way. The socket write happens later, on the
// Sender's worker. An unregistered message kind is a local failure: the
// error is returned and nothing is emitted.
func (s *Sender) SendTo(endpoint, actorName string, m actor.Message, sender actor.Ref) error {
	if m == nil {
		return actor.ErrNilMessage
	}

	typeName := TypeName(m.KindID())
	if typeName == "" {
		return errors.Wrapf(ErrTypeNotRegistered, "kind id %d", m.KindID())
	}

	body, err := Serialize(m)
	if err != nil {
		return errors.Wrap(err, "serialize message")
	}

	var senderName, senderEndpoint string
	if sender != nil {
		senderName = sender.Name()
		senderEndpoint = s.localEndpoint
	}

	s.Base.Post(&remoteDispatch{
		endpoint:       endpoint,
		actorName:      actorName,
		senderName:     senderName,
		senderEndpoint: senderEndpoint,
		messageType:    typeName,
		body:           body,
	}, nil)
	return nil
}

// RemoteRef returns a reference to the named actor at the given
// endpoint, routed through this Sender.
func (s *Sender) RemoteRef(name, endpoint string) actor.ActorRef {
	return actor.NewRemoteRef(name, endpoint, s)
}

// Close releases every cached socket. It is also invoked from the
// Sender's end hook when the actor terminates.
func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	for endpoint, sock := range s.sockets {
		if closeErr := sock.Close(); closeErr != nil {
			err = multierr.Append(err, errors.Wrapf(closeErr, "close socket to %s", endpoint))
		}
	}
	s.sockets = make(map[string]protocol.Socket)
	return err
}

func (s *Sender) onStart(*actor.Start) {
	s.logger.Infof("remote sender ready, local endpoint %s", s.localEndpoint)
}

// onDispatch runs on the Sender's worker: it builds the envelope and
// writes it as a single frame on the cached socket for the endpoint.
// Transport errors are logged; retransmission is an application
// concern.
func (s *Sender) onDispatch(req *remoteDispatch) {
	env := envelope{
		Receiver:    req.actorName,
		MessageType: req.messageType,
		Message:     req.body,
	}
	if req.senderName != "" {
		env.SenderActor = &req.senderName
		env.SenderEndpoint = &req.senderEndpoint
	}

	data, err := json.Marshal(&env)
	if err != nil {
		s.logger.Errorf("marshal envelope for %s: %v", req.actorName, err)
		return
	}

	if err := s.write(req.endpoint, data); err != nil {
		s.logger.Errorf("send %s to %q at %s: %v", req.messageType, req.actorName, req.endpoint, err)
	}
}

func (s *Sender) write(endpoint string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sock, ok := s.sockets[endpoint]
	if !ok {
		var err error
		if sock, err = s.connect(endpoint); err != nil {
			return err
		}
		s.sockets[endpoint] = sock
	}
	return sock.Send(data)
}

// connect opens a push socket to the endpoint, rewriting wildcard bind
// addresses into loopback connect addresses. The dial is retried
// briefly so a peer that is still binding is not a hard failure.
func (s *Sender) connect(endpoint string) (protocol.Socket, error) {
	sock, err := push.NewSocket()
	if err != nil {
		return nil, errors.Wrap(err, "create push socket")
	}

	addr := connectAddress(endpoint)
	retrier := retry.NewRetrier(5, 50*time.Millisecond, 500*time.Millisecond)
	if err := retrier.Run(func() error { return sock.Dial(addr) }); err != nil {
		_ = sock.Close()
		return nil, errors.Wrapf(err, "dial %s", addr)
	}
	return sock, nil
}
