// Package bus is an in-process topic pub/sub with retained messages.
//
// Topics are token slices; tokens are strings or ints. Subscriptions may use
// "+" (one level) and "#" (this level and everything below, last token only).
package bus

import (
	"sync"
)

// -----------------------------------------------------------------------------
// Topics
// -----------------------------------------------------------------------------

// Topic is a sequence of tokens (string or int).
type Topic []any

// T builds a Topic from tokens.
func T(tokens ...any) Topic { return Topic(tokens) }

func (t Topic) Len() int      { return len(t) }
func (t Topic) At(i int) any  { return t[i] }
func (t Topic) key() topicKey { return topicKey(joinTokens(t)) }

const (
	wildOne = "+"
	wildAll = "#"
)

// Match reports whether topic t matches subscription pattern p.
func Match(p, t Topic) bool {
	for i, tok := range p {
		if tok == wildAll {
			return i == len(p)-1
		}
		if i >= len(t) {
			return false
		}
		if tok == wildOne {
			continue
		}
		if tok != t[i] {
			return false
		}
	}
	return len(p) == len(t)
}

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

type topicKey string

type Bus struct {
	mu       sync.RWMutex
	subs     map[*Subscription]struct{}
	retained map[topicKey]*Message
	qLen     int
}

// NewBus creates a new bus with the given subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{
		subs:     map[*Subscription]struct{}{},
		retained: map[topicKey]*Message{},
		qLen:     queueLen,
	}
}

// NewMessage builds a message without publishing it.
func (b *Bus) NewMessage(topic Topic, payload any, retained bool) *Message {
	return &Message{Topic: topic, Payload: payload, Retained: retained}
}

// Publish delivers msg to all matching subscribers. A retained message with a
// nil payload clears the retained value for its topic.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg.Retained {
		if msg.Payload == nil {
			delete(b.retained, msg.Topic.key())
		} else {
			b.retained[msg.Topic.key()] = msg
		}
	}
	for sub := range b.subs {
		if Match(sub.topic, msg.Topic) {
			deliver(sub.ch, msg)
		}
	}
}

// deliver drops the oldest queued message when the queue is full.
func deliver(ch chan *Message, msg *Message) {
	select {
	case ch <- msg:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- msg:
	default:
	}
}

func (b *Bus) add(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[sub] = struct{}{}
	for _, m := range b.retained {
		if Match(sub.topic, m.Topic) {
			deliver(sub.ch, m)
		}
	}
}

func (b *Bus) remove(sub *Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return false
	}
	delete(b.subs, sub)
	return true
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

type Connection struct {
	bus  *Bus
	mu   sync.Mutex
	subs []*Subscription
	id   string
}

// NewConnection creates a new connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) NewMessage(topic Topic, payload any, retained bool) *Message {
	return c.bus.NewMessage(topic, payload, retained)
}

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

// Subscribe registers a subscription owned by this connection. Matching
// retained messages are queued immediately.
func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	c.bus.add(sub)
	return sub
}

// Unsubscribe removes sub and closes its channel. Repeated calls are no-ops.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	if c.bus.remove(sub) {
		close(sub.ch)
	}
}

// Disconnect closes all subscriptions of this connection.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, sub := range subs {
		if c.bus.remove(sub) {
			close(sub.ch)
		}
	}
}
