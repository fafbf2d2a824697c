// bus/bus_test.go
package bus

import (
	"sort"
	"testing"
	"time"
)

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("comms", "state"))
	conn.Publish(conn.NewMessage(T("comms", "state"), "hello", false))

	select {
	case got := <-sub.Channel():
		if got.Payload.(string) != "hello" {
			t.Errorf("expected payload 'hello', got %v", got.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(conn.NewMessage(T("config", "comms"), "persist", true))
	sub := conn.Subscribe(T("config", "comms"))

	expectOneOf(t, sub, "persist")
}

func TestIntTokensDistinctFromStrings(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")

	c.Publish(b.NewMessage(T("backend", 0), "int", true))
	c.Publish(b.NewMessage(T("backend", "0"), "str", true))

	got := drainPayloads(t, c.Subscribe(T("backend", "+")), 2)
	assertUnorderedEqual(t, got, []string{"int", "str"})
}

// -----------------------------------------------------------------------------
// Wildcards
// -----------------------------------------------------------------------------

func TestWildcard_SingleLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	s1 := c.Subscribe(Topic{"a", "+", "c"})
	s2 := c.Subscribe(Topic{"a", "+", "+"})
	sNo := c.Subscribe(Topic{"a", "+", "d"})

	c.Publish(b.NewMessage(Topic{"a", "b", "c"}, "m1", false))
	expectOneOf(t, s1, "m1")
	expectOneOf(t, s2, "m1")
	expectNoMessage(t, sNo)

	c.Publish(b.NewMessage(Topic{"a", "c"}, "m2", false))
	expectNoMessage(t, s1)
	expectNoMessage(t, s2)
}

func TestWildcard_MultiLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	sAHash := c.Subscribe(Topic{"a", "#"})
	sHash := c.Subscribe(Topic{"#"})
	sABHash := c.Subscribe(Topic{"a", "b", "#"})

	c.Publish(b.NewMessage(Topic{"a"}, "p1", false))
	expectOneOf(t, sAHash, "p1")
	expectOneOf(t, sHash, "p1")
	expectNoMessage(t, sABHash)

	c.Publish(b.NewMessage(Topic{"a", "b", "c"}, "p2", false))
	expectOneOf(t, sAHash, "p2")
	expectOneOf(t, sHash, "p2")
	expectOneOf(t, sABHash, "p2")
}

func TestWildcard_RetainedDeliveryAndClear(t *testing.T) {
	b := NewBus(32)
	c := b.NewConnection("test")

	c.Publish(b.NewMessage(Topic{"a"}, "r0", true))
	c.Publish(b.NewMessage(Topic{"a", "b"}, "r1", true))
	c.Publish(b.NewMessage(Topic{"a", "x"}, "r2", true))

	assertUnorderedEqual(t, drainPayloads(t, c.Subscribe(Topic{"a", "#"}), 3), []string{"r0", "r1", "r2"})
	assertUnorderedEqual(t, drainPayloads(t, c.Subscribe(Topic{"a", "+"}), 2), []string{"r1", "r2"})

	c.Publish(b.NewMessage(Topic{"a", "b"}, nil, true))
	got := drainPayloads(t, c.Subscribe(Topic{"a", "+"}), 1)
	if len(got) != 1 || got[0] != "r2" {
		t.Fatalf("expected only 'r2' after clear, got %v", got)
	}
}

func TestUnsubscribeClosesChannelOnce(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	s := c.Subscribe(T("x"))
	s.Unsubscribe()
	c.Unsubscribe(s) // second call must not panic on double close

	if _, ok := <-s.Channel(); ok {
		t.Fatal("channel still open after Unsubscribe")
	}
	c.Publish(b.NewMessage(T("x"), "late", false)) // no receivers; must not panic
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	b := NewBus(1)
	c := b.NewConnection("test")
	s := c.Subscribe(T("q"))

	c.Publish(b.NewMessage(T("q"), "old", false))
	c.Publish(b.NewMessage(T("q"), "new", false))
	expectOneOf(t, s, "new")
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func expectOneOf(t *testing.T, s *Subscription, want string) {
	t.Helper()
	select {
	case m := <-s.Channel():
		if got, _ := m.Payload.(string); got != want {
			t.Fatalf("payload = %v, want %q", m.Payload, want)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for %q", want)
	}
}

func expectNoMessage(t *testing.T, s *Subscription) {
	t.Helper()
	select {
	case m := <-s.Channel():
		t.Fatalf("unexpected message %v on %v", m.Payload, s.Topic())
	case <-time.After(20 * time.Millisecond):
	}
}

func drainPayloads(t *testing.T, s *Subscription, n int) []string {
	t.Helper()
	var out []string
	deadline := time.After(200 * time.Millisecond)
	for len(out) < n {
		select {
		case m := <-s.Channel():
			p, _ := m.Payload.(string)
			out = append(out, p)
		case <-deadline:
			t.Fatalf("got %d of %d messages: %v", len(out), n, out)
		}
	}
	return out
}

func assertUnorderedEqual(t *testing.T, got, want []string) {
	t.Helper()
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
