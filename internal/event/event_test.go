package event

import "testing"

func TestSubscribeDispatchUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var got []string
	a := d.Subscribe(PointerMoved, ListenerFunc(func(Event) { got = append(got, "a") }))
	d.Subscribe(PointerMoved, ListenerFunc(func(Event) { got = append(got, "b") }))
	d.Subscribe(Resized, ListenerFunc(func(Event) { got = append(got, "resize") }))

	d.Dispatch(Event{Type: PointerMoved})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("dispatch order = %v, want [a b]", got)
	}

	if !d.Unsubscribe(a) {
		t.Fatal("Unsubscribe returned false for a live subscription")
	}
	if d.Unsubscribe(a) {
		t.Error("second Unsubscribe returned true")
	}

	got = nil
	d.Dispatch(Event{Type: PointerMoved})
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("after unsubscribe got %v, want [b]", got)
	}
	if n := d.ListenerCount(PointerMoved); n != 1 {
		t.Errorf("ListenerCount = %d, want 1", n)
	}
	if n := d.Total(); n != 2 {
		t.Errorf("Total = %d, want 2", n)
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var sub Subscription
	calls := 0
	sub = d.Subscribe(TouchMoved, ListenerFunc(func(Event) {
		calls++
		d.Unsubscribe(sub)
	}))
	second := 0
	d.Subscribe(TouchMoved, ListenerFunc(func(Event) { second++ }))

	d.Dispatch(Event{Type: TouchMoved})
	d.Dispatch(Event{Type: TouchMoved})

	if calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", calls)
	}
	if second != 2 {
		t.Errorf("other listener called %d times, want 2", second)
	}
}
