package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDispatcher() *dispatcher {
	return newDispatcher(zap.NewNop().Sugar())
}

func TestDispatcherSingleAwaiterResolves(t *testing.T) {
	d := newTestDispatcher()
	go d.run()
	defer d.stop()

	a := d.register(map[uint32]bool{5: true}, false, 0)
	d.incoming <- Frame{TypeID: 5, Payload: []byte("ok")}

	select {
	case f := <-a.out:
		require.Equal(t, uint32(5), f.TypeID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for awaiter response")
	}
}

func TestDispatcherAwaitUntilCollectsAndExcludesTerminator(t *testing.T) {
	d := newTestDispatcher()
	go d.run()
	defer d.stop()

	a := d.register(map[uint32]bool{20: true}, true, 14)
	d.incoming <- Frame{TypeID: 20, Payload: []byte("one")}
	d.incoming <- Frame{TypeID: 20, Payload: []byte("two")}
	d.incoming <- Frame{TypeID: 14}

	var got []Frame
	for {
		select {
		case f, ok := <-a.out:
			if !ok {
				goto drained
			}
			if f.TypeID != 14 {
				got = append(got, f)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out collecting frames")
		}
	}
drained:
	require.Len(t, got, 2, "terminator frame must not be included in results")
	require.Equal(t, uint32(20), got[0].TypeID)
	require.Equal(t, uint32(20), got[1].TypeID)
}

func TestDispatcherHandlerTableDeliversRepeatedly(t *testing.T) {
	d := newTestDispatcher()
	go d.run()
	defer d.stop()

	seen := make(chan Frame, 8)
	d.addHandler(8, func(f Frame) { seen <- f }, false)

	d.incoming <- Frame{TypeID: 8}
	d.incoming <- Frame{TypeID: 8}

	for i := 0; i < 2; i++ {
		select {
		case <-seen:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for handler call %d", i)
		}
	}
}

func TestDispatcherRemoveAfterCallHandlerFiresOnce(t *testing.T) {
	d := newTestDispatcher()
	go d.run()
	defer d.stop()

	calls := make(chan struct{}, 8)
	d.addHandler(9, func(Frame) { calls <- struct{}{} }, true)

	d.incoming <- Frame{TypeID: 9}
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first call")
	}

	d.incoming <- Frame{TypeID: 9}
	select {
	case <-calls:
		t.Fatal("removeAfterCall handler must not fire a second time")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcherFailsPendingAwaitersOnClose(t *testing.T) {
	d := newTestDispatcher()
	go d.run()

	a := d.register(map[uint32]bool{1: true}, false, 0)
	d.stop()

	select {
	case err := <-a.done:
		require.ErrorIs(t, err, ErrConnectionClosed)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for pending awaiter to fail")
	}
}
