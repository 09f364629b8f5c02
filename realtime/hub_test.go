package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	failing  bool
	closed   bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("broken pipe")
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func quietLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return log.NewEntry(logger)
}

func TestHub_BroadcastsAndDropsFailingClients(t *testing.T) {
	hub := NewHub(8, quietLogger())
	good := &fakeConn{}
	bad := &fakeConn{failing: true}
	hub.Register(good)
	hub.Register(bad)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	hub.Publish(Event{Entity: "category", Action: ActionCreated, Count: 1})

	require.Eventually(t, func() bool { return good.received() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, bad.isClosed())

	var ev Event
	require.NoError(t, json.Unmarshal(good.messages[0], &ev))
	assert.Equal(t, Event{Entity: "category", Action: ActionCreated, Count: 1}, ev)

	cancel()
	<-done
	assert.True(t, good.isClosed())
	assert.Equal(t, 0, hub.Clients())
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub(1, quietLogger())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Publish(Event{Entity: "order", Action: ActionDeleted, Count: i})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with no running hub")
	}
	assert.Len(t, hub.broadcast, 1)
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub(1, quietLogger())
	c := &fakeConn{}
	hub.Register(c)
	assert.Equal(t, 1, hub.Clients())
	hub.Unregister(c)
	assert.Equal(t, 0, hub.Clients())
}
