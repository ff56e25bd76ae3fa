package feed

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *GameEvent {
	return &GameEvent{
		ID:        uuid.NewString(),
		SessionID: uuid.NewString(),
		Type:      EventTypeSessionCompleted,
		Timestamp: time.Now(),
		Data:      json.RawMessage(`{}`),
	}
}

func TestHandleBroadcast_ConcurrentUnregister(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	event := testEvent()

	for i := 0; i < 200; i++ {
		conn := &Connection{
			ID:      uuid.NewString(),
			Send:    make(chan []byte, 64),
			Manager: cm,
		}
		cm.registerConnection(conn)

		drained := make(chan struct{})
		go func() {
			for range conn.Send {
			}
			close(drained)
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				cm.handleBroadcast(BroadcastMessage{Event: event})
			}
		}()
		go func() {
			defer wg.Done()
			cm.unregisterConnection(conn)
		}()
		wg.Wait()
		<-drained
	}

	stats := cm.GetConnectionStats()
	assert.Equal(t, 0, stats["total_connections"])
}

func TestUnregisterConnection_Idempotent(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	conn := &Connection{
		ID:      uuid.NewString(),
		Send:    make(chan []byte, 1),
		Manager: cm,
	}
	cm.registerConnection(conn)

	cm.unregisterConnection(conn)
	cm.unregisterConnection(conn)
	conn.closeSend()

	_, open := <-conn.Send
	assert.False(t, open)
}

func TestTrySend_AfterClose(t *testing.T) {
	conn := &Connection{
		ID:   uuid.NewString(),
		Send: make(chan []byte, 1),
	}

	sent, open := conn.trySend([]byte(`{}`))
	assert.True(t, sent)
	assert.True(t, open)

	conn.closeSend()

	sent, open = conn.trySend([]byte(`{}`))
	assert.False(t, sent)
	assert.False(t, open)
}

func TestHandleBroadcast_FiltersByUser(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	userID := uuid.New()

	all := &Connection{ID: uuid.NewString(), Send: make(chan []byte, 1), Manager: cm}
	mine := &Connection{ID: uuid.NewString(), Send: make(chan []byte, 1), Manager: cm, FilterUserID: userID}
	other := &Connection{ID: uuid.NewString(), Send: make(chan []byte, 1), Manager: cm, FilterUserID: uuid.New()}
	cm.registerConnection(all)
	cm.registerConnection(mine)
	cm.registerConnection(other)

	cm.handleBroadcast(BroadcastMessage{Event: testEvent(), UserID: userID})

	require.Len(t, all.Send, 1)
	require.Len(t, mine.Send, 1)
	assert.Empty(t, other.Send)
}
