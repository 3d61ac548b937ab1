// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Not-Sarthak/vault-anchor/chain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	DefaultMaxPendingMessages = 1_024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

type connection struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *connection) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// WebSocketServer pushes the result of every executed transaction to each
// connected client as a JSON [TxResult]. Clients that fall more than
// maxPendingMessages behind are disconnected.
type WebSocketServer struct {
	log        logging.Logger
	maxPending int

	lock  sync.RWMutex
	conns map[*connection]struct{}
}

func NewWebSocketServer(log logging.Logger, maxPendingMessages int) *WebSocketServer {
	return &WebSocketServer{
		log:        log,
		maxPending: maxPendingMessages,
		conns:      make(map[*connection]struct{}),
	}
}

func (w *WebSocketServer) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		w.log.Debug("failed to upgrade", zap.Error(err))
		return
	}
	c := &connection{
		conn: conn,
		send: make(chan []byte, w.maxPending),
	}
	w.lock.Lock()
	w.conns[c] = struct{}{}
	w.lock.Unlock()

	go w.writePump(c)
	go w.readPump(c)
}

func (w *WebSocketServer) remove(c *connection) {
	w.lock.Lock()
	delete(w.conns, c)
	w.lock.Unlock()
	c.close()
}

// readPump discards anything the client sends. It only exists to process
// control frames and notice when the client goes away.
func (w *WebSocketServer) readPump(c *connection) {
	defer w.remove(c)

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				w.log.Debug("unexpected close in websockets", zap.Error(err))
			}
			return
		}
	}
}

func (w *WebSocketServer) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				w.log.Debug("failed to write websockets message", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// AcceptResults publishes [results] to every connection.
func (w *WebSocketServer) AcceptResults(results []*chain.Result) {
	w.lock.RLock()
	if len(w.conns) == 0 {
		w.lock.RUnlock()
		return
	}
	msgs := make([][]byte, 0, len(results))
	for _, r := range results {
		txr, err := newTxResult(r)
		if err == nil {
			var msg []byte
			msg, err = json.Marshal(txr)
			msgs = append(msgs, msg)
		}
		if err != nil {
			w.log.Error("failed to encode result",
				zap.Stringer("txID", r.TxID),
				zap.Error(err),
			)
			w.lock.RUnlock()
			return
		}
	}
	var slow []*connection
	for c := range w.conns {
		for _, msg := range msgs {
			select {
			case c.send <- msg:
				continue
			default:
			}
			slow = append(slow, c)
			break
		}
	}
	w.lock.RUnlock()

	for _, c := range slow {
		w.log.Debug("dropping slow websockets connection")
		w.remove(c)
	}
}

// Connections is the number of connected clients.
func (w *WebSocketServer) Connections() int {
	w.lock.RLock()
	defer w.lock.RUnlock()

	return len(w.conns)
}

// Close disconnects every client.
func (w *WebSocketServer) Close() {
	w.lock.Lock()
	conns := w.conns
	w.conns = make(map[*connection]struct{})
	w.lock.Unlock()

	for c := range conns {
		c.close()
	}
}
