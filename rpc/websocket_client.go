// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Not-Sarthak/vault-anchor/chain"
)

const DefaultHandshakeTimeout = 10 * time.Second

// WebSocketClient receives the results the node executes.
type WebSocketClient struct {
	conn *websocket.Conn
}

// NewWebSocketClient connects to the result stream of the node at [uri].
func NewWebSocketClient(ctx context.Context, uri string, handshakeTimeout time.Duration) (*WebSocketClient, error) {
	uri = strings.TrimSuffix(uri, "/")
	uri = strings.Replace(uri, "http://", "ws://", 1)
	uri = strings.Replace(uri, "https://", "wss://", 1)
	if !strings.HasPrefix(uri, "ws") {
		uri = "ws://" + uri
	}
	uri += WebSocketEndpoint

	dialer := &websocket.Dialer{
		Proxy:            websocket.DefaultDialer.Proxy,
		HandshakeTimeout: handshakeTimeout,
	}
	conn, resp, err := dialer.DialContext(ctx, uri, nil)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()
	return &WebSocketClient{conn: conn}, nil
}

// ListenResult blocks until the next result arrives.
func (c *WebSocketClient) ListenResult() (*chain.Result, error) {
	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	var r TxResult
	if err := json.Unmarshal(msg, &r); err != nil {
		return nil, err
	}
	return r.Result()
}

func (c *WebSocketClient) Close() error {
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
	return c.conn.Close()
}
