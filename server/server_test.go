// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

type echoService struct{}

type EchoArgs struct {
	Message string `json:"message"`
}

type EchoReply struct {
	Message string `json:"message"`
}

func (*echoService) Echo(_ *http.Request, args *EchoArgs, reply *EchoReply) error {
	reply.Message = args.Message
	return nil
}

func newTestServer(t *testing.T, compress bool) *Server {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = listener.Close()
	})
	return New(logging.NoLog{}, listener, NewDefaultHTTPConfig(), []string{"https://example.com"}, compress)
}

func TestServerRoutes(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t, false)
	handler, err := NewHandler(&echoService{}, "test")
	require.NoError(err)
	s.AddRoute(handler, "/rpc")

	body := `{"jsonrpc":"2.0","id":1,"method":"test.echo","params":{"message":"hi"}}`
	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(http.StatusOK, rec.Code)
	require.Contains(rec.Body.String(), `"message":"hi"`)
	require.Equal("https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(http.StatusNotFound, rec.Code)
}

func TestServerCompress(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t, true)
	payload := strings.Repeat("vault", 1_000)
	s.AddRoute(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, payload)
	}), "/big")

	req := httptest.NewRequest(http.MethodGet, "/big", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(http.StatusOK, rec.Code)
	require.Equal("gzip", rec.Header().Get("Content-Encoding"))
	require.Less(rec.Body.Len(), len(payload))
}

func TestServerShutdown(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t, false)

	done := make(chan error, 1)
	go func() {
		done <- s.Dispatch()
	}()
	require.NoError(s.Shutdown())
	require.NoError(<-done)
}
