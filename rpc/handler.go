// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Not-Sarthak/vault-anchor/server"
)

// Register mounts the JSON-RPC service for [vm], the result stream [ws]
// and the metrics in [gatherer] on [s]. [ws] may be nil.
func Register(s *server.Server, vm VM, ws *WebSocketServer, gatherer prometheus.Gatherer) error {
	handler, err := server.NewHandler(NewJSONRPCServer(vm), Name)
	if err != nil {
		return err
	}
	s.AddRoute(handler, JSONRPCEndpoint)
	if ws != nil {
		s.AddRoute(ws, WebSocketEndpoint)
	}
	s.AddRoute(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}), MetricsEndpoint)
	return nil
}
