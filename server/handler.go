// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
)

// NewHandler serves the exported methods of [service] as JSON-RPC 2.0 calls
// named "[name].method". Method names take the avalanchego casing, so
// "vault.submitTx" reaches SubmitTx. Both plain and charset-qualified JSON
// content types are accepted.
func NewHandler(service any, name string) (http.Handler, error) {
	rpcServer := rpc.NewServer()
	jsonCodec := json.NewCodec()
	for _, contentType := range []string{"application/json", "application/json;charset=UTF-8"} {
		rpcServer.RegisterCodec(jsonCodec, contentType)
	}
	if err := rpcServer.RegisterService(service, name); err != nil {
		return nil, fmt.Errorf("register %s service: %w", name, err)
	}
	return rpcServer, nil
}
