// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracerIsNoop(t *testing.T) {
	require := require.New(t)

	tr, err := New(&Config{AppName: "vault"})
	require.NoError(err)

	_, span := tr.Start(context.Background(), "test")
	require.False(span.IsRecording())
	span.End()
	require.NoError(tr.Close())
}

func TestEnabledTracerRecords(t *testing.T) {
	require := require.New(t)

	tr, err := New(&Config{
		Enabled:    true,
		SampleRate: 1,
		Endpoint:   "http://127.0.0.1:1/api/v2/spans",
		AppName:    "vault",
	})
	require.NoError(err)

	_, span := tr.Start(context.Background(), "test")
	require.True(span.IsRecording())
	span.End()
}

func TestNoopTracerSpans(t *testing.T) {
	require := require.New(t)

	tr := Noop("vault")
	require.NotNil(tr.(*noopTracer).Tracer)

	ctx, span := tr.Start(context.Background(), "parent")
	require.False(span.IsRecording())
	_, child := tr.Start(ctx, "child")
	require.False(child.IsRecording())
	child.End()
	span.End()
	require.NoError(tr.Close())
}
