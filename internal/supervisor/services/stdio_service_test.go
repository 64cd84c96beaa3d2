// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// fakeStdioServer echoes its input and returns err, or waits for cancel when block is set.
type fakeStdioServer struct {
	err   error
	block bool
}

func (f *fakeStdioServer) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return f.err
}

var _ suture.Service = (*StdioService)(nil)

func TestStdioService_EndOfInputTerminatesTree(t *testing.T) {
	var out strings.Builder
	svc := NewStdioService(&fakeStdioServer{}, strings.NewReader("ping\n"), &out)

	err := svc.Serve(context.Background())

	if !errors.Is(err, suture.ErrTerminateSupervisorTree) {
		t.Errorf("Serve() = %v, want ErrTerminateSupervisorTree", err)
	}
	if out.String() != "ping\n" {
		t.Errorf("output = %q, want the input passed through", out.String())
	}
}

func TestStdioService_ErrorTerminatesTree(t *testing.T) {
	svc := NewStdioService(&fakeStdioServer{err: errors.New("broken pipe")}, strings.NewReader(""), io.Discard)

	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrTerminateSupervisorTree) {
		t.Errorf("Serve() = %v, want ErrTerminateSupervisorTree", err)
	}
}

func TestStdioService_CancelReturnsContextError(t *testing.T) {
	svc := NewStdioService(&fakeStdioServer{block: true}, strings.NewReader(""), io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if svc.String() != "mcp-stdio" {
		t.Errorf("String() = %q", svc.String())
	}
}
