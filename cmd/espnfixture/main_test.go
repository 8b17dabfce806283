package main

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := serve(ctx, "127.0.0.1:0", zerolog.New(io.Discard)); err != nil {
		t.Fatalf("serve: %v", err)
	}
}
