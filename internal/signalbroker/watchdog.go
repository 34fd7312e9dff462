// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/optfile/internal/ctxlog"
)

// Watch monitors the signal channel and cancels the context on the first
// termination signal received, so that in-flight option file fetches stop
// cleanly. The signals are then unregistered and a repeat signal terminates
// the process with the default OS behavior.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	sig, ok := <-sigCh
	if !ok {
		return
	}

	ctxlog.Logger(ctx).Warn("watchdog", "detail", "received termination signal, canceling", "signal", sig.String())
	signal.Stop(sigCh)
	cancel()
}
