// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otakuhaven/otakuhaven/internal/platform/ctxutil"
)

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_OperationID verifies that operation IDs can be injected and retrieved.
*/
func TestContext_OperationID(t *testing.T) {
	ctx := context.Background()
	operationID := "test-operation-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetOperationID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithOperationID(ctx, operationID)
	assert.Equal(t, operationID, ctxutil.GetOperationID(ctx))
}
