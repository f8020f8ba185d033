// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "traceID", contextKey("traceID").String())
}

func TestGetUserIDFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Zero(t, userID)
}

func TestGetUserIDFromContext_WrongValueType(t *testing.T) {
	// an int stored where int64 is expected must not be found
	ctx := context.WithValue(context.Background(), UserIDCtxKey, 42)

	_, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
}

func TestGetUserIDFromContext_PlainStringKeyDoesNotCollide(t *testing.T) {
	// значение под строковым ключом "userID" не видно через contextKey
	ctx := context.WithValue(context.Background(), "userID", int64(42)) //nolint:staticcheck

	_, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
}
