// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Contains(t *testing.T) {
	t.Parallel()

	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, 1))
}

func Test_GenerateUUID(t *testing.T) {
	t.Parallel()

	id := GenerateUUID()
	assert.Len(t, id, 32)
	assert.NotEqual(t, id, GenerateUUID())
}

func Test_GenerateMatchID(t *testing.T) {
	t.Parallel()

	id := GenerateMatchID()
	assert.Len(t, id, 26)
	assert.NotEqual(t, id, GenerateMatchID())
}
