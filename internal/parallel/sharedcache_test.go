//
// reversicore - Othello/Reversi search and evaluation engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 The reversicore Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSharedCacheRejectsNonPositiveMaxEntriesWithADefault(t *testing.T) {
	c, err := NewSharedCache(0)
	require.NoError(t, err)
	defer c.Close()
	assert.NotNil(t, c.cache)
}

func TestSharedCacheGetMissesOnUnknownKey(t *testing.T) {
	c, err := NewSharedCache(1024)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(999)
	assert.False(t, ok)
}

func TestSharedCachePutThenGetHits(t *testing.T) {
	c, err := NewSharedCache(1024)
	require.NoError(t, err)
	defer c.Close()

	c.Put(42, -7)
	c.cache.Wait()

	v, ok := c.Get(42)
	require.True(t, ok)
	assert.EqualValues(t, -7, v)
}
