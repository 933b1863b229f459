package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPagerWritesDirectlyWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	err := ToPager(&buf, "Features:\n\n- One\n", PagerOptions{NoPager: true})
	require.NoError(t, err)
	assert.Equal(t, "Features:\n\n- One\n", buf.String())
}

func TestToPagerNonTTY(t *testing.T) {
	// stdout is not a terminal under go test, so no pager is spawned
	t.Setenv("DIGEST_PAGER", "false")
	var buf bytes.Buffer
	require.NoError(t, ToPager(&buf, "hello", PagerOptions{}))
	assert.Equal(t, "hello", buf.String())
}

func TestUsePagerEnvOptOut(t *testing.T) {
	t.Setenv("DIGEST_NO_PAGER", "1")
	assert.False(t, usePager(PagerOptions{}))
	assert.False(t, usePager(PagerOptions{NoPager: true}))
}

func TestPagerCommand(t *testing.T) {
	t.Run("DIGEST_PAGER wins", func(t *testing.T) {
		t.Setenv("DIGEST_PAGER", "more")
		t.Setenv("PAGER", "most")
		assert.Equal(t, "more", pagerCommand())
	})
	t.Run("PAGER fallback", func(t *testing.T) {
		t.Setenv("DIGEST_PAGER", "")
		t.Setenv("PAGER", "most")
		assert.Equal(t, "most", pagerCommand())
	})
	t.Run("default less", func(t *testing.T) {
		t.Setenv("DIGEST_PAGER", "")
		t.Setenv("PAGER", "")
		assert.Equal(t, "less", pagerCommand())
	})
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 0, lineCount(""))
	assert.Equal(t, 1, lineCount("one"))
	assert.Equal(t, 3, lineCount("a\nb\nc"))
}
