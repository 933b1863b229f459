package enrich

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steveyegge/digest/internal/aha"
	"github.com/steveyegge/digest/internal/debug"
	"github.com/steveyegge/digest/internal/normalize"
	"github.com/steveyegge/digest/internal/rest"
)

type fakeFetcher struct {
	calls []string
	in    *aha.Initiative
	err   error
}

func (f *fakeFetcher) Initiative(_ context.Context, id string) (*aha.Initiative, error) {
	f.calls = append(f.calls, id)
	return f.in, f.err
}

func TestInitiativePresent(t *testing.T) {
	progress := 60.0
	f := &fakeFetcher{in: &aha.Initiative{ReferenceNum: "PROD-I-1", Name: "Launch", Progress: &progress}}

	res := Initiative(context.Background(), f, &normalize.LinkedInitiative{ID: "123", Reference: "PROD-I-1"})
	require.True(t, res.Present())
	assert.NoError(t, res.Err)
	assert.Equal(t, "60%", res.Value.Progress)
	assert.Equal(t, []string{"123"}, f.calls)
}

func TestInitiativeFailureIsSwallowed(t *testing.T) {
	f := &fakeFetcher{err: errors.New("Aha! API error: 500 Internal Server Error")}

	res := Initiative(context.Background(), f, &normalize.LinkedInitiative{ID: "123"})
	assert.False(t, res.Present())
	assert.False(t, res.Skipped())
	assert.EqualError(t, res.Err, "Aha! API error: 500 Internal Server Error")
	assert.Len(t, f.calls, 1)
}

func TestInitiativeEmptyResponse(t *testing.T) {
	f := &fakeFetcher{}

	res := Initiative(context.Background(), f, &normalize.LinkedInitiative{Reference: "PROD-I-9"})
	assert.False(t, res.Present())
	assert.ErrorIs(t, res.Err, ErrEmpty)
	assert.Equal(t, []string{"PROD-I-9"}, f.calls)
}

func TestInitiativeSkippedWithoutLink(t *testing.T) {
	f := &fakeFetcher{}

	res := Initiative(context.Background(), f, nil)
	assert.True(t, res.Skipped())
	assert.Empty(t, f.calls)
}

func TestInitiativeNotFoundLogged(t *testing.T) {
	debug.SetVerbose(true)
	defer debug.SetVerbose(false)

	oldStderr := os.Stderr
	defer func() { os.Stderr = oldStderr }()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	f := &fakeFetcher{err: &rest.Error{Service: "Aha!", StatusCode: 404, Status: "Not Found"}}
	res := Initiative(context.Background(), f, &normalize.LinkedInitiative{ID: "77"})

	w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	assert.False(t, res.Present())
	assert.Equal(t, 404, rest.StatusCode(res.Err))
	assert.Contains(t, buf.String(), "[enrich] initiative 77 not found")
}
