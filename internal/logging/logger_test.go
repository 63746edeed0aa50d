package logging

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/leg100/tabstrip/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{
		Level:             "debug",
		AdditionalWriters: []io.Writer{&buf},
	})
	sub := logger.Subscribe(context.Background())

	logger.Debug("selected tab", "position", 2)
	logger.Info("bound pager", "pages", 3)

	msgs := logger.List()
	require.Len(t, msgs, 2)
	assert.Equal(t, "selected tab", msgs[0].Message)
	assert.Equal(t, "DEBUG", msgs[0].Level)
	assert.Equal(t, uint(0), msgs[0].Serial)
	assert.Equal(t, uint(1), msgs[1].Serial)

	pos, ok := msgs[0].Attr("position")
	assert.True(t, ok)
	assert.Equal(t, "2", pos)

	last, ok := logger.Last()
	require.True(t, ok)
	assert.Equal(t, "bound pager", last.Message)

	got, err := logger.Get(1)
	require.NoError(t, err)
	assert.Equal(t, last, got)

	_, err = logger.Get(99)
	assert.ErrorIs(t, err, resource.ErrNotFound)

	ev := <-sub
	assert.Equal(t, resource.CreatedEvent, ev.Type)
	assert.Equal(t, "selected tab", ev.Payload.Message)

	assert.Contains(t, buf.String(), "msg=\"bound pager\"")
}

func TestLogger_Level(t *testing.T) {
	logger := NewLogger(Options{Level: "warn"})

	logger.Info("ignored")
	logger.Warn("kept")

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.Equal(t, "kept", msgs[0].Message)
}
