package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagecrew/stagekit/pkg/logger"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello", slog.String("k", "v"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "v", record["k"])
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithFormat(logger.FormatText), logger.WithOutput(&buf))

	log.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_InvalidFormatPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestNew_DebugLevelFiltered(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("invisible")

	assert.Empty(t, buf.String())
}

func TestWithProductionAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithProduction("stagekit"))

	log.Info("up")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "stagekit", record["service"])
	assert.Equal(t, "production", record["env"])
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	t.Run("error attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)

		empty := logger.Error(nil)
		assert.Empty(t, empty.Key)
	})

	t.Run("string attrs skip empty values", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, logger.UserID("").Key)
		assert.Empty(t, logger.ShowID("").Key)
		assert.Empty(t, logger.Collection("").Key)

		attr := logger.UserID("user-1")
		assert.Equal(t, "user_id", attr.Key)
		assert.Equal(t, "user-1", attr.Value.String())
	})

	t.Run("attrs render in output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithFormat(logger.FormatText), logger.WithOutput(&buf))
		log.Warn("limit check failed", logger.UserID("u1"), logger.Collection("props"))

		out := buf.String()
		assert.True(t, strings.Contains(out, "user_id=u1"))
		assert.True(t, strings.Contains(out, "collection=props"))
	})
}
