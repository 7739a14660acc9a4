package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf, "text", "debug")
	require.NoError(t, err)
	_, err = New(&buf, "JSON", "WARN")
	require.NoError(t, err)

	_, err = New(&buf, "xml", "info")
	assert.Error(t, err)
	_, err = New(&buf, "text", "loud")
	assert.Error(t, err)
}

func TestLogRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "json", "info")
	require.NoError(t, err)

	log.WithK(3).LogRun(context.Background(), "kmeans", map[string]float64{"inertia": 2.5}, nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "clustering completed", entry["msg"])
	assert.Equal(t, "kmeans", entry["algorithm"])
	assert.Equal(t, 3.0, entry["k"])
	assert.Equal(t, 2.5, entry["inertia"])
	_, hasSilhouette := entry["silhouette"]
	assert.False(t, hasSilhouette, "undefined metrics are omitted")
}

func TestLogRun_Error(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "text", "info")
	require.NoError(t, err)

	log.LogRun(context.Background(), "agglomerative", nil, errors.New("boom"))
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestLogArtifact_Level(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "text", "info")
	require.NoError(t, err)

	log.LogArtifact(context.Background(), "labels", "out/clustered_k3.csv", nil)
	assert.Empty(t, buf.String(), "artifacts are logged at debug")

	log.LogArtifact(context.Background(), "plot", "out/plot.png", errors.New("disk full"))
	assert.True(t, strings.Contains(buf.String(), "write failed"))
}

func TestNoop(t *testing.T) {
	log := Noop()
	log.LogRun(context.Background(), "kmeans", nil, nil)
	assert.False(t, log.Enabled(context.Background(), 8))
}
