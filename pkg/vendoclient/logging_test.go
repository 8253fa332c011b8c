package vendoclient_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/vendo-io/vendo-go/pkg/vendoclient"
)

func TestNewZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := vendoclient.NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("API Request", map[string]interface{}{
		"method": "GET",
		"url":    "https://api.vendo.dev/v1/products",
	})

	output := buf.String()
	assert.Contains(t, output, `"level":"debug"`)
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"message":"API Request"`)

	buf.Reset()
	logger.Error("API Response", map[string]interface{}{"status_code": 500})
	assert.Contains(t, buf.String(), `"status_code":500`)
}
