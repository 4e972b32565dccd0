package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pcdgen/pkg/log"
)

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err      error
		level    string
		format   string
		contains []string
		excluded []string
	}{
		"text": {
			level:    "info",
			format:   "text",
			contains: []string{"hello", "path=pcd.yaml"},
			excluded: []string{"hidden"},
		},
		"logfmt": {
			level:    "debug",
			format:   "logfmt",
			contains: []string{"msg=hello", "path=pcd.yaml", "msg=hidden"},
		},
		"json": {
			level:    "warning",
			format:   "JSON",
			excluded: []string{"hello", "hidden"},
		},
		"invalid level": {
			level:  "verbose",
			format: "text",
			err:    log.ErrInvalidLevel,
		},
		"invalid format": {
			level:  "info",
			format: "xml",
			err:    log.ErrInvalidFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			h, err := log.CreateHandlerWithStrings(buf, tc.level, tc.format)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)

			logger := slog.New(h)
			logger.Info("hello", slog.String("path", "pcd.yaml"))
			logger.Debug("hidden")

			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}

			for _, s := range tc.excluded {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
