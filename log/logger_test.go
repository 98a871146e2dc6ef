package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {

	t.Run("default", func(t *testing.T) {

		var buf bytes.Buffer
		SetDefault(New(&LoggerOptions{
			Output: &buf,
			Level:  Info,
		}))

		L().Info("this is a test")

		str := buf.String()
		str = str[strings.IndexByte(str, ' ')+1:]

		require.Equal(t, "[INFO]  this is a test\n", str)
	})

	t.Run("default with error level", func(t *testing.T) {

		var buf bytes.Buffer
		SetDefault(New(&LoggerOptions{
			Output: &buf,
			Level:  Error,
		}))

		L().Info("this is a test")

		require.Equal(t, "", buf.String())

		L().Error("this is a test")

		str := buf.String()
		str = str[strings.IndexByte(str, ' ')+1:]

		require.Equal(t, "[ERROR] this is a test\n", str)
	})

	t.Run("named from default", func(t *testing.T) {

		var buf bytes.Buffer
		SetDefault(New(&LoggerOptions{
			Name:   "default",
			Output: &buf,
			Level:  Info,
		}))

		L().Named("test").Info("this is a test")

		str := buf.String()
		str = str[strings.IndexByte(str, ' ')+1:]

		require.Equal(t, "[INFO]  default.test: this is a test\n", str)
	})

	t.Run("with level changes the threshold", func(t *testing.T) {

		var buf bytes.Buffer
		logger := New(&LoggerOptions{
			Name:   "test",
			Output: &buf,
			Level:  Error,
		})

		logger.Debug("suppressed")
		require.Equal(t, "", buf.String())

		logger.WithLevel(Debug).Debug("this is a test")

		str := buf.String()
		str = str[strings.IndexByte(str, ' ')+1:]

		require.Equal(t, "[DEBUG] test: this is a test\n", str)
	})
}

func TestLevelFromString(t *testing.T) {

	testCases := []struct {
		str   string
		level Level
	}{
		{"off", Off},
		{"fatal", Fatal},
		{"error", Error},
		{"warn", Warn},
		{"info", Info},
		{"debug", Debug},
		{"trace", Trace},
		{" INFO ", Info},
		{"bogus", NotSet},
	}

	for _, c := range testCases {
		require.Equalf(t, c.level, LevelFromString(c.str), "unexpected level for %q", c.str)
	}
}
