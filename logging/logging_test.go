package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	assert := assert.New(t)

	logger := DefaultLogger()
	require.NotNil(t, logger)
	assert.NoError(logger.Log(MessageKey(), "should go nowhere"))
}

func TestDefault(t *testing.T) {
	var (
		assert = assert.New(t)
		custom = log.NewNopLogger()
	)

	assert.Equal(DefaultLogger(), Default(nil))
	assert.Equal(custom, Default(custom))
}

func TestNew(t *testing.T) {
	testData := []struct {
		options *Options
	}{
		{nil},
		{new(Options)},
		{&Options{JSON: true}},
		{&Options{Level: "DEBUG"}},
		{&Options{JSON: true, Level: "INFO"}},
	}

	for _, record := range testData {
		t.Logf("%#v", record.options)
		logger := New(record.options)
		assert.NotNil(t, logger)
		assert.NoError(t, logger.Log(MessageKey(), "test message"))
	}
}

func TestNewFilter(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		testData = []struct {
			level        string
			debugVisible bool
			infoVisible  bool
			warnVisible  bool
		}{
			{"DEBUG", true, true, true},
			{"debug", true, true, true},
			{"INFO", false, true, true},
			{"WARN", false, false, true},
			{"ERROR", false, false, false},
			{"", false, false, false},
			{"unrecognized", false, false, false},
		}
	)

	for _, record := range testData {
		t.Log(record.level)

		var (
			output  bytes.Buffer
			decoded = make(map[string]interface{})
			logger  = NewFilter(log.NewJSONLogger(&output), &Options{Level: record.level})
		)

		verify := func(expected bool, emit func(log.Logger, ...interface{}) log.Logger) {
			output.Reset()
			assert.NoError(emit(logger).Log(MessageKey(), "expected"))
			if expected {
				require.NotZero(output.Len())
				assert.NoError(json.Unmarshal(output.Bytes(), &decoded))
				assert.Equal("expected", decoded["msg"])
			} else {
				assert.Zero(output.Len())
			}
		}

		verify(record.debugVisible, Debug)
		verify(record.infoVisible, Info)
		verify(record.warnVisible, Warn)

		// errors are always visible
		verify(true, Error)
	}
}

func TestError(t *testing.T) {
	var (
		assert  = assert.New(t)
		output  bytes.Buffer
		logger  = Error(log.NewJSONLogger(&output))
		decoded = make(map[string]interface{})
	)

	assert.NoError(logger.Log(MessageKey(), "an error", ErrorKey(), errors.New("the cause")))
	assert.NoError(json.Unmarshal(output.Bytes(), &decoded))
	assert.Equal("error", decoded["level"])
	assert.Equal("an error", decoded["msg"])
	assert.Equal("the cause", decoded["error"])
	assert.Contains(decoded, "caller")
}

func TestNewTestLogger(t *testing.T) {
	testData := []*Options{
		nil,
		new(Options),
		{Level: "INFO"},
	}

	for _, o := range testData {
		logger := NewTestLogger(o, t)
		assert.NotNil(t, logger)
		assert.NoError(t, logger.Log(MessageKey(), "delegated to the test log"))
	}
}
