package httperror

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE(t *testing.T) {
	var (
		assert = assert.New(t)
		err    = &E{
			Kind:    ServiceUnavailable,
			Code:    503,
			Message: "fubar",
			Header:  http.Header{"Foo": []string{"Bar"}},
			Body:    []byte(`error!`),
		}
	)

	assert.Equal(503, err.StatusCode())
	assert.Equal(http.Header{"Foo": []string{"Bar"}}, err.Headers())
	assert.Equal("fubar", err.Error())

	actualJSON, marshalErr := err.MarshalJSON()
	assert.NoError(marshalErr)
	assert.JSONEq(`{"code": 503, "message": "fubar"}`, string(actualJSON))
}

func TestKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NotFound", NotFound.String())
	assert.Equal("ServiceResponse", ServiceResponse.String())
	assert.Equal("ServiceResponse", Kind(982734).String())
}

func TestFromStatus(t *testing.T) {
	testData := []struct {
		code            int
		message         string
		expectedKind    Kind
		expectedMessage string
	}{
		{400, "bad request", BadRequest, "bad request"},
		{403, "forbidden", Forbidden, "forbidden"},
		{404, "not found", NotFound, "not found"},
		{409, "conflict", Conflict, "conflict"},
		{413, "too large", RequestTooLarge, "too large"},
		{415, "unsupported", UnsupportedMediaType, "unsupported"},
		{429, "slow down", TooManyRequests, "slow down"},
		{500, "boom", InternalServerError, "boom"},
		{502, "bad gateway", InternalServerError, "bad gateway"},
		{503, "unavailable", ServiceUnavailable, "unavailable"},
		{504, "gateway timeout", InternalServerError, "gateway timeout"},
		{418, "teapot", ServiceResponse, "teapot"},
		{999, "x", ServiceResponse, "x"},
		{404, "", NotFound, "Not Found"},
	}

	for _, record := range testData {
		t.Logf("%d %s", record.code, record.message)

		e := FromStatus(record.code, record.message)
		assert.Equal(t, record.expectedKind, e.Kind)
		assert.Equal(t, record.code, e.Code)
		assert.Equal(t, record.expectedMessage, e.Message)
	}
}

func TestFromStatusTotal(t *testing.T) {
	assert := assert.New(t)

	for code := 400; code <= 599; code++ {
		e := FromStatus(code, fmt.Sprintf("status %d", code))
		assert.NotNil(e)
		assert.Equal(code, e.Code)
		assert.Contains(kindNames, e.Kind)
	}
}

func TestFromResponse(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		response = &http.Response{
			StatusCode: 404,
			Header:     http.Header{"X-Request-Id": []string{"12345"}},
			Body:       io.NopCloser(strings.NewReader(`{"reason": "no such thing"}`)),
		}
	)

	e := FromResponse(response, "not found")
	require.NotNil(e)
	assert.Equal(NotFound, e.Kind)
	assert.Equal(404, e.Code)
	assert.Equal("not found", e.Error())
	assert.Equal("12345", e.Headers().Get("X-Request-Id"))
	assert.JSONEq(`{"reason": "no such thing"}`, string(e.Body))
}

func TestFromResponseNilBody(t *testing.T) {
	assert := assert.New(t)

	e := FromResponse(&http.Response{StatusCode: 503}, "")
	assert.Equal(ServiceUnavailable, e.Kind)
	assert.Equal("Service Unavailable", e.Error())
	assert.Empty(e.Body)
}

func TestIsKind(t *testing.T) {
	assert := assert.New(t)

	err := FromStatus(409, "conflict")
	assert.True(IsKind(err, Conflict))
	assert.False(IsKind(err, NotFound))

	wrapped := fmt.Errorf("call failed: %w", err)
	assert.True(IsKind(wrapped, Conflict))

	assert.False(IsKind(errors.New("not an E"), Conflict))
	assert.False(IsKind(nil, Conflict))
}
