package httpclient

import (
	"net/http"
	"time"

	"github.com/daex-io/sdk-go/logging"
	"github.com/go-kit/kit/log"
)

// loggingRoundTripper decorates a RoundTripper with transaction logging
type loggingRoundTripper struct {
	logger log.Logger
	next   http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	start := time.Now()
	response, err := l.next.RoundTrip(request)
	duration := time.Since(start)

	if err != nil {
		logging.Error(l.logger).Log(
			logging.MessageKey(), "HTTP transaction failed",
			"method", request.Method,
			"url", request.URL.String(),
			"duration", duration,
			logging.ErrorKey(), err,
		)

		return nil, err
	}

	logging.Debug(l.logger).Log(
		logging.MessageKey(), "HTTP transaction",
		"method", request.Method,
		"url", request.URL.String(),
		"status", response.StatusCode,
		"duration", duration,
	)

	return response, nil
}

// LoggingRoundTripper returns a network-level decorator that logs every
// outbound HTTP transaction: successes at debug level, failures at error
// level.  Every client derived from a ClientConfiguration carries this
// decorator.
func LoggingRoundTripper(logger log.Logger) func(http.RoundTripper) http.RoundTripper {
	logger = logging.Default(logger)

	return func(next http.RoundTripper) http.RoundTripper {
		if next == nil {
			next = http.DefaultTransport
		}

		return &loggingRoundTripper{
			logger: logger,
			next:   next,
		}
	}
}
