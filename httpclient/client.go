package httpclient

import (
	"net"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/daex-io/sdk-go/logging"
	"github.com/go-kit/kit/log"
)

// ClientConfiguration is the reusable HTTP client configuration: one shared
// transport (connection pool plus TLS settings) and the fixed per-call
// timeouts.  A ClientConfiguration is immutable after New returns and is
// safe for concurrent use.
type ClientConfiguration struct {
	transport *http.Transport

	connectTimeout time.Duration
	writeTimeout   time.Duration
	readTimeout    time.Duration
	disableCookies bool

	logger log.Logger
}

// New constructs a ClientConfiguration from the given options, either of
// which may be nil.  Trust configuration failures are not fatal: they are
// logged and the transport keeps its default TLS behavior, so constructing
// a configuration never aborts host startup over optional TLS hardening.
func New(o *Options, logger log.Logger) *ClientConfiguration {
	logger = logging.Default(logger)

	dialer := &net.Dialer{
		Timeout:   o.connectTimeout(),
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          o.maxIdleConns(),
		MaxIdleConnsPerHost:   o.maxIdleConnsPerHost(),
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   o.connectTimeout(),
		ResponseHeaderTimeout: o.readTimeout(),
		ExpectContinueTimeout: time.Second,
	}

	if tlsConfig, err := newTLSConfig(o.trust()); err != nil {
		logging.Warn(logger).Log(
			logging.MessageKey(), "trust configuration failed, transport will use default TLS settings",
			logging.ErrorKey(), err,
			"trust", o.trust().String(),
		)
	} else {
		transport.TLSClientConfig = tlsConfig
	}

	return &ClientConfiguration{
		transport:      transport,
		connectTimeout: o.connectTimeout(),
		writeTimeout:   o.writeTimeout(),
		readTimeout:    o.readTimeout(),
		disableCookies: o.disableCookies(),
		logger:         logger,
	}
}

// NewClient derives a per-call client from this configuration.  The
// returned client reuses the shared connection pool and TLS settings but
// carries a brand-new, empty cookie jar, so cookie state is never shared
// between derived clients.
func (c *ClientConfiguration) NewClient() *http.Client {
	client := &http.Client{
		Transport: LoggingRoundTripper(c.logger)(c.transport),

		// the end-to-end budget for one call: send the request and read the response
		Timeout: c.connectTimeout + c.writeTimeout + c.readTimeout,
	}

	if !c.disableCookies {
		// cookiejar.New cannot fail with nil options
		jar, _ := cookiejar.New(nil)
		client.Jar = jar
	}

	return client
}

var shared struct {
	sync.Mutex
	once    sync.Once
	options *Options
	logger  log.Logger
	value   *ClientConfiguration
}

// SetDefaults establishes the options and logger used when Instance first
// constructs the process-wide configuration.  Calls made after the first
// Instance call have no effect.
func SetDefaults(o *Options, logger log.Logger) {
	shared.Lock()
	shared.options, shared.logger = o, logger
	shared.Unlock()
}

// Instance returns the process-wide ClientConfiguration, constructing it on
// first use.  Construction happens exactly once: concurrent first callers
// all observe the same fully-constructed instance.
func Instance() *ClientConfiguration {
	shared.once.Do(func() {
		shared.Lock()
		o, logger := shared.options, shared.logger
		shared.Unlock()

		shared.value = New(o, logger)
	})

	return shared.value
}
