package httpclient

import (
	"time"
)

const (
	// DefaultConnectTimeout is the time allowed for establishing a connection,
	// including the TLS handshake.
	DefaultConnectTimeout = 60 * time.Second

	// DefaultWriteTimeout is the time budgeted for sending a request.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultReadTimeout is the time allowed for the server to begin its response.
	DefaultReadTimeout = 90 * time.Second

	// DefaultMaxIdleConns is the connection pool size when Options does not specify one.
	DefaultMaxIdleConns = 100

	// DefaultMaxIdleConnsPerHost is the per-host pool size when Options does not specify one.
	DefaultMaxIdleConnsPerHost = 10
)

// Options configures a ClientConfiguration.  A nil *Options is valid and
// supplies all defaults, which match the SDK's fixed production values.
// Options is read exactly once, by New; mutating it afterward has no effect.
//
// TLS applies only to https URLs.  Requests to plain http URLs go out in
// cleartext regardless of the trust policy.
type Options struct {
	// ConnectTimeout bounds connection establishment, including the TLS
	// handshake.  Defaults to DefaultConnectTimeout.
	ConnectTimeout time.Duration `json:"connectTimeout"`

	// WriteTimeout is the request-send budget.  net/http exposes no
	// symmetric write deadline, so this value contributes to the overall
	// per-call deadline on derived clients.  Defaults to DefaultWriteTimeout.
	WriteTimeout time.Duration `json:"writeTimeout"`

	// ReadTimeout bounds the wait for the server's response headers.
	// Defaults to DefaultReadTimeout.
	ReadTimeout time.Duration `json:"readTimeout"`

	// Trust selects the certificate trust policy.  The zero value is
	// TrustPlatform.  TrustAll disables all certificate and hostname
	// verification and must never be used outside test environments.
	Trust TrustPolicy `json:"trust"`

	// DisableCookies suppresses the per-client cookie jar normally
	// installed by NewClient.
	DisableCookies bool `json:"disableCookies"`

	// MaxIdleConns is the size of the shared connection pool.
	MaxIdleConns int `json:"maxIdleConns"`

	// MaxIdleConnsPerHost is the per-host idle connection limit.
	MaxIdleConnsPerHost int `json:"maxIdleConnsPerHost"`
}

func (o *Options) connectTimeout() time.Duration {
	if o != nil && o.ConnectTimeout > 0 {
		return o.ConnectTimeout
	}

	return DefaultConnectTimeout
}

func (o *Options) writeTimeout() time.Duration {
	if o != nil && o.WriteTimeout > 0 {
		return o.WriteTimeout
	}

	return DefaultWriteTimeout
}

func (o *Options) readTimeout() time.Duration {
	if o != nil && o.ReadTimeout > 0 {
		return o.ReadTimeout
	}

	return DefaultReadTimeout
}

func (o *Options) trust() TrustPolicy {
	if o != nil {
		return o.Trust
	}

	return TrustPlatform
}

func (o *Options) disableCookies() bool {
	if o != nil {
		return o.DisableCookies
	}

	return false
}

func (o *Options) maxIdleConns() int {
	if o != nil && o.MaxIdleConns > 0 {
		return o.MaxIdleConns
	}

	return DefaultMaxIdleConns
}

func (o *Options) maxIdleConnsPerHost() int {
	if o != nil && o.MaxIdleConnsPerHost > 0 {
		return o.MaxIdleConnsPerHost
	}

	return DefaultMaxIdleConnsPerHost
}
