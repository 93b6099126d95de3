/*
Package httpclient assembles the SDK's shared HTTP client configuration.

The underlying net/http transport performs best when a single instance is
reused for all calls: each transport holds its own connection pool, and
reusing connections reduces latency and saves memory.  This package builds
that transport exactly once per ClientConfiguration, and derives per-call
clients that share the pool but never share cookie state.

The process-wide configuration is available through Instance, which
constructs it lazily and exactly once.  Hosts that want explicit lifecycle
control construct their own ClientConfiguration with New and pass it to
consumers by reference.
*/
package httpclient
