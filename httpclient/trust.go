package httpclient

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"strings"
)

// TrustPolicy selects the certificate chain validation rule used by clients
// derived from a ClientConfiguration.  The zero value is TrustPlatform.
type TrustPolicy int

const (
	// TrustPlatform validates peer certificates against the platform's
	// default trust store.
	TrustPlatform TrustPolicy = iota

	// TrustAll accepts every certificate chain and every hostname with no
	// checks whatsoever.  It is insecure by design and exists only for
	// environments with no public CA chain, such as disposable test
	// endpoints presenting self-signed certificates.  It is never selected
	// implicitly.
	TrustAll
)

var errUnknownTrustPolicy = errors.New("unrecognized trust policy")

func (p TrustPolicy) String() string {
	switch p {
	case TrustAll:
		return "all"
	default:
		return "platform"
	}
}

// MarshalText implements encoding.TextMarshaler
func (p TrustPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  The empty string
// decodes to TrustPlatform.
func (p *TrustPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "platform":
		*p = TrustPlatform
	case "all":
		*p = TrustAll
	default:
		return fmt.Errorf("%w: %q", errUnknownTrustPolicy, string(text))
	}

	return nil
}

// PeerVerifier is a certificate chain check: given the raw DER certificates
// presented by a peer, it returns nil if the chain is acceptable.
type PeerVerifier func(rawCerts [][]byte) error

// Verifier returns the PeerVerifier implied by the policy.  TrustAll yields
// a verifier that accepts any chain, including none at all.  TrustPlatform
// yields a verifier that builds and validates the chain against roots, or
// against the platform trust store when roots is nil.
func (p TrustPolicy) Verifier(roots *x509.CertPool) PeerVerifier {
	if p == TrustAll {
		return func([][]byte) error {
			return nil
		}
	}

	return func(rawCerts [][]byte) error {
		if len(rawCerts) == 0 {
			return errors.New("no peer certificates presented")
		}

		leaf, err := x509.ParseCertificate(rawCerts[0])
		if err != nil {
			return err
		}

		verifyOptions := x509.VerifyOptions{
			Roots:         roots,
			Intermediates: x509.NewCertPool(),
		}

		for _, raw := range rawCerts[1:] {
			intermediate, err := x509.ParseCertificate(raw)
			if err != nil {
				return err
			}

			verifyOptions.Intermediates.AddCert(intermediate)
		}

		_, err = leaf.Verify(verifyOptions)
		return err
	}
}

// newTLSConfig builds the TLS configuration for a trust policy.  An error
// indicates an unexpected platform trust store, which callers are expected
// to recover from by falling back to the transport's default TLS behavior.
func newTLSConfig(policy TrustPolicy) (*tls.Config, error) {
	if policy == TrustAll {
		// disables both chain validation and hostname verification
		return &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true, // #nosec G402 -- explicit, documented opt-in
		}, nil
	}

	pool, err := x509.SystemCertPool()
	if err != nil {
		return nil, fmt.Errorf("unexpected platform trust store: %w", err)
	}

	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    pool,
	}, nil
}
