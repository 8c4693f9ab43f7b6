// Package httpserver runs the gateway's http.Server and reports its exit on a channel.
package httpserver

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/smart-parking/console/pkg/logger"
)

const (
	_defaultReadTimeout       = 15 * time.Second
	_defaultReadHeaderTimeout = 5 * time.Second
	_defaultWriteTimeout      = 15 * time.Second
	_defaultIdleTimeout       = 60 * time.Second
	_defaultAddr              = ":80"
	_defaultShutdownTimeout   = 3 * time.Second

	_filePerm   = 0o600
	_rsaKeyBits = 2048

	selfSignedCertName = "parking_gateway_selfsigned.crt"
	selfSignedKeyName  = "parking_gateway_selfsigned.key"
)

// ErrTLSCertKeyMismatch is reported when only one of cert/key is configured.
var ErrTLSCertKeyMismatch = errors.New("tls cert/key mismatch: both certFile and keyFile must be set when TLS is enabled")

// Server -.
type Server struct {
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
	useTLS          bool
	certFile        string
	keyFile         string
	listener        net.Listener
	log             logger.Interface
}

// New builds the server and starts serving in the background.
func New(handler http.Handler, opts ...Option) *Server {
	s := &Server{
		server: &http.Server{
			Handler:           handler,
			ReadTimeout:       _defaultReadTimeout,
			ReadHeaderTimeout: _defaultReadHeaderTimeout,
			WriteTimeout:      _defaultWriteTimeout,
			IdleTimeout:       _defaultIdleTimeout,
			Addr:              _defaultAddr,
		},
		notify:          make(chan error, 1),
		shutdownTimeout: _defaultShutdownTimeout,
		log:             logger.New("info"),
	}

	for _, opt := range opts {
		opt(s)
	}

	go func() {
		s.notify <- s.serve()

		close(s.notify)
	}()

	return s
}

func (s *Server) serve() error {
	if !s.useTLS {
		if s.listener != nil {
			return s.server.Serve(s.listener)
		}

		return s.server.ListenAndServe()
	}

	certFile, keyFile, err := s.tlsFiles()
	if err != nil {
		return err
	}

	if s.listener != nil {
		return s.server.ServeTLS(s.listener, certFile, keyFile)
	}

	return s.server.ListenAndServeTLS(certFile, keyFile)
}

// tlsFiles returns the configured pair, or a self-signed pair in the temp
// dir that is generated once and reused across restarts.
func (s *Server) tlsFiles() (certFile, keyFile string, err error) {
	if s.certFile != "" || s.keyFile != "" {
		if s.certFile == "" || s.keyFile == "" {
			return "", "", ErrTLSCertKeyMismatch
		}

		for _, f := range []string{s.certFile, s.keyFile} {
			if _, err := os.Stat(f); err != nil {
				return "", "", err
			}
		}

		return s.certFile, s.keyFile, nil
	}

	certFile = filepath.Join(os.TempDir(), selfSignedCertName)
	keyFile = filepath.Join(os.TempDir(), selfSignedKeyName)

	_, certErr := os.Stat(certFile)
	_, keyErr := os.Stat(keyFile)

	if certErr == nil && keyErr == nil {
		s.log.Info("httpserver - reusing self-signed certificate cert=%s key=%s", certFile, keyFile)

		return certFile, keyFile, nil
	}

	certPEM, keyPEM, err := generateSelfSignedCert()
	if err != nil {
		return "", "", err
	}

	if err := os.WriteFile(certFile, certPEM, _filePerm); err != nil {
		return "", "", err
	}

	if err := os.WriteFile(keyFile, keyPEM, _filePerm); err != nil {
		return "", "", err
	}

	s.log.Info("httpserver - generated self-signed certificate cert=%s key=%s", certFile, keyFile)

	return certFile, keyFile, nil
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown -.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func generateSelfSignedCert() (certPEM, keyPEM []byte, err error) {
	priv, err := rsa.GenerateKey(rand.Reader, _rsaKeyBits)
	if err != nil {
		return nil, nil, err
	}

	tmpl := x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: "localhost", Organization: []string{"smart-parking"}},
		NotBefore:             time.Now().Add(-time.Minute),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1")},
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &priv.PublicKey, priv)
	if err != nil {
		return nil, nil, err
	}

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return certPEM, keyPEM, nil
}
