package httpclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/http"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidJSON      = crerr.New("response returned invalid JSON data")
	ErrValidationFailed = crerr.New("JSON validation result failed")
	ErrInvalidDocument  = crerr.New("response returned unparseable HTML")
	ErrBodyTooLarge     = crerr.New("response body exceeds limit")
)

const (
	errTimeoutCategory = "timeout"
	errTLSCategory     = "tls"
	errConnectCategory = "connection"
	errStatusCategory  = "status"
	errDecodeCategory  = "decode"
	errUnknownCategory = "unknown"
)

// StatusError is returned when auto-raise rejects a response status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status=%d (%s) body=%s", e.Code, e.Cause(), e.Body)
}

// Cause groups the status the same way the failure log does.
func (e *StatusError) Cause() string {
	switch {
	case e.Code >= http.StatusInternalServerError:
		return "remote server error"
	case e.Code >= http.StatusBadRequest:
		return "local client error"
	default:
		return "unknown"
	}
}

func category(err error) string {
	var statusErr *StatusError
	var netErr net.Error
	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidCert x509.CertificateInvalidError
	var recordErr tls.RecordHeaderError

	switch {
	case crerr.As(err, &statusErr):
		return errStatusCategory
	case crerr.Is(err, ErrInvalidJSON), crerr.Is(err, ErrValidationFailed), crerr.Is(err, ErrInvalidDocument):
		return errDecodeCategory
	case crerr.As(err, &certErr), crerr.As(err, &unknownAuthority), crerr.As(err, &hostnameErr),
		crerr.As(err, &invalidCert), crerr.As(err, &recordErr):
		return errTLSCategory
	case crerr.Is(err, context.DeadlineExceeded):
		return errTimeoutCategory
	case crerr.As(err, &netErr) && netErr.Timeout():
		return errTimeoutCategory
	case crerr.As(err, &netErr):
		return errConnectCategory
	default:
		return errUnknownCategory
	}
}
