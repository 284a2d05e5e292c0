package cli

import (
	"errors"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-feed/external/cricbuzz"
	"github.com/riskibarqy/cricket-feed/internal/config"
)

const (
	ExitOK          = 0
	ExitInternal    = 1
	ExitInvalidArgs = 2
	ExitNoData      = 3
	ExitIntegrity   = 4
)

// Output keeps upstream numbers as written and sorts keys so repeated runs diff cleanly.
var output = sonic.Config{UseNumber: true, SortMapKeys: true}.Froze()

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	ExitCode int
	Reason   string
}

func mapError(err error) mappedError {
	switch {
	case err == nil:
		return mappedError{ExitCode: ExitOK}
	case errors.Is(err, cricbuzz.ErrInvalidInput), errors.Is(err, errUsage), errors.Is(err, config.ErrInvalid):
		return mappedError{ExitCode: ExitInvalidArgs, Reason: "invalid_input"}
	case errors.Is(err, cricbuzz.ErrNoData):
		return mappedError{ExitCode: ExitNoData, Reason: "no_data"}
	case errors.Is(err, cricbuzz.ErrLookup):
		return mappedError{ExitCode: ExitIntegrity, Reason: "unknown_id"}
	case errors.Is(err, cricbuzz.ErrMalformedPayload):
		return mappedError{ExitCode: ExitIntegrity, Reason: "malformed_payload"}
	default:
		return mappedError{ExitCode: ExitInternal, Reason: "internal"}
	}
}

func writeJSON(w io.Writer, payload any) error {
	encoded, err := output.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')
	_, err = w.Write(encoded)
	return err
}

// writeRawJSON re-indents an upstream body without touching its values.
func writeRawJSON(w io.Writer, raw []byte) error {
	var doc any
	if err := output.Unmarshal(raw, &doc); err != nil {
		return err
	}
	return writeJSON(w, doc)
}

// WriteError prints the error envelope and returns the exit code for it.
func WriteError(w io.Writer, err error) int {
	mapped := mapError(err)
	if mapped.ExitCode == ExitOK {
		return ExitOK
	}
	_ = writeJSON(w, errorEnvelope{Error: errorBody{
		Code:    mapped.ExitCode,
		Reason:  mapped.Reason,
		Message: err.Error(),
	}})
	return mapped.ExitCode
}
