package catbase

import (
	"errors"
	"fmt"
	"net/url"
	"os"
)

// ErrorKind classifies a failed collection operation.
type ErrorKind int

const (
	// KindBadURL means the request URL could not be built. Construction
	// bug; should not occur with valid configuration.
	KindBadURL ErrorKind = iota
	// KindTimeout means no response arrived within the client deadline.
	KindTimeout
	// KindNetwork means the connection could not be established.
	KindNetwork
	// KindBadStatus means the store answered with a non-2xx status.
	KindBadStatus
	// KindBadBody means the response body did not match the expected shape.
	KindBadBody
)

// Error is a failed fetch or persist, classified for display.
type Error struct {
	Kind   ErrorKind
	Status int    // set for KindBadStatus
	Detail string // set for KindBadBody
	Op     string // "fetch" or "persist"
	err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadURL:
		return fmt.Sprintf("%s: bad request url: %v", e.Op, e.err)
	case KindTimeout:
		return fmt.Sprintf("%s: request timed out", e.Op)
	case KindNetwork:
		return fmt.Sprintf("%s: network error: %v", e.Op, e.err)
	case KindBadStatus:
		return fmt.Sprintf("%s: store returned status %d", e.Op, e.Status)
	case KindBadBody:
		return fmt.Sprintf("%s: unexpected response body: %s", e.Op, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Message returns the human-readable text shown on the error panel.
func (e *Error) Message() string {
	switch e.Kind {
	case KindBadURL:
		return "The request URL is invalid. Check base_url and collection in the config."
	case KindTimeout:
		return "The cat store took too long to answer."
	case KindNetwork:
		return "Could not reach the cat store. Are you online?"
	case KindBadStatus:
		return fmt.Sprintf("The cat store answered with HTTP %d.", e.Status)
	case KindBadBody:
		return "The cat store sent something unexpected: " + e.Detail
	}
	return e.Error()
}

func badURL(op string, err error) *Error {
	return &Error{Kind: KindBadURL, Op: op, err: err}
}

func badStatus(op string, status int) *Error {
	return &Error{Kind: KindBadStatus, Op: op, Status: status}
}

func badBody(op, detail string, err error) *Error {
	return &Error{Kind: KindBadBody, Op: op, Detail: detail, err: err}
}

// transportError classifies a failed round trip into timeout vs network.
func transportError(op string, err error) *Error {
	if isTimeout(err) {
		return &Error{Kind: KindTimeout, Op: op, err: err}
	}
	return &Error{Kind: KindNetwork, Op: op, err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return true
	}
	var terr interface{ Timeout() bool }
	return errors.As(err, &terr) && terr.Timeout()
}
