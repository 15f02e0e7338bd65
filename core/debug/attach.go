package debug

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// Fixed endpoint of the remote debug sink used by the live-reload supervisor.
// These are intentionally not configurable.
const (
	Host = "0.0.0.0"
	Port = 9000
)

// Attacher opens a stream to a remote debug sink.
type Attacher interface {
	// Attach connects to the sink and returns the stream to write debug
	// output to. The caller owns the returned stream.
	Attach(host string, port int) (io.WriteCloser, error)
}

// TCPAttacher attaches over a plain TCP connection.
type TCPAttacher struct {
	// Timeout bounds the connection setup. Zero means 5 seconds.
	Timeout time.Duration
}

// Attach dials the debug sink.
func (a TCPAttacher) Attach(host string, port int) (io.WriteCloser, error) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to attach debug stream at %s: %w", addr, err)
	}

	return conn, nil
}

// NopAttacher is a test double that discards everything written to it.
type NopAttacher struct{}

// Attach returns a stream backed by io.Discard.
func (NopAttacher) Attach(string, int) (io.WriteCloser, error) {
	return nopStream{}, nil
}

type nopStream struct{}

func (nopStream) Write(p []byte) (int, error) { return len(p), nil }
func (nopStream) Close() error                { return nil }
