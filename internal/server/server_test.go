package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/hello-backend/internal/config"
	myHTTP "github.com/MKhiriev/hello-backend/internal/handler/http"
	"github.com/MKhiriev/hello-backend/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fakeAddr string

func (a fakeAddr) Network() string { return "tcp" }
func (a fakeAddr) String() string  { return string(a) }

// fakeListener hands out no connections; Accept fails with acceptErr.
type fakeListener struct {
	addr      net.Addr
	acceptErr error
}

func (l *fakeListener) Accept() (net.Conn, error) { return nil, l.acceptErr }
func (l *fakeListener) Close() error              { return nil }
func (l *fakeListener) Addr() net.Addr            { return l.addr }

func testConfig(addr string) config.Server {
	return config.Server{
		HTTPAddress:     addr,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, addr string, buf io.Writer) *Server {
	t.Helper()
	log := &logger.Logger{Logger: zerolog.New(buf)}
	return NewServer(myHTTP.NewHandler(log), testConfig(addr), log)
}

type runResult struct {
	outcome Outcome
	err     error
}

// startServer runs srv in the background and waits until it is listening.
func startServer(t *testing.T, ctx context.Context, srv *Server) <-chan runResult {
	t.Helper()

	done := make(chan runResult, 1)
	go func() {
		outcome, err := srv.Run(ctx)
		done <- runResult{outcome, err}
	}()

	select {
	case <-srv.Listening():
	case res := <-done:
		t.Fatalf("server stopped before listening: %v", res.err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	return done
}

func waitResult(t *testing.T, done <-chan runResult) runResult {
	t.Helper()
	select {
	case res := <-done:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
		return runResult{}
	}
}

// ---- Run: happy path ----

func TestRun_ServesHelloAndCompletesOnCancel(t *testing.T) {
	buf := &lockedBuffer{}
	srv := newTestServer(t, "127.0.0.1:0", buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := startServer(t, ctx, srv)

	require.True(t, srv.Addr().IsValid())
	assert.True(t, srv.Addr().Addr().IsLoopback())
	assert.NotZero(t, srv.Addr().Port())

	resp, err := http.Get("http://" + srv.Addr().String() + "/api/hello")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello, world!", string(body))

	cancel()
	res := waitResult(t, done)

	require.NoError(t, res.err)
	assert.Equal(t, Completed, res.outcome)
	assert.Contains(t, buf.String(), "backend listening on "+srv.Addr().String())
}

func TestRun_UnknownPathIsNotFound(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0", io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := startServer(t, ctx, srv)

	resp, err := http.Get("http://" + srv.Addr().String() + "/api/unknown")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotContains(t, string(body), "Hello, world!")

	cancel()
	res := waitResult(t, done)
	assert.NoError(t, res.err)
}

// ---- Run: failures ----

func TestRun_PortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	srv := newTestServer(t, occupied.Addr().String(), io.Discard)

	outcome, err := srv.Run(context.Background())

	require.ErrorIs(t, err, ErrBindTCPListener)
	assert.Equal(t, outcomeNone, outcome)

	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr), "cause must be the socket error")
	assert.Equal(t, ExitBindTCPListener, ExitCode(err))

	select {
	case <-srv.Listening():
		t.Fatal("server must not report listening after a bind failure")
	default:
	}
}

func TestRun_ListenerAddressFailure(t *testing.T) {
	tests := []struct {
		name string
		addr net.Addr
	}{
		{name: "no address", addr: nil},
		{name: "unparsable address", addr: fakeAddr("not-an-address")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, "127.0.0.1:0", io.Discard)
			srv.listen = func(_, _ string) (net.Listener, error) {
				return &fakeListener{addr: tt.addr}, nil
			}

			outcome, err := srv.Run(context.Background())

			require.ErrorIs(t, err, ErrGetListenerAddress)
			assert.Equal(t, outcomeNone, outcome)
			assert.Equal(t, ExitGetListenerAddress, ExitCode(err))
		})
	}
}

func TestRun_ServeLoopFailure(t *testing.T) {
	acceptErr := errors.New("accept failed")

	srv := newTestServer(t, "127.0.0.1:0", io.Discard)
	srv.listen = func(_, _ string) (net.Listener, error) {
		return &fakeListener{addr: fakeAddr("127.0.0.1:8000"), acceptErr: acceptErr}, nil
	}

	outcome, err := srv.Run(context.Background())

	require.ErrorIs(t, err, ErrServeApp)
	assert.ErrorIs(t, err, acceptErr)
	assert.Equal(t, outcomeNone, outcome)
	assert.Equal(t, ExitServeApp, ExitCode(err))
	assert.Equal(t, "127.0.0.1:8000", srv.Addr().String())
}

func TestRun_UsesConfiguredAddress(t *testing.T) {
	var gotNetwork, gotAddress string
	srv := newTestServer(t, "127.0.0.1:8000", io.Discard)
	srv.listen = func(network, address string) (net.Listener, error) {
		gotNetwork, gotAddress = network, address
		return nil, errors.New("stop here")
	}

	_, err := srv.Run(context.Background())

	require.ErrorIs(t, err, ErrBindTCPListener)
	assert.Equal(t, "tcp", gotNetwork)
	assert.Equal(t, "127.0.0.1:8000", gotAddress)
}
