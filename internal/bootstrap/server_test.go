package bootstrap

import (
	"context"
	"net"
	"net/http"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAuditLogger struct {
	mu      sync.Mutex
	entries []AuditLog
}

func (r *recordingAuditLogger) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestServe_GracefulShutdownWritesAuditEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	port := freePort(t)
	server := newHTTPServer(r, ServerConfig{Port: port, ReadTimeout: time.Second, WriteTimeout: time.Second})
	quit := make(chan os.Signal, 1)
	audit := &recordingAuditLogger{}

	done := make(chan error, 1)
	go func() { done <- serve(server, quit, audit) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + port + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	quit <- syscall.SIGTERM

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	assert.Equal(t, "terminated", audit.entries[0].Meta["signal"])
}

func TestServe_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, _ := net.SplitHostPort(l.Addr().String())

	server := newHTTPServer(gin.New(), ServerConfig{Port: port})
	server.Addr = "127.0.0.1:" + port

	err = serve(server, make(chan os.Signal), &recordingAuditLogger{})
	assert.Error(t, err)
}
