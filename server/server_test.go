package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsinsight/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
	}
}

func TestServer_RunAndShutdown(t *testing.T) {
	// grab a free port for the listener
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return addr, 30 * time.Second },
	}
	st := &mocks.StoreMock{
		CountArticlesFunc: func(ctx context.Context) (int, error) { return 0, nil },
	}
	srv := New(cfg, &mocks.SearcherMock{}, &mocks.IngesterMock{}, st, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for the server to come up and answer ping
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_AppInfoHeaders(t *testing.T) {
	st := &mocks.StoreMock{
		CountArticlesFunc: func(ctx context.Context) (int, error) { return 5, nil },
	}
	srv := New(testConfig(), &mocks.SearcherMock{}, &mocks.IngesterMock{}, st, "v1.2.3", false)

	resp := testRequest(t, srv, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "newsinsight", resp.Header().Get("App-Name"))
	assert.Equal(t, "v1.2.3", resp.Header().Get("App-Version"))
	assert.Contains(t, resp.Body.String(), `"v1.2.3"`)
}
