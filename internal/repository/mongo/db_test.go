package mongo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConnectionManager_InvalidURI(t *testing.T) {
	tests := []struct {
		name     string
		managed  bool
		strategy string
	}{
		{name: "direct", managed: false, strategy: StrategyDirect},
		{name: "managed", managed: true, strategy: StrategyManaged},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			manager := NewConnectionManager(ConnectionOptions{
				URI:      "not-a-mongodb-uri",
				Database: "fitvideo",
				Managed:  tc.managed,
				Timeout:  time.Second,
			})

			_, err := manager.Connect(context.Background())
			var connErr *ConnectionError
			if !errors.As(err, &connErr) {
				t.Fatalf("expected *ConnectionError, got %v", err)
			}
			if connErr.Strategy != tc.strategy {
				t.Errorf("Strategy = %q, want %q", connErr.Strategy, tc.strategy)
			}
			if errors.Unwrap(err) == nil {
				t.Error("expected wrapped cause")
			}
		})
	}
}

func TestConnectionManager_CloseWithoutConnect(t *testing.T) {
	manager := NewConnectionManager(ConnectionOptions{URI: "mongodb://localhost:27017", Database: "fitvideo"})
	if err := manager.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestConnectionOptions_Defaults(t *testing.T) {
	opts := ConnectionOptions{}
	if opts.timeout() != defaultTimeout {
		t.Errorf("timeout() = %v, want %v", opts.timeout(), defaultTimeout)
	}
	if opts.strategy() != StrategyDirect {
		t.Errorf("strategy() = %q, want %q", opts.strategy(), StrategyDirect)
	}
}
