// SPDX-License-Identifier: NONE
package types

import (
	"context"
	"errors"
	"testing"
)

func TestMonitorChannels(t *testing.T) {
	errTest := errors.New("test failure")

	tests := []struct {
		name       string
		operations int
		dones      int
		errs       int
		cancel     bool
		wantErr    bool
	}{
		{name: "invalid count", operations: 0, wantErr: true},
		{name: "all done", operations: 3, dones: 3},
		{name: "failures", operations: 3, dones: 1, errs: 2, wantErr: true},
		{name: "canceled", operations: 2, cancel: true, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			done, errChan := make(chan bool, tt.operations), make(chan error, tt.operations)
			for index := 0; index < tt.dones; index++ {
				done <- true
			}
			for index := 0; index < tt.errs; index++ {
				errChan <- errTest
			}

			err := MonitorChannels(ctx, tt.operations, done, errChan, "operation")
			if (err != nil) != tt.wantErr {
				t.Errorf("MonitorChannels() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.errs > 0 && !errors.Is(err, errTest) {
				t.Errorf("MonitorChannels() error = %v, want wrapped %v", err, errTest)
			}
		})
	}
}

func TestSafeCounter(t *testing.T) {
	var c SafeCounter

	done := make(chan bool)
	for index := 0; index < 10; index++ {
		go func() {
			c.Inc()
			done <- true
		}()
	}
	for index := 0; index < 10; index++ {
		<-done
	}

	if got := c.Value(); got != 10 {
		t.Errorf("SafeCounter.Value() = %v, want 10", got)
	}
}
