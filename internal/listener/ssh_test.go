package listener

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
	"golang.org/x/crypto/ssh"
)

func TestServeChannelRequests(t *testing.T) {
	tests := map[string]struct {
		types    []string
		expReady bool
	}{
		"shell":         {types: []string{"pty-req", "env", "shell"}, expReady: true},
		"repeat shell":  {types: []string{"shell", "shell"}, expReady: true},
		"never a shell": {types: []string{"pty-req", "exec"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := make(chan *ssh.Request, len(tt.types))
			for _, typ := range tt.types {
				in <- &ssh.Request{Type: typ}
			}
			close(in)

			ready := make(chan struct{})
			serveChannelRequests(in, ready)

			closed := false
			select {
			case <-ready:
				closed = true
			case <-time.After(10 * time.Millisecond):
			}
			testutil.AssertEqual(t, "ready", closed, tt.expReady)
		})
	}
}
