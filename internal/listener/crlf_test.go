package listener

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

type bufConn struct {
	io.Reader
	out bytes.Buffer
}

func (c *bufConn) Write(p []byte) (int, error) { return c.out.Write(p) }

func TestCRLFReadWriter_Read(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"telnet line endings": {input: "left\r\nundo\r\n", exp: "left\nundo\n"},
		"pty line endings":    {input: "left\rundo\r", exp: "left\nundo\n"},
		"unix line endings":   {input: "left\n", exp: "left\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := newCRLFReadWriter(&bufConn{Reader: strings.NewReader(tt.input)})
			got, err := io.ReadAll(rw)
			testutil.AssertEqual(t, "err", err, nil)
			testutil.AssertEqual(t, "read", string(got), tt.exp)
		})
	}
}

// chunkReader returns one chunk per Read call.
type chunkReader struct {
	chunks []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func TestCRLFReadWriter_SplitLineEnding(t *testing.T) {
	rw := newCRLFReadWriter(&bufConn{Reader: &chunkReader{chunks: []string{"left\r", "\nundo\r", "\n"}}})

	got, err := io.ReadAll(rw)
	testutil.AssertEqual(t, "err", err, nil)
	testutil.AssertEqual(t, "read", string(got), "left\nundo\n")
}

func TestCRLFReadWriter_Write(t *testing.T) {
	conn := &bufConn{Reader: strings.NewReader("")}
	rw := newCRLFReadWriter(conn)

	n, err := rw.Write([]byte("#####\n#@$.#\n"))
	testutil.AssertEqual(t, "err", err, nil)
	testutil.AssertEqual(t, "n", n, 12)
	testutil.AssertEqual(t, "written", conn.out.String(), "#####\r\n#@$.#\r\n")
}
