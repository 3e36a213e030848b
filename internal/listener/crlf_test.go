package listener

import (
	"bytes"
	"io"
	"testing"

	"github.com/pixil98/go-testutil"
)

type rwPair struct {
	io.Reader
	io.Writer
}

func TestCRLFReadWriter(t *testing.T) {
	tests := map[string]struct {
		in     string
		write  string
		expIn  string
		expOut string
	}{
		"telnet line endings": {
			in:     "take all\r\nwait\r\n",
			write:  "Forest:\n> ",
			expIn:  "take all\nwait\n",
			expOut: "Forest:\r\n> ",
		},
		"bare carriage returns": {
			in:    "look\rquit\r",
			expIn: "look\nquit\n",
		},
		"unix line endings": {
			in:    "status\n",
			expIn: "status\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			rw := newCRLFReadWriter(rwPair{Reader: bytes.NewBufferString(tt.in), Writer: &out})

			in, err := io.ReadAll(rw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "read", string(in), tt.expIn)

			n, err := rw.Write([]byte(tt.write))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "written", n, len(tt.write))
			testutil.AssertEqual(t, "out", out.String(), tt.expOut)
		})
	}
}
