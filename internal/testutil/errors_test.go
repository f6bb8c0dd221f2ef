package testutil

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestMockErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrMockRead", ErrMockRead, "mock read failure"},
		{"ErrMockWrite", ErrMockWrite, "mock write failure"},
		{"ErrMockRandom", ErrMockRandom, "mock entropy failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestZeroReader(t *testing.T) {
	buf := bytes.Repeat([]byte{0xaa}, 40)
	n, err := io.ReadFull(ZeroReader{}, buf)
	if err != nil || n != len(buf) {
		t.Fatalf("ReadFull = %d, %v", n, err)
	}
	if !bytes.Equal(buf, make([]byte, 40)) {
		t.Errorf("ZeroReader produced non-zero bytes: %x", buf)
	}
}

func TestFailingWriter(t *testing.T) {
	if _, err := (FailingWriter{}).Write([]byte("x")); !errors.Is(err, ErrMockWrite) {
		t.Errorf("Write error = %v, want ErrMockWrite", err)
	}
}
