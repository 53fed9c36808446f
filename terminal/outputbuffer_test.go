package terminal

import (
	"bytes"
	"testing"
)

func TestOutputBufferWriteCodepointAndFlush(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	ob.WriteCodepoint('中')
	ob.WriteCodepoint('a')
	if err := ob.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if dest.String() != "中a" {
		t.Fatalf("dest = %q, want %q", dest.String(), "中a")
	}
}

func TestOutputBufferInvalidCodepointBecomesQuestionMark(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	ob.WriteCodepoint(0)
	ob.WriteCodepoint(0xD900)
	ob.Flush()
	if dest.String() != "??" {
		t.Fatalf("dest = %q, want %q", dest.String(), "??")
	}
}

func TestOutputBufferClearDiscardsUnflushedBytes(t *testing.T) {
	var dest bytes.Buffer
	ob := NewOutputBuffer(&dest)
	ob.WriteCodepoint('x')
	ob.Clear()
	ob.Flush()
	if dest.Len() != 0 {
		t.Fatalf("dest = %q after Clear, want empty", dest.String())
	}
}
