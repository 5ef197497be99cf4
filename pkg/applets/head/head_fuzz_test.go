package head_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/rcarmo/go-head/pkg/applets/head"
	"github.com/rcarmo/go-head/pkg/testutil"
)

func FuzzHead(f *testing.F) {
	f.Add([]byte("sample input"), uint8(1))
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("a\nb\nc\n"), uint8(2))
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, data []byte, lines uint8) {
		data = testutil.ClampBytes(data, testutil.MaxFuzzBytes)
		input := string(data)
		args := []string{"-n", strconv.Itoa(int(lines % 10)), "input.txt"}
		files := map[string]string{
			"input.txt": input,
		}
		testutil.FuzzCompare(t, "head", head.Run, args, input, files)
	})
}

// FuzzHeadLinePrefix checks that line mode always emits a byte-exact prefix
// of its input.
func FuzzHeadLinePrefix(f *testing.F) {
	f.Add([]byte("one\ntwo\r\nthree"), uint8(2))
	f.Add([]byte("\xff\xfe\n\n"), uint8(9))
	f.Fuzz(func(t *testing.T, data []byte, lines uint8) {
		input := string(testutil.ClampBytes(data, testutil.MaxFuzzBytes))
		stdio, out, _ := testutil.CaptureStdio(input)
		code := head.Run(stdio, []string{"-n", strconv.Itoa(int(lines % 10))})
		if code != 0 {
			t.Fatalf("exit code = %d", code)
		}
		got := out.String()
		if !strings.HasPrefix(input, got) {
			t.Fatalf("output %q is not a prefix of %q", got, input)
		}
		want := int(lines % 10)
		if n := strings.Count(got, "\n"); n > want {
			t.Fatalf("got %d newlines, want at most %d", n, want)
		}
		if got != input && strings.Count(got, "\n") != want {
			t.Fatalf("stopped early: %q of %q", got, input)
		}
	})
}
