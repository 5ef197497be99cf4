package testutil

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// MaxFuzzBytes caps fuzz inputs so busybox comparisons stay fast.
const MaxFuzzBytes = 2048

// ClampBytes truncates data to at most max bytes.
func ClampBytes(data []byte, max int) []byte {
	if len(data) > max {
		return data[:max]
	}
	return data
}

// RunAppletInDir runs an applet with dir as the working directory.
func RunAppletInDir(t *testing.T, run RunApplet, args []string, input string, dir string) (string, string, int) {
	t.Helper()
	chdir(t, dir)
	stdio, out, errBuf := CaptureStdio(input)
	code := run(stdio, args)
	return out.String(), errBuf.String(), code
}

// BusyboxPath returns the system busybox binary, if any.
func BusyboxPath() (string, bool) {
	path, err := exec.LookPath("busybox")
	return path, err == nil
}

// RunBusyboxInDir runs "busybox <applet> args..." in dir. The final result is
// false when busybox is not installed.
func RunBusyboxInDir(t *testing.T, applet string, args []string, input string, dir string) (string, string, int, bool) {
	t.Helper()
	busyboxPath, ok := BusyboxPath()
	if !ok {
		return "", "", 0, false
	}
	cmd := Command(busyboxPath, append([]string{applet}, args...)...)
	cmd.Dir = dir
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	exitCode := 0
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			t.Fatalf("busybox run %s: %v", applet, err)
		}
		exitCode = ee.ExitCode()
	}
	return outBuf.String(), errBuf.String(), exitCode, true
}

// FuzzCompare runs the applet and busybox on the same files and input and
// fails on any difference in stdout or exit code.
func FuzzCompare(t *testing.T, applet string, run RunApplet, args []string, input string, files map[string]string) {
	t.Helper()
	dir := TempDirWithFiles(t, files)
	ourOut, ourErr, ourCode := RunAppletInDir(t, run, args, input, dir)
	busyOut, busyErr, busyCode, ok := RunBusyboxInDir(t, applet, args, input, dir)
	if !ok {
		return
	}
	CompareBusyboxOutput(t, ourOut, ourErr, ourCode, busyOut, busyErr, busyCode)
}

// CompareBusyboxOutput compares exit code and stdout. Stderr wording differs
// between implementations, so only its presence is compared.
func CompareBusyboxOutput(t *testing.T, ourOut, ourErr string, ourCode int, busyOut, busyErr string, busyCode int) {
	t.Helper()
	if (ourCode == 0) != (busyCode == 0) {
		t.Fatalf("exit code mismatch: ours=%d busybox=%d", ourCode, busyCode)
	}
	if ourOut != busyOut {
		t.Fatalf("stdout mismatch:\nours:   %q\nbusybox:%q", ourOut, busyOut)
	}
	if (ourErr == "") != (busyErr == "") {
		t.Fatalf("stderr mismatch:\nours:   %q\nbusybox:%q", ourErr, busyErr)
	}
}
