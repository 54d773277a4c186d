// Package launch starts browser processes.
package launch

import (
	"fmt"
	"os/exec"
	"sync"
)

// Launcher starts a command without waiting for it.
type Launcher interface {
	Launch(name string, args []string) error
}

// Detached starts each command in its own session with no inherited stdio
// and releases it immediately, so the browser outlives this process.
type Detached struct{}

// Launch returns once the process has been spawned. Whether the browser
// then succeeds is not observable.
func (Detached) Launch(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detachAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("Failed to run %s %q: %w", name, args, err)
	}

	return cmd.Process.Release()
}

// Call is one recorded launch.
type Call struct {
	Name string
	Args []string
}

// Recorder is a Launcher that records calls instead of spawning anything.
// Err, when set, is returned from every Launch.
type Recorder struct {
	mu    sync.Mutex
	Calls []Call
	Err   error
}

// Launch records the call with a copy of args and returns r.Err.
func (r *Recorder) Launch(name string, args []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	return r.Err
}
