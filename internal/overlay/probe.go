package overlay

import (
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// CompositorProcess is the executable name of the compositor.
const CompositorProcess = "vrcompositor"

// listProcesses is replaced in tests.
var listProcesses = ps.Processes

// IsRuntimeRunning reports whether the compositor process is running. It is
// a best-effort check: any failure while listing processes reads as false.
func IsRuntimeRunning() bool {
	return IsProcessRunning(CompositorProcess)
}

// IsProcessRunning reports whether a process with the given executable name
// exists. Matching ignores case and a trailing ".exe".
func IsProcessRunning(name string) (running bool) {
	defer func() {
		if recover() != nil {
			running = false
		}
	}()

	procs, err := listProcesses()
	if err != nil {
		return false
	}
	want := normalizeExecutable(name)
	for _, p := range procs {
		if p != nil && normalizeExecutable(p.Executable()) == want {
			return true
		}
	}
	return false
}

func normalizeExecutable(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}
