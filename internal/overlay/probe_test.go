package overlay

import (
	"errors"
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
)

type fakeProcess struct {
	pid int
	exe string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return p.exe }

func stubProcesses(t *testing.T, fn func() ([]ps.Process, error)) {
	t.Helper()
	orig := listProcesses
	listProcesses = fn
	t.Cleanup(func() { listProcesses = orig })
}

func TestIsRuntimeRunning(t *testing.T) {
	tests := []struct {
		name  string
		procs []ps.Process
		err   error
		want  bool
	}{
		{"running on linux", []ps.Process{fakeProcess{10, "bash"}, fakeProcess{11, "vrcompositor"}}, nil, true},
		{"running on windows", []ps.Process{fakeProcess{12, "VRCompositor.exe"}}, nil, true},
		{"absent", []ps.Process{fakeProcess{10, "vrserver"}, nil}, nil, false},
		{"probe error swallowed", nil, errors.New("permission denied"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubProcesses(t, func() ([]ps.Process, error) { return tt.procs, tt.err })
			assert.Equal(t, tt.want, IsRuntimeRunning())
		})
	}
}

func TestIsProcessRunning_PanicSwallowed(t *testing.T) {
	stubProcesses(t, func() ([]ps.Process, error) { panic("boom") })
	assert.False(t, IsProcessRunning("anything"))
}
