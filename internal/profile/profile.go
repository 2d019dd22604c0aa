// Package profile writes pprof CPU and heap profiles for a run.
package profile

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/juju/errors"
)

// Start begins CPU profiling into path. An empty path disables profiling and
// returns a no-op stop function.
func Start(path string) (stop func() error, err error) {
	if path == "" {
		return func() error { return nil }, nil
	}

	cpuProfile, err := os.Create(path)
	if err != nil {
		return nil, errors.Annotatef(err, "could not create cpu profile %s", path)
	}

	if err := pprof.StartCPUProfile(cpuProfile); err != nil {
		cpuProfile.Close()
		return nil, errors.Trace(err)
	}

	return func() error {
		pprof.StopCPUProfile()
		return errors.Trace(cpuProfile.Close())
	}, nil
}

// WriteHeap writes a heap profile to path after a GC. An empty path is a no-op.
func WriteHeap(path string) error {
	if path == "" {
		return nil
	}

	memProfile, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "could not create memory profile %s", path)
	}
	defer memProfile.Close()

	runtime.GC()
	return errors.Trace(pprof.WriteHeapProfile(memProfile))
}
