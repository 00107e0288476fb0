// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.elv.sh/cons/pkg/buildinfo.VersionSuffix=value" to "go
// build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.elv.sh/cons/pkg/prog"
)

// Version identifies the version of conslist.
const Version = "v0.1.0"

// VersionSuffix is appended to Version to build the full version string.
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram. It runs when -version is given.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fullVersion := Version + VersionSuffix
	if f.JSON {
		bs, err := json.Marshal(struct {
			Version   string `json:"version"`
			GoVersion string `json:"goversion"`
		}{fullVersion, runtime.Version()})
		if err != nil {
			return err
		}
		fmt.Fprintln(fds[1], string(bs))
	} else {
		fmt.Fprintln(fds[1], fullVersion)
	}
	return nil
}
