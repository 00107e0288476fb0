// Conslist builds a persistent list from its arguments, a range or stdin,
// transforms it and prints it.
//
//	conslist -range 1:5 -update -1=0   # (1 2 3 4 0)
//	conslist -range 1:4 -fold 'x - acc' # 2
package main

import (
	"os"

	"src.elv.sh/cons/pkg/buildinfo"
	"src.elv.sh/cons/pkg/conslist"
	"src.elv.sh/cons/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, conslist.Program{})))
}
