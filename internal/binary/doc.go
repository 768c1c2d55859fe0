// Package binary models the executables shipped by the Rosetta suite.
//
// Suite binaries follow a fixed naming convention:
//
//	<name>[.<mode>].<os><compiler><release>
//
// for example rosetta_scripts.linuxgccrelease or
// rosetta_scripts.mpi.macosclangdebug. The trailing token is a single word
// built from exactly one value of each closed set, in this order:
//
//   - os: linux, macos
//   - compiler: gcc, clang
//   - release: release, debug
//
// The optional mode segment is one of static, mpi or default. A default mode
// is written without a segment, so "default" and "no mode" name the same
// build.
//
// # Usage
//
//	d, err := binary.Parse("/opt/rosetta/bin", "rosetta_scripts.mpi.linuxgccrelease")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Mode())     // mpi
//	fmt.Println(d.FullPath()) // /opt/rosetta/bin/rosetta_scripts.mpi.linuxgccrelease
//
// Parse and Filename are inverse operations: for every valid descriptor d,
// Parse(d.Dir(), d.Filename()) returns a descriptor Equal to d.
package binary
