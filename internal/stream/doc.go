// Package stream opens the input and output of a run.
//
// The reserved path "-" maps to the process's standard input or output.
// Any other path is opened on an afero filesystem. Files backed by a real
// descriptor are additionally protected with advisory locks: the input holds
// a shared lock and the output an exclusive one, so a file that is being
// written elsewhere cannot be read, and a single file cannot serve as both
// input and output of the same run.
package stream
