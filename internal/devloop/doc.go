// Package devloop runs the edit, build and launch loop used while
// iterating on the keymode library and its example editor. A run is a
// fixed sequence of four stages:
//
//   - format: normalize the source tree in place
//   - build: compile the example entry point into an artifact
//   - gate: print a prompt and block until one line arrives on stdin
//   - launch: run the artifact with its stderr captured to a log file
//
// Stages execute strictly in order and the first non-zero stage result
// aborts the run; that stage's exit code becomes the process exit
// code. There are no retries and no parallelism, and the gate is the
// only point where the pipeline blocks on the user.
package devloop
