// Package core runs one invocation of here from start to finish.
//
// The pipeline has three stages, run in order:
//
//  1. Resolve: the request (working directory, joined segment or program
//     search) becomes a raw path. Failures here are fatal and nothing is
//     printed to stdout.
//  2. Transform: the raw path is normalized and reshaped according to the
//     flags. Problems at this stage are warnings; the path is left as it
//     was and the pipeline continues.
//  3. Dispatch: the result goes to the clipboard, the terminal and, if
//     asked, the shell as a typed directory change. Each sink can fail on
//     its own without stopping the others.
//
// Build assembles the production collaborators from a loaded
// configuration; tests hand Run fakes instead.
package core
