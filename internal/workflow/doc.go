// Package workflow holds the ordered document model of a generated CI
// workflow and the single formatter that turns it into text.
//
// A Document is a header, a fixed trigger block and an ordered list of jobs.
// Each job carries an ordered list of steps, and each step an ordered list
// of parameters. Nothing in the model is a Go map, so the rendered output is
// byte-stable for identical input.
package workflow
