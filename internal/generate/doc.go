// Package generate turns a resolved project description into a workflow
// document. Platform selection and step assembly live here, as does the
// set of jobs the release job waits for.
//
// Everything here is a pure function of its Input. Identical input yields a
// document that renders to identical bytes.
package generate
