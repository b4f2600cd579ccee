// Package dag is a small directed acyclic graph keyed by string IDs. The
// generator uses it to track which workflow jobs a job needs, and the
// workflow document uses it to reject dependency cycles before rendering.
package dag
