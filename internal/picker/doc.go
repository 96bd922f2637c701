// Package picker reads colors out of images and names them in Munsell
// notation: single-pixel samples and dominant-color summaries, backed by a
// concurrency-safe decoded-image cache keyed by file path.
package picker
