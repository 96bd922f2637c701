// Package swatch renders Munsell colors as PNG images: single swatches,
// value-scale strips, and hue-page charts. Images are returned base64-encoded
// alongside their dimensions, ready for embedding in tool responses.
//
// Rendered colors come from the approximate sRGB mapping in the convert
// package, clamped into gamut; high-chroma patches on a hue page are
// therefore previews, not print-accurate chips.
package swatch
