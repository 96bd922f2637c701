// Package convert provides approximate conversion between Munsell notation
// and sRGB for display purposes.
//
// The mapping goes through CIE L*C*h: the Munsell value is turned into L*
// with the ASTM D1535 value-to-luminance polynomial, chroma scales linearly
// to C*ab, and the hue degree maps linearly onto the Lab hue angle. This is
// a preview-quality approximation, not a renotation lookup; colorimetric
// work needs real renotation data.
package convert
