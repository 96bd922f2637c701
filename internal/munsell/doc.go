// Package munsell implements the Munsell color notation: a hue/value/chroma
// triple with a distinct neutral (gray) variant that has no hue or chroma.
//
// # Notation
//
// A chromatic color is written "<step><family> <value>/<chroma>", for example
// "9R 5.5/14": hue step 9 in the R family, value (lightness) 5.5, chroma
// (saturation) 14. A neutral color is written "N <value>", for example
// "N 4.5". The ten hue families R, YR, Y, GY, G, BG, B, PB, P, RP form a
// circle; the hue step positions the color within its family on (0, 10].
//
// # Construction
//
// Colors are only created through Parse (combined string form) or New
// (discrete field form). Both validate, round every numeric field to one
// decimal place, and normalize:
//
//   - a hue step of 0 rolls back to step 10 on the preceding family
//     ("0YR" becomes "10R", "0R" becomes "10RP")
//   - value 0 or 10 forces the neutral variant (black and white have no hue)
//   - chroma 0 forces the neutral variant (zero saturation is gray)
//
// A failed construction returns a *ParseError identifying which field was
// rejected and why; no partially valid Color is ever produced.
//
// # Error Tiers
//
// Construction errors are ordinary recoverable errors. Degree and Undegree,
// by contrast, are conversion utilities for pre-validated input: malformed or
// out-of-range arguments there are usage-contract violations and panic.
package munsell
