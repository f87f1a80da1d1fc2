// Package colorconv implements the color-space conversion engine behind
// the color tool.
//
// A single entry point, Convert, accepts a color in hex ("#ff0000",
// "#f0a", bare "ff0000"), rgb() or hsl() notation, detects which one it
// was given, and returns the color in every representation at once:
// hex, numeric RGB and HSL triples, CSS-formatted strings, and WCAG
// luminance/contrast figures.
//
// # Rounding
//
// RGB to HSL conversion truncates degrees and percentages to integers
// rather than rounding. This is deliberate: it preserves the observable
// outputs of the reference implementation, and it makes hex round trips
// exact — converting a result's own hex output again yields identical
// hex, RGB and HSL values.
//
// # Errors
//
// All failures wrap ErrInvalidColorFormat: unrecognized notation, a
// hex string with the wrong digit count or non-hex digits, or an rgb()
// component outside [0,255]. Unusual but parseable inputs (channel
// values of exactly 0 or 255, achromatic grays) are not errors.
package colorconv
