package colorconv

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat reports input that matches none of the
// recognized notations or carries an out-of-range component.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB holds 8-bit channel values in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds a color in HSL space after integer truncation.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// Result contains one color in every representation the converter
// produces, plus which notation the input was detected as.
type Result struct {
	InputColor  string `json:"input_color"`
	InputFormat string `json:"input_format"` // "hex", "rgb" or "hsl"
	Hex         string `json:"hex"`          // "#rrggbb", lowercase
	RGB         RGB    `json:"rgb"`
	HSL         HSL    `json:"hsl"`
	CSSRGB      string `json:"css_rgb"` // "rgb(r, g, b)"
	CSSHSL      string `json:"css_hsl"` // "hsl(h, s%, l%)"

	// Accessibility extras derived from linear RGB.
	Luminance     float64 `json:"luminance"`      // WCAG relative luminance, 0-1
	ContrastWhite float64 `json:"contrast_white"` // contrast ratio against #ffffff
	ContrastBlack float64 `json:"contrast_black"` // contrast ratio against #000000
}

var (
	rgbPattern = regexp.MustCompile(`(?i)^rgb\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	hslPattern = regexp.MustCompile(`(?i)^hsl\s*\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)
)

// Convert detects the notation of the input color string, normalizes it
// to RGB and emits every output representation.
//
// Detection order: a leading '#' or a bare hex string parses as hex
// (3-digit shorthand expands by doubling each nibble), an "rgb" prefix
// parses as rgb(<int>,<int>,<int>), an "hsl" prefix parses as
// hsl(<int>,<int>%,<int>%). Anything else fails with
// ErrInvalidColorFormat, as do out-of-range RGB components and
// malformed hex digits.
func Convert(input string) (*Result, error) {
	color := strings.TrimSpace(input)
	if color == "" {
		return nil, fmt.Errorf("%w: empty color value", ErrInvalidColorFormat)
	}

	var (
		rgb    RGB
		format string
		err    error
	)
	lower := strings.ToLower(color)
	switch {
	case strings.HasPrefix(color, "#"):
		rgb, err = parseHex(color)
		format = "hex"
	case strings.HasPrefix(lower, "rgb"):
		rgb, err = parseRGB(color)
		format = "rgb"
	case strings.HasPrefix(lower, "hsl"):
		rgb, err = parseHSL(color)
		format = "hsl"
	default:
		rgb, err = parseHex(color)
		format = "hex"
	}
	if err != nil {
		return nil, err
	}

	hsl := rgbToHSL(rgb)
	lum := relativeLuminance(rgb)

	return &Result{
		InputColor:    color,
		InputFormat:   format,
		Hex:           fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B),
		RGB:           rgb,
		HSL:           hsl,
		CSSRGB:        fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B),
		CSSHSL:        fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L),
		Luminance:     round4(lum),
		ContrastWhite: round2(1.05 / (lum + 0.05)),
		ContrastBlack: round2((lum + 0.05) / 0.05),
	}, nil
}

// parseHex accepts "#rrggbb", "#rgb" and the same forms without the
// leading '#'.
func parseHex(color string) (RGB, error) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == 3 {
		var expanded strings.Builder
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: hex color needs 3 or 6 digits, got %q", ErrInvalidColorFormat, color)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: invalid hex digits in %q", ErrInvalidColorFormat, color)
	}
	return RGB{
		R: int(v >> 16),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

func parseRGB(color string) (RGB, error) {
	m := rgbPattern.FindStringSubmatch(color)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q is not a valid rgb() color", ErrInvalidColorFormat, color)
	}
	vals := make([]int, 3)
	for i, part := range m[1:] {
		v, err := strconv.Atoi(part)
		if err != nil || v > 255 {
			return RGB{}, fmt.Errorf("%w: rgb component %s out of range [0,255]", ErrInvalidColorFormat, part)
		}
		vals[i] = v
	}
	return RGB{R: vals[0], G: vals[1], B: vals[2]}, nil
}

func parseHSL(color string) (RGB, error) {
	m := hslPattern.FindStringSubmatch(color)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q is not a valid hsl() color", ErrInvalidColorFormat, color)
	}
	h, err1 := strconv.Atoi(m[1])
	s, err2 := strconv.Atoi(m[2])
	l, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return RGB{}, fmt.Errorf("%w: %q has a non-numeric hsl component", ErrInvalidColorFormat, color)
	}
	return hslToRGB(h, float64(s)/100, float64(l)/100), nil
}

// rgbToHSL converts to HSL using the standard colorimetric formula.
// Degree and percent values are truncated, not rounded; this matches
// the reference outputs and keeps conversions deterministic.
func rgbToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		// Achromatic: hue is undefined, reported as 0.
		return HSL{H: 0, S: 0, L: int(l * 100)}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: int(h * 360), S: int(s * 100), L: int(l * 100)}
}

// hslToRGB converts to RGB with s and l already normalized to [0,1].
func hslToRGB(h int, s, l float64) RGB {
	if s == 0 {
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hf := float64(h) / 360

	return RGB{
		R: channel(hueToChannel(p, q, hf+1.0/3)),
		G: channel(hueToChannel(p, q, hf)),
		B: channel(hueToChannel(p, q, hf-1.0/3)),
	}
}

// hueToChannel is the standard hue-to-channel helper; t is wrapped once
// into [0,1) before the piecewise evaluation.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// channel scales a [0,1] value to an 8-bit channel, truncating and
// clamping so unvalidated hsl() inputs still produce well-formed hex.
func channel(v float64) int {
	n := int(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// relativeLuminance computes WCAG relative luminance from
// gamma-expanded (linear) RGB.
func relativeLuminance(c RGB) float64 {
	lr, lg, lb := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
