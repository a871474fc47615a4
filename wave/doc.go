// Package wave converts rows of brightness values into horizontal wavy
// line segments for pen plotters.
//
// Each visible pixel contributes one point. Its darkness sets the local
// amplitude of a sine wave and how fast the wave's phase advances, so
// dark regions render as tall, tightly packed oscillations and light
// regions as nearly flat lines. Pixels at or above the white threshold
// break the line: every unbroken run of two or more visible pixels
// becomes one [Segment].
//
// Rows are independent. [Build] converts them in parallel and assembles
// the segments in row order into a [Document].
package wave
