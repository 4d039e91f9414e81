// Package render is the display boundary: it turns a distribution into a
// labelled numeric series and hands it to a Renderer.
//
// The core never reads anything back from a Renderer. The error a Renderer
// returns is only its own I/O failure (an unwritable file, a closed pipe).
//
// Two sinks ship with the package:
//
//	PlotRenderer: gonum.org/v1/plot line+scatter chart (png, svg, pdf, …)
//	TextRenderer: horizontal ASCII bar chart for terminals
//
// mocks.MockRenderer is a gomock double for tests.
package render
