// Package graph rasterizes real functions onto a character grid for
// terminal display.
//
// A Grapher owns a viewport (width and height in character cells), a
// horizontal domain, a vertical range, and an ordered list of
// (function, glyph) pairs. Render walks every pixel column, maps it into
// the domain, samples each function, and maps the result back to a pixel
// row, filling the vertical span between consecutive samples so steep
// curves stay visually continuous. Registration order is draw order;
// later functions overwrite earlier ones on collision, and both draw
// over the axis lines.
//
// Setters perform no validation. A render with a non-positive viewport
// or a zero-width domain or range fails fast with an error instead of
// dividing by zero in the coordinate maps; everything else degrades
// silently (out-of-range samples become gaps in the curve).
package graph
