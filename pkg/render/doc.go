// Package render turns workflow graphs into DOT text and raster/vector
// artifacts via Graphviz.
//
// Two modes are supported:
//
//   - Unpositioned graphs render with the dot engine, which computes its
//     own layered drawing - useful for quick structural previews.
//   - Graphs whose nodes carry positions (the layout engine's output)
//     render with the neato engine and pinned coordinates, so the picture
//     matches what the editor canvas shows.
//
// The DOT generation is pure; only [RenderSVG] and [RenderPNG] invoke
// Graphviz.
package render
