// Package rasterfill scan-converts silhouette loops into grid cells. It
// is the front-to-back renderer's write funnel's only geometry producer:
// it never touches a raster directly, it calls back into whatever write
// function the caller supplies for every cell a loop covers, along with
// the interpolated depth at that cell's center. Open loops are stamped
// edge-only; closed loops are filled respecting hole loops.
package rasterfill
