// Package grid provides resizable two-dimensional containers with O(1)
// indexed access and independent growth along each axis.
//
// Grid is the zero-based engine: columns (fixed x, varying y) and rows can be
// appended, inserted, removed and trimmed separately, and rectangular patches
// can be merged in with Place. Plane layers a movable origin over a Grid so
// callers may address cells with negative coordinates; inserting or placing
// before the origin shifts storage while logical coordinates stay put.
//
// Containers are not safe for concurrent use. Callers that share one across
// goroutines must serialize every mutating call; concurrent readers are fine
// while no mutation is in flight.
package grid
