/*
Package handle synthesizes a handle, a tubular strip of quadrilateral faces
connecting two polygonal faces of a mesh through space.

Given two face boundaries (ordered vertex loops in 3D), an anchor vertex on
each, and a small parameter set, Make produces the positions of the new
interior vertices and the index quads stitching them into a closed tube whose
first and last rings reuse the two input boundaries. The handle can twist along
its length, and a per-end weight controls how far it bulges outward before
curving toward the other face.

The pipeline is a pure function of its inputs: normalize both boundaries onto
a common slot count, decompose each into a polar-coordinate profile in its
best-fit plane, interpolate center, frame, radii and angles across the span,
and stitch consecutive rings into quads. Independent calls are safe to run
concurrently.

Merging the result into a host mesh (allocating global vertex indices,
deleting the two consumed faces, selection state) is the caller's job; the
Handle result carries slot tables mapping its end rings back onto the input
polygons to make that graft straightforward.
*/
package handle
