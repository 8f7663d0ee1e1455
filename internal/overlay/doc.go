// Package overlay places one flat textured quad in tracked VR space through
// an external compositor runtime.
//
// A Controller owns a single overlay handle. Pose setters mutate local state
// and, with UpdateImmediate, recompute and resubmit the 3×4 transform. The
// caller drives ProcessEvent once per frame and releases the overlay with
// Close (or Dispose) at the owning call site:
//
//	c, err := overlay.Open(rt, "HelloOverlay", "hello.overlay", overlay.OpenGL)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
// A Controller is not safe for concurrent use.
package overlay
