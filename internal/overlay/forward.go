package overlay

import "vr-overlay/internal/vr"

// The calls below forward to the runtime without keeping local state. Their
// status codes are ignored unless the method returns an error.

// SetShow shows or hides the overlay.
func (c *Controller) SetShow(visible bool) {
	if c.overlay == nil {
		return
	}
	if visible {
		c.overlay.ShowOverlay(c.handle)
	} else {
		c.overlay.HideOverlay(c.handle)
	}
}

// SetTextureBounds sets the texture sub-rectangle shown on the overlay.
func (c *Controller) SetTextureBounds(b vr.TextureBounds) {
	if c.overlay == nil {
		return
	}
	c.overlay.SetOverlayTextureBounds(c.handle, b)
}

// SetAlpha sets the overlay opacity in [0, 1].
func (c *Controller) SetAlpha(alpha float32) {
	if c.overlay == nil {
		return
	}
	c.overlay.SetOverlayAlpha(c.handle, alpha)
}

// SetWidth sets the overlay width in meters. Height follows the texture
// aspect ratio.
func (c *Controller) SetWidth(meters float32) {
	if c.overlay == nil {
		return
	}
	c.overlay.SetOverlayWidthInMeters(c.handle, meters)
}

// SetMouseScale sets the mouse coordinate range of the overlay surface.
func (c *Controller) SetMouseScale(x, y float32) {
	if c.overlay == nil {
		return
	}
	c.overlay.SetOverlayMouseScale(c.handle, vr.Vector2{X: x, Y: y})
}

// SetTextureFromFile asks the runtime to load the overlay image from path.
func (c *Controller) SetTextureFromFile(path string) error {
	if c.overlay == nil {
		return ErrNotInitialized
	}
	if code := c.overlay.SetOverlayFromFile(c.handle, path); code != vr.OverlayErrorNone {
		return &TextureLoadError{Path: path, Code: code}
	}
	return nil
}

// SetTexture submits a native texture owned by the caller, typed by the
// format chosen at Initialize.
func (c *Controller) SetTexture(handle uintptr) error {
	if c.overlay == nil {
		return ErrNotInitialized
	}
	tex := vr.Texture{Handle: handle, Type: c.format.textureType(), ColorSpace: vr.ColorSpaceAuto}
	if code := c.overlay.SetOverlayTexture(c.handle, tex); code != vr.OverlayErrorNone {
		return &TextureLoadError{Code: code}
	}
	return nil
}

// ResetSeatedPosition recenters the seated universe on the current HMD pose.
func (c *Controller) ResetSeatedPosition() {
	if c.system == nil {
		return
	}
	c.system.ResetSeatedZeroPose()
}
