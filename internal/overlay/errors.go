package overlay

import (
	"errors"
	"fmt"

	"vr-overlay/internal/vr"
)

// ErrNotInitialized is returned by operations that need a live overlay when
// Initialize has not succeeded or the controller was disposed.
var ErrNotInitialized = errors.New("overlay: not initialized")

// RuntimeInitError reports a failed connection to the runtime.
type RuntimeInitError struct {
	Code vr.InitError
}

func (e *RuntimeInitError) Error() string {
	return fmt.Sprintf("overlay: runtime init: %s", e.Code)
}

// OverlayCreateError reports that the runtime refused to create the overlay.
type OverlayCreateError struct {
	Key  string
	Code vr.OverlayError
}

func (e *OverlayCreateError) Error() string {
	return fmt.Sprintf("overlay: create %q: %s", e.Key, e.Code)
}

// TextureLoadError reports that the runtime rejected a texture. Path is empty
// for native texture handles.
type TextureLoadError struct {
	Path string
	Code vr.OverlayError
}

func (e *TextureLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("overlay: set texture: %s", e.Code)
	}
	return fmt.Sprintf("overlay: load texture %s: %s", e.Path, e.Code)
}
