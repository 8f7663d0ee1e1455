package headless

import (
	"image"

	"vr-overlay/internal/vr"
)

func (r *Runtime) CreateOverlay(key, name string) (vr.OverlayHandle, vr.OverlayError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case !r.connected:
		return vr.InvalidOverlayHandle, vr.OverlayErrorRequestFailed
	case key == "":
		return vr.InvalidOverlayHandle, vr.OverlayErrorInvalidParameter
	case len(key) >= MaxKeyLength:
		return vr.InvalidOverlayHandle, vr.OverlayErrorKeyTooLong
	case len(name) >= MaxNameLength:
		return vr.InvalidOverlayHandle, vr.OverlayErrorNameTooLong
	case len(r.overlays) >= MaxOverlays:
		return vr.InvalidOverlayHandle, vr.OverlayErrorOverlayLimitExceeded
	}
	if _, dup := r.keys[key]; dup {
		return vr.InvalidOverlayHandle, vr.OverlayErrorKeyInUse
	}

	h := r.nextHandle
	r.nextHandle++
	r.overlays[h] = &overlayState{OverlayState: OverlayState{
		Key:    key,
		Name:   name,
		Alpha:  1,
		Width:  1,
		Bounds: vr.TextureBounds{UMin: 0, VMin: 0, UMax: 1, VMax: 1},
	}}
	r.keys[key] = h
	r.log.Debug("headless: overlay created", "key", key, "name", name, "handle", uint64(h))
	return h, vr.OverlayErrorNone
}

func (r *Runtime) DestroyOverlay(h vr.OverlayHandle) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	delete(r.keys, st.Key)
	delete(r.overlays, h)
	r.log.Debug("headless: overlay destroyed", "key", st.Key, "handle", uint64(h))
	return vr.OverlayErrorNone
}

func (r *Runtime) ShowOverlay(h vr.OverlayHandle) vr.OverlayError {
	return r.setVisible(h, true)
}

func (r *Runtime) HideOverlay(h vr.OverlayHandle) vr.OverlayError {
	return r.setVisible(h, false)
}

func (r *Runtime) setVisible(h vr.OverlayHandle, visible bool) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	if st.Visible == visible {
		return vr.OverlayErrorNone
	}
	st.Visible = visible
	ev := vr.EventOverlayHidden
	if visible {
		ev = vr.EventOverlayShown
	}
	st.events = append(st.events, vr.Event{Type: ev})
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayTextureBounds(h vr.OverlayHandle, bounds vr.TextureBounds) vr.OverlayError {
	r.mu.Lock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		r.mu.Unlock()
		return code
	}
	st.Bounds = bounds
	job := r.preview(st)
	r.mu.Unlock()

	r.writePreview(job)
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayAlpha(h vr.OverlayHandle, alpha float32) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	if alpha < 0 || alpha > 1 {
		return vr.OverlayErrorInvalidParameter
	}
	st.Alpha = alpha
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayWidthInMeters(h vr.OverlayHandle, width float32) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	if width <= 0 {
		return vr.OverlayErrorInvalidParameter
	}
	st.Width = width
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayMouseScale(h vr.OverlayHandle, scale vr.Vector2) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	st.MouseScale = scale
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayFromFile(h vr.OverlayHandle, path string) vr.OverlayError {
	r.mu.Lock()
	_, code := r.lookup(h)
	r.mu.Unlock()
	if code != vr.OverlayErrorNone {
		return code
	}

	// Decode outside the lock; the cache is safe for concurrent use.
	img, err := r.textures.Load(path)
	if err != nil {
		r.log.Debug("headless: texture rejected", "path", path, "error", err)
		return textureError(err)
	}

	r.mu.Lock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		r.mu.Unlock()
		return code
	}
	st.image = img
	st.TexturePath = path
	st.TextureSize = img.Bounds().Size()
	st.Native = vr.Texture{}
	job := r.preview(st)
	r.mu.Unlock()

	r.writePreview(job)
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayTexture(h vr.OverlayHandle, tex vr.Texture) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	if tex.Handle == 0 {
		return vr.OverlayErrorInvalidTexture
	}
	st.Native = tex
	st.image = nil
	st.TexturePath = ""
	st.TextureSize = image.Point{}
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayTransformTrackedDeviceRelative(h vr.OverlayHandle, device vr.TrackedDeviceIndex, m vr.Matrix34) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	if !device.Valid() {
		return vr.OverlayErrorInvalidTrackedDevice
	}
	st.Transform, st.HasTransform = m, true
	st.Relative, st.Device = true, device
	r.log.Debug("headless: transform", "key", st.Key, "device", uint32(device), "translation", m.Translation())
	return vr.OverlayErrorNone
}

func (r *Runtime) SetOverlayTransformAbsolute(h vr.OverlayHandle, origin vr.TrackingUniverse, m vr.Matrix34) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	st.Transform, st.HasTransform = m, true
	st.Relative, st.Universe = false, origin
	r.log.Debug("headless: transform", "key", st.Key, "universe", origin.String(), "translation", m.Translation())
	return vr.OverlayErrorNone
}

func (r *Runtime) PollNextOverlayEvent(h vr.OverlayHandle) (vr.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone || len(st.events) == 0 {
		return vr.Event{}, false
	}
	ev := st.events[0]
	st.events = st.events[1:]
	return ev, true
}
