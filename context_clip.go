package svg

// SetClip replaces the clip with s, taken in the current user space.
// A nil shape removes the clip.
func (c *Context) SetClip(s Shape) {
	c.st.clipRef.invalidate()
	if s == nil {
		c.st.clip = nil
		return
	}
	c.st.clip = c.devicePath(s)
}

// Clip intersects the clip with s. Without a clip it behaves like
// SetClip. Disjoint regions leave an empty clip, under which nothing is
// visible; it is never treated as "no clip".
func (c *Context) Clip(s Shape) {
	if s == nil || c.st.clip == nil {
		c.SetClip(s)
		return
	}
	c.st.clipRef.invalidate()
	c.st.clip = intersectRegions(c.st.clip, c.devicePath(s))
}

// ClipRect intersects the clip with a rectangle.
func (c *Context) ClipRect(x, y, w, h float64) {
	c.Clip(Rect{X: x, Y: y, W: w, H: h})
}

// ResetClip removes the clip.
func (c *Context) ResetClip() {
	c.SetClip(nil)
}

// GetClip returns the clip in the current user space, or nil when there
// is no clip. A non-invertible transform also yields nil.
func (c *Context) GetClip() *Path {
	if c.st.clip == nil {
		return nil
	}
	inv, ok := c.st.transform.Invert()
	if !ok {
		return nil
	}
	return c.st.clip.Transform(inv)
}

// HasClip reports whether a clip is set.
func (c *Context) HasClip() bool {
	return c.st.clip != nil
}

func (c *Context) devicePath(s Shape) *Path {
	return ToPath(c.resolveShape(s)).Transform(c.st.transform)
}

// clipAttr returns the clip-path value for the next element, interning
// the clip in the current user space on first use after a change.
func (c *Context) clipAttr() string {
	if c.st.clip == nil {
		return ""
	}
	if !c.st.clipRef.valid {
		user := c.GetClip()
		if user == nil {
			// Singular transform; the element is invisible anyway.
			return ""
		}
		c.st.clipRef = clipRef{id: c.doc.clips.Register(user), valid: true}
	}
	return "url(#" + c.st.clipRef.id + ")"
}
