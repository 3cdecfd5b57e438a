package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
)

// DrawImage draws img at (x, y) at its natural size, one pixel per
// user unit.
func (c *Context) DrawImage(img image.Image, x, y float64) error {
	if img == nil {
		return fmt.Errorf("svg: draw nil image: %w", ErrInvalidArgument)
	}
	b := img.Bounds()
	return c.DrawImageScaled(img, x, y, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws img stretched to the w x h box at (x, y).
func (c *Context) DrawImageScaled(img image.Image, x, y, w, h float64) error {
	if img == nil {
		return fmt.Errorf("svg: draw nil image: %w", ErrInvalidArgument)
	}
	if img.Bounds().Empty() || w == 0 || h == 0 {
		return nil
	}
	var href string
	if c.doc.opts.imageMode == ImageEmbedded {
		var err error
		if href, err = c.dataURI(img); err != nil {
			return err
		}
	}
	id, err := c.takeID()
	if err != nil {
		return err
	}
	if href == "" {
		href = c.doc.addExternalImage(img)
	}

	r := Rect{X: x, Y: y, W: w, H: h}.normalized()
	e := newElement("image").set("id", id).
		set("x", c.format(r.X)).set("y", c.format(r.Y)).
		set("width", c.format(r.W)).set("height", c.format(r.H)).
		set("preserveAspectRatio", "none").
		set("xlink:href", href)
	var st style
	if c.st.alpha < 1 {
		st.add("opacity", c.format(c.st.alpha))
	}
	c.appendCommonStyle(&st, false)
	c.finishElement(e, st.String())
	e.empty(&c.doc.body)
	return nil
}

// DrawImageRegion draws the src part of img stretched to the w x h box
// at (x, y).
func (c *Context) DrawImageRegion(img image.Image, src image.Rectangle, x, y, w, h float64) error {
	if img == nil {
		return fmt.Errorf("svg: draw nil image: %w", ErrInvalidArgument)
	}
	if src.Intersect(img.Bounds()).Empty() {
		return nil
	}
	return c.DrawImageScaled(cropImage(img, src), x, y, w, h)
}

// dataURI encodes img as a base64 data URI.
func (c *Context) dataURI(img image.Image) (string, error) {
	enc := c.doc.opts.encoder
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("svg: encode image: %w", err)
	}
	return "data:" + enc.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
