package ovl

// OverlayFrame is the page chrome element: it fills its area with the
// frame background, paints a title and subtitle header, and hosts at
// most one content child inset below the header.
type OverlayFrame struct {
	BaseElement
	title    string
	subtitle string
	content  Element
}

// NewOverlayFrame creates a frame with the given header text.
func NewOverlayFrame(title, subtitle string) *OverlayFrame {
	return &OverlayFrame{title: title, subtitle: subtitle}
}

// SetContent installs the frame's content child, replacing any previous
// one. The frame owns the child.
func (f *OverlayFrame) SetContent(content Element) {
	if f.content != nil {
		f.content.SetParent(nil)
	}
	f.content = content
	if content != nil {
		content.SetParent(f)
	}
	f.Invalidate()
}

// Content returns the content child, or nil.
func (f *OverlayFrame) Content() Element {
	return f.content
}

// Draw paints the background over the frame's full area, then the
// header text, then the content child.
func (f *OverlayFrame) Draw(r *Renderer) {
	r.DrawRect(f.X(), f.Y(), f.Width(), f.Height(), ColorFrameBackground)

	r.DrawString(f.title, false, f.X()+frameTitleX, f.Y()+frameTitleY, frameTitleSize, ColorText)
	r.DrawString(f.subtitle, false, f.X()+frameTitleX, f.Y()+frameSubtitleY, frameSubtitleSize, ColorDescription)

	if f.content != nil {
		FrameElement(r, f.content)
	}
}

// Layout assigns the frame its full rectangle and gives the content
// child an inset sub-rectangle reserving header space at the top.
func (f *OverlayFrame) Layout(parentX, parentY, parentWidth, parentHeight int) {
	f.BaseElement.Layout(parentX, parentY, parentWidth, parentHeight)
	if f.content != nil {
		f.content.Layout(
			parentX+frameContentInsetX,
			parentY+frameContentInsetTop,
			parentWidth-2*frameContentInsetX,
			parentHeight-frameContentInsetTop-frameContentInsetBottom,
		)
	}
}

// RequestFocus forwards navigation to the content child.
func (f *OverlayFrame) RequestFocus(oldFocus Element, dir FocusDirection) Element {
	if f.content == nil {
		return nil
	}
	return f.content.RequestFocus(oldFocus, dir)
}
