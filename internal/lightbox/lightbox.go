// Package lightbox implements the gallery image viewer as an owned state
// object with pure transitions. The hosting page applies the resulting state
// to its rendering surface; nothing here touches a DOM.
package lightbox

import (
	"fmt"
	"log"
)

// Image is one addressable picture in the viewer.
type Image struct {
	Src string
	Alt string
}

// State is the viewer's visible state. Index is always in [0, image count)
// while the collection is non-empty.
type State struct {
	Index int
	Open  bool
}

// ClickTarget identifies what was clicked inside an open viewer.
type ClickTarget int

const (
	TargetBackdrop ClickTarget = iota
	TargetContentWrapper
	TargetImage
	TargetNav
)

// Keyboard keys the viewer reacts to.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Viewer owns the lightbox state over a fixed image collection. The
// collection is built once by concatenating the page's image groups (gallery
// plus feature set) so a single index space backs both navigation sources.
type Viewer struct {
	images []Image
	state  State
	logger *log.Logger
}

// NewViewer builds a viewer over the concatenated image groups.
func NewViewer(logger *log.Logger, groups ...[]Image) *Viewer {
	var images []Image
	for _, g := range groups {
		images = append(images, g...)
	}
	return &Viewer{images: images, logger: logger}
}

// State returns the current viewer state.
func (v *Viewer) State() State { return v.state }

// Len returns the number of addressable images.
func (v *Viewer) Len() int { return len(v.images) }

// Current returns the image under the index, if any.
func (v *Viewer) Current() (Image, bool) {
	if len(v.images) == 0 {
		return Image{}, false
	}
	return v.images[v.state.Index], true
}

// Counter is the "n / total" label shown under the image.
func (v *Viewer) Counter() string {
	return fmt.Sprintf("%d / %d", v.state.Index+1, len(v.images))
}

// ScrollLocked reports whether the host must suppress background scroll.
func (v *Viewer) ScrollLocked() bool { return v.state.Open }

// Open shows the image at index. Out-of-range indexes and an empty
// collection are no-ops that leave prior state unchanged.
func (v *Viewer) Open(index int) {
	if len(v.images) == 0 {
		v.diag("no images available for lightbox")
		return
	}
	if index < 0 || index >= len(v.images) {
		v.diag("invalid lightbox index: %d", index)
		return
	}
	v.state = State{Index: index, Open: true}
}

// Close hides the viewer and releases the scroll lock.
func (v *Viewer) Close() {
	v.state.Open = false
}

// Next advances circularly. Ignored while closed.
func (v *Viewer) Next() {
	if !v.state.Open {
		return
	}
	v.state.Index = (v.state.Index + 1) % len(v.images)
}

// Prev steps back circularly. Ignored while closed.
func (v *Viewer) Prev() {
	if !v.state.Open {
		return
	}
	v.state.Index = (v.state.Index - 1 + len(v.images)) % len(v.images)
}

// HandleKey applies keyboard navigation. Keys are ignored while closed.
func (v *Viewer) HandleKey(key string) {
	if !v.state.Open {
		return
	}
	switch key {
	case KeyEscape:
		v.Close()
	case KeyArrowRight:
		v.Next()
	case KeyArrowLeft:
		v.Prev()
	}
}

// HandleClick applies the backdrop rules: clicks on the backdrop or its
// immediate content wrapper close the viewer; clicks on the image or the
// navigation controls do not propagate.
func (v *Viewer) HandleClick(target ClickTarget) {
	if !v.state.Open {
		return
	}
	if target == TargetBackdrop || target == TargetContentWrapper {
		v.Close()
	}
}

func (v *Viewer) diag(format string, args ...interface{}) {
	if v.logger != nil {
		v.logger.Printf(format, args...)
	}
}
