// Package video implements the school-video autoplay behavior as an owned
// state object. The hosting page feeds it visibility, fullscreen, metadata
// and playback events and applies the resulting play/pause state to the
// element.
package video

import "log"

// VisibilityThreshold is the fraction of the video section that must be in
// view before autoplay starts.
const VisibilityThreshold = 0.3

// Orientation of the video, derived from its loaded metadata.
type Orientation string

const (
	OrientationUnknown   Orientation = ""
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// State is the player's visible state. Playing is the intended element
// state; the host reports a refused play attempt back via PlayBlocked.
type State struct {
	Playing     bool
	InView      bool
	Fullscreen  bool
	HasPlayed   bool
	Orientation Orientation
	AspectRatio float64
}

// Player owns the autoplay state for one video element.
type Player struct {
	state  State
	logger *log.Logger
}

// NewPlayer creates a player for a video that starts paused and out of view.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{logger: logger}
}

// State returns the current player state.
func (p *Player) State() State { return p.state }

// Playing reports whether the element should be playing.
func (p *Player) Playing() bool { return p.state.Playing }

// VisibilityChanged applies an observed visibility ratio. Crossing the
// threshold into view starts playback; leaving view pauses it unless the
// video is fullscreen.
func (p *Player) VisibilityChanged(ratio float64) {
	p.state.InView = ratio >= VisibilityThreshold
	if p.state.InView {
		if !p.state.Playing {
			p.state.Playing = true
			p.state.HasPlayed = true
		}
		return
	}
	if p.state.Playing && !p.state.Fullscreen {
		p.state.Playing = false
	}
}

// PlayBlocked records a play attempt the browser refused. The video stays
// paused until the user starts it themselves.
func (p *Player) PlayBlocked() {
	p.state.Playing = false
	p.state.HasPlayed = false
	p.diag("Video auto-play prevented, waiting for user interaction")
}

// FullscreenChanged tracks fullscreen entry and exit. A fullscreen video
// keeps playing even when the section scrolls out of view.
func (p *Player) FullscreenChanged(active bool) {
	p.state.Fullscreen = active
}

// MetadataLoaded derives orientation and aspect ratio from the element's
// intrinsic dimensions.
func (p *Player) MetadataLoaded(width, height int) {
	if width <= 0 || height <= 0 {
		p.diag("invalid video dimensions: %dx%d", width, height)
		return
	}
	p.state.AspectRatio = float64(width) / float64(height)
	if p.state.AspectRatio < 1 {
		p.state.Orientation = OrientationPortrait
	} else {
		p.state.Orientation = OrientationLandscape
	}
}

// Ended handles playback reaching the end: the host rewinds the element and
// playback restarts only while the section is still in view.
func (p *Player) Ended() {
	if p.state.InView {
		p.state.Playing = true
		p.diag("Video auto-restarted")
		return
	}
	p.state.Playing = false
}

func (p *Player) diag(format string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
