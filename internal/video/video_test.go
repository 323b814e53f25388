package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaysWhenThresholdVisible(t *testing.T) {
	p := NewPlayer(nil)

	p.VisibilityChanged(0.1)
	assert.False(t, p.Playing(), "below the threshold nothing plays")

	p.VisibilityChanged(0.3)
	assert.True(t, p.Playing())
	assert.True(t, p.State().HasPlayed)
}

func TestPausesWhenScrolledOutOfView(t *testing.T) {
	p := NewPlayer(nil)
	p.VisibilityChanged(0.5)
	assert.True(t, p.Playing())

	p.VisibilityChanged(0.0)
	assert.False(t, p.Playing())
	assert.True(t, p.State().HasPlayed, "a completed play attempt stays recorded")
}

func TestFullscreenKeepsPlayingOutOfView(t *testing.T) {
	p := NewPlayer(nil)
	p.VisibilityChanged(0.5)
	p.FullscreenChanged(true)

	p.VisibilityChanged(0.0)
	assert.True(t, p.Playing(), "fullscreen playback survives scrolling away")

	p.FullscreenChanged(false)
	p.VisibilityChanged(0.0)
	assert.False(t, p.Playing(), "after fullscreen exits, out of view pauses again")
}

func TestPlayBlockedStaysPaused(t *testing.T) {
	p := NewPlayer(nil)
	p.VisibilityChanged(0.5)
	p.PlayBlocked()

	assert.False(t, p.Playing())
	assert.False(t, p.State().HasPlayed)
}

func TestMetadataOrientation(t *testing.T) {
	p := NewPlayer(nil)

	p.MetadataLoaded(1080, 1920)
	assert.Equal(t, OrientationPortrait, p.State().Orientation)
	assert.InDelta(t, 0.5625, p.State().AspectRatio, 0.0001)

	p.MetadataLoaded(1920, 1080)
	assert.Equal(t, OrientationLandscape, p.State().Orientation)

	p.MetadataLoaded(0, 1080)
	assert.Equal(t, OrientationLandscape, p.State().Orientation, "bad dimensions leave prior metadata")
}

func TestEndedRestartsOnlyInView(t *testing.T) {
	p := NewPlayer(nil)
	p.VisibilityChanged(0.5)

	p.Ended()
	assert.True(t, p.Playing(), "ended while in view restarts playback")

	p.VisibilityChanged(0.0)
	p.Ended()
	assert.False(t, p.Playing(), "ended while out of view stays paused")
}
