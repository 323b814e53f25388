package lightbox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func galleryImages(n int) []Image {
	imgs := make([]Image, n)
	for i := range imgs {
		imgs[i] = Image{Src: fmt.Sprintf("gallery-%d.jpg", i)}
	}
	return imgs
}

func featureImages(n int) []Image {
	imgs := make([]Image, n)
	for i := range imgs {
		imgs[i] = Image{Src: fmt.Sprintf("feature-%d.jpg", i)}
	}
	return imgs
}

func TestNewViewer_ConcatenatesGroups(t *testing.T) {
	v := NewViewer(nil, galleryImages(4), featureImages(3))
	assert.Equal(t, 7, v.Len())

	// Feature images continue the gallery's index space
	v.Open(4)
	img, ok := v.Current()
	assert.True(t, ok)
	assert.Equal(t, "feature-0.jpg", img.Src)
}

func TestOpen_OutOfRangeIsNoOp(t *testing.T) {
	v := NewViewer(nil, galleryImages(3))
	v.Open(1)
	before := v.State()

	v.Open(5)
	assert.Equal(t, before, v.State())

	v.Open(-1)
	assert.Equal(t, before, v.State())
}

func TestOpen_EmptyCollectionIsNoOp(t *testing.T) {
	v := NewViewer(nil)
	v.Open(0)
	assert.False(t, v.State().Open)
}

func TestNextPrev_WrapCircularly(t *testing.T) {
	v := NewViewer(nil, galleryImages(3))
	v.Open(2)

	v.Next()
	assert.Equal(t, 0, v.State().Index)

	v.Prev()
	assert.Equal(t, 2, v.State().Index)

	// Never out of range, whatever the walk
	for i := 0; i < 10; i++ {
		v.Next()
		idx := v.State().Index
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, v.Len())
	}
}

func TestNavigation_IgnoredWhileClosed(t *testing.T) {
	v := NewViewer(nil, galleryImages(3))
	v.Next()
	v.Prev()
	v.HandleKey(KeyArrowRight)
	assert.Equal(t, State{}, v.State())
}

func TestKeyboard(t *testing.T) {
	v := NewViewer(nil, galleryImages(3))
	v.Open(0)

	v.HandleKey(KeyArrowRight)
	assert.Equal(t, 1, v.State().Index)

	v.HandleKey(KeyArrowLeft)
	assert.Equal(t, 0, v.State().Index)

	v.HandleKey("Enter")
	assert.Equal(t, 0, v.State().Index)
	assert.True(t, v.State().Open)

	v.HandleKey(KeyEscape)
	assert.False(t, v.State().Open)
}

func TestScrollLock(t *testing.T) {
	v := NewViewer(nil, galleryImages(2))
	assert.False(t, v.ScrollLocked())

	v.Open(0)
	assert.True(t, v.ScrollLocked())

	v.Close()
	assert.False(t, v.ScrollLocked())
}

func TestHandleClick(t *testing.T) {
	v := NewViewer(nil, galleryImages(2))

	v.Open(1)
	v.HandleClick(TargetImage)
	assert.True(t, v.State().Open)

	v.HandleClick(TargetNav)
	assert.True(t, v.State().Open)

	v.HandleClick(TargetBackdrop)
	assert.False(t, v.State().Open)

	v.Open(1)
	v.HandleClick(TargetContentWrapper)
	assert.False(t, v.State().Open)

	// Index survives close, reopening starts where asked
	v.Open(0)
	assert.Equal(t, 0, v.State().Index)
}

func TestCounter(t *testing.T) {
	v := NewViewer(nil, galleryImages(5))
	v.Open(2)
	assert.Equal(t, "3 / 5", v.Counter())
}
