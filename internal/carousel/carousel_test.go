package carousel

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rockridgeglobal/enquiry-relay/internal/schedule"
)

const (
	wideViewport   = 1280
	narrowViewport = 390
)

func testCards(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{Quote: fmt.Sprintf("Testimonial %d", i+1)}
	}
	return cards
}

func TestTotalSlidesPerViewport(t *testing.T) {
	cards := testCards(7)

	wide := New(cards, wideViewport)
	assert.Equal(t, 2, wide.State().CardsPerView)
	assert.Equal(t, 4, wide.TotalSlides())

	narrow := New(cards, narrowViewport)
	assert.Equal(t, 1, narrow.State().CardsPerView)
	assert.Equal(t, 7, narrow.TotalSlides())
}

func TestGoToSlideClampsIntoRange(t *testing.T) {
	c := New(testCards(7), wideViewport)

	c.GoToSlide(99)
	assert.Equal(t, 3, c.Slide())

	c.GoToSlide(-5)
	assert.Equal(t, 0, c.Slide())
}

func TestNextAndPrevWrap(t *testing.T) {
	c := New(testCards(4), wideViewport) // 2 slides

	c.Next()
	assert.Equal(t, 1, c.Slide())
	c.Next()
	assert.Equal(t, 0, c.Slide(), "next on the last slide wraps to the first")

	c.Prev()
	assert.Equal(t, 1, c.Slide(), "prev on the first slide wraps to the last")
}

func TestOffsetAccountsForGapAndCardsPerView(t *testing.T) {
	c := New(testCards(7), wideViewport)
	c.GoToSlide(2)
	assert.Equal(t, 2*(300+CardGap)*2, c.Offset(300))

	narrow := New(testCards(7), narrowViewport)
	narrow.GoToSlide(3)
	assert.Equal(t, 3*(280+CardGap), narrow.Offset(280))
}

func TestSwipeThreshold(t *testing.T) {
	c := New(testCards(6), wideViewport)

	assert.False(t, c.Swipe(30), "gesture under the threshold is ignored")
	assert.Equal(t, 0, c.Slide())

	assert.True(t, c.Swipe(80))
	assert.Equal(t, 1, c.Slide(), "left swipe advances")

	assert.True(t, c.Swipe(-80))
	assert.Equal(t, 0, c.Slide(), "right swipe steps back")
}

func TestResizeReclampsSlide(t *testing.T) {
	c := New(testCards(7), narrowViewport)
	c.GoToSlide(6)

	c.Resize(wideViewport)
	assert.Equal(t, 2, c.State().CardsPerView)
	assert.Equal(t, 4, c.TotalSlides())
	assert.Equal(t, 3, c.Slide(), "slide index re-clamps against the new page count")
}

func TestDotsMarkCurrentSlide(t *testing.T) {
	c := New(testCards(7), wideViewport)
	c.GoToSlide(2)
	assert.Equal(t, []bool{false, false, true, false}, c.Dots())
}

func TestSyncScrollFollowsSettledPosition(t *testing.T) {
	c := New(testCards(7), wideViewport)
	slideWidth := (300 + CardGap) * 2

	c.SyncScroll(2*slideWidth+10, 300)
	assert.Equal(t, 2, c.Slide())

	// Positions past the last slide leave the index where it was.
	c.SyncScroll(9*slideWidth, 300)
	assert.Equal(t, 2, c.Slide())
}

func TestShowMoreTruncation(t *testing.T) {
	long := Card{Quote: strings.Repeat("a", TruncateLength+1)}
	short := Card{Quote: "Short and sweet."}
	forced := Card{Quote: "Short.", ForceTruncate: true}
	c := New([]Card{long, short, forced}, narrowViewport)

	assert.True(t, c.Truncatable(0))
	assert.False(t, c.Truncatable(1))
	assert.True(t, c.Truncatable(2))

	c.ToggleCard(0)
	assert.True(t, c.Expanded(0))
	c.ToggleCard(0)
	assert.False(t, c.Expanded(0))

	c.ToggleCard(1)
	assert.False(t, c.Expanded(1), "cards that never truncate ignore toggles")
}

func TestNavigationCollapsesExpandedCards(t *testing.T) {
	cards := testCards(4)
	cards[0].ForceTruncate = true
	c := New(cards, wideViewport)

	c.ToggleCard(0)
	assert.True(t, c.Expanded(0))

	c.Next()
	assert.False(t, c.Expanded(0), "navigating collapses expanded cards")

	c.GoToSlide(0)
	c.ToggleCard(0)
	c.SyncScroll(0, 300)
	assert.False(t, c.Expanded(0), "a settled scroll collapses cards even on the same slide")
}

func TestPlayerAutoplayAdvancesAndReschedules(t *testing.T) {
	sched := schedule.NewManual()
	p := NewPlayer(New(testCards(4), wideViewport), sched)

	pending := sched.Pending()
	assert.Len(t, pending, 1)
	assert.Equal(t, AutoplayInterval, pending[0].Delay)

	sched.FireNext()
	assert.Equal(t, 1, p.State().Slide)
	assert.Len(t, sched.Pending(), 1, "autoplay rearms after each tick")

	sched.FireNext()
	sched.FireNext()
	assert.Equal(t, 0, p.State().Slide, "autoplay wraps past the last slide")
}

func TestPlayerNavigationRestartsAutoplay(t *testing.T) {
	sched := schedule.NewManual()
	p := NewPlayer(New(testCards(6), wideViewport), sched)

	p.Next()
	p.GoToSlide(2)
	p.Swipe(SwipeThreshold + 1)
	assert.Len(t, sched.Pending(), 1, "each navigation replaces the pending autoplay task")
	assert.Equal(t, 0, p.State().Slide)
}

func TestPlayerHoverPausesAndLeaveResumes(t *testing.T) {
	sched := schedule.NewManual()
	p := NewPlayer(New(testCards(4), wideViewport), sched)

	p.HoverStart()
	assert.Empty(t, sched.Pending(), "hover cancels the pending autoplay task")

	p.HoverEnd()
	assert.Len(t, sched.Pending(), 1, "leaving resumes autoplay")
	sched.FireNext()
	assert.Equal(t, 1, p.State().Slide)
}

func TestPlayerResizeDebounce(t *testing.T) {
	sched := schedule.NewManual()
	p := NewPlayer(New(testCards(7), narrowViewport), sched)
	p.GoToSlide(6)

	p.Resize(900)
	p.Resize(1100)
	p.Resize(wideViewport)

	// One autoplay task plus the latest resize task.
	pending := sched.Pending()
	assert.Len(t, pending, 2, "each resize replaces the pending debounce task")
	assert.Equal(t, ResizeDebounce, pending[1].Delay)

	pending[1].Fire()
	st := p.State()
	assert.Equal(t, 2, st.CardsPerView)
	assert.Equal(t, 3, st.Slide)
}

func TestPlayerStopCancelsAllTasks(t *testing.T) {
	sched := schedule.NewManual()
	p := NewPlayer(New(testCards(4), wideViewport), sched)
	p.Resize(wideViewport)

	p.Stop()
	assert.Empty(t, sched.Pending())

	p.Next()
	assert.Empty(t, sched.Pending(), "a stopped player schedules nothing")
}

func TestPlayerOnChangeObservesTransitions(t *testing.T) {
	sched := schedule.NewManual()
	p := NewPlayer(New(testCards(4), wideViewport), sched)

	var seen []int
	p.OnChange = func(s State) { seen = append(seen, s.Slide) }

	p.Next()
	sched.FireNext() // autoplay tick
	p.Prev()
	assert.Equal(t, []int{1, 0, 1}, seen)
}
