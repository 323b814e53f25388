// Package carousel implements the testimonials carousel as an owned state
// object with pure transitions, plus a Player that owns the autoplay and
// resize-debounce tasks. The hosting page applies slide offsets and dot
// states to its rendering surface.
package carousel

// Layout and interaction constants shared with the pages' stylesheet.
const (
	MobileBreakpoint = 840 // viewport width at or below which one card shows
	CardGap          = 20  // px between cards
	SwipeThreshold   = 50  // px of horizontal travel that counts as a swipe
	TruncateLength   = 200 // quote length beyond which show-more applies
)

// Card is one testimonial.
type Card struct {
	Quote         string
	ForceTruncate bool // page marked the card truncatable regardless of length
}

// State is the carousel's visible state.
type State struct {
	Slide        int
	CardsPerView int
	Expanded     []bool // per-card show-more state
}

// CardsPerView returns how many cards one slide shows at a viewport width.
func CardsPerView(viewportWidth int) int {
	if viewportWidth <= MobileBreakpoint {
		return 1
	}
	return 2
}

// Carousel owns slide and show-more state over a fixed card list.
type Carousel struct {
	cards []Card
	state State
}

// New creates a carousel at slide 0 for the given viewport width.
func New(cards []Card, viewportWidth int) *Carousel {
	return &Carousel{
		cards: cards,
		state: State{
			CardsPerView: CardsPerView(viewportWidth),
			Expanded:     make([]bool, len(cards)),
		},
	}
}

// State returns a copy of the current state.
func (c *Carousel) State() State {
	s := c.state
	s.Expanded = append([]bool(nil), c.state.Expanded...)
	return s
}

// Slide returns the current slide index.
func (c *Carousel) Slide() int { return c.state.Slide }

// TotalSlides is the page count at the current cards-per-view.
func (c *Carousel) TotalSlides() int {
	if len(c.cards) == 0 {
		return 0
	}
	per := c.state.CardsPerView
	return (len(c.cards) + per - 1) / per
}

// Dots returns one active flag per slide, for the pagination dots.
func (c *Carousel) Dots() []bool {
	dots := make([]bool, c.TotalSlides())
	if len(dots) > 0 {
		dots[c.state.Slide] = true
	}
	return dots
}

// GoToSlide clamps the index into range, collapses any expanded cards, and
// becomes the current slide.
func (c *Carousel) GoToSlide(i int) {
	total := c.TotalSlides()
	if total == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > total-1 {
		i = total - 1
	}
	c.state.Slide = i
	c.collapseAll()
}

// Next advances with circular wrap.
func (c *Carousel) Next() {
	total := c.TotalSlides()
	if total == 0 {
		return
	}
	c.GoToSlide((c.state.Slide + 1) % total)
}

// Prev steps back with circular wrap.
func (c *Carousel) Prev() {
	total := c.TotalSlides()
	if total == 0 {
		return
	}
	c.GoToSlide((c.state.Slide - 1 + total) % total)
}

// Swipe applies a horizontal touch gesture. Delta is touch-start X minus
// touch-end X; a positive delta swipes to the next slide. Gestures under the
// threshold are ignored. Reports whether the gesture navigated.
func (c *Carousel) Swipe(delta int) bool {
	if delta >= -SwipeThreshold && delta <= SwipeThreshold {
		return false
	}
	if delta > 0 {
		c.Next()
	} else {
		c.Prev()
	}
	return true
}

// Resize recomputes cards-per-view for the new viewport width and re-clamps
// the slide index against the new page count.
func (c *Carousel) Resize(viewportWidth int) {
	c.state.CardsPerView = CardsPerView(viewportWidth)
	c.GoToSlide(c.state.Slide)
}

// Offset is the scroll position for the current slide given the measured
// card width.
func (c *Carousel) Offset(cardWidth int) int {
	return c.state.Slide * (cardWidth + CardGap) * c.state.CardsPerView
}

// SyncScroll updates the slide index from a settled scroll position, as when
// the user scrolls the strip directly. Every settled scroll counts as
// navigation and collapses expanded cards, even when it lands on the same
// slide.
func (c *Carousel) SyncScroll(scrollLeft, cardWidth int) {
	slideWidth := (cardWidth + CardGap) * c.state.CardsPerView
	if slideWidth <= 0 {
		return
	}
	idx := (scrollLeft + slideWidth/2) / slideWidth
	if idx >= 0 && idx < c.TotalSlides() {
		c.state.Slide = idx
	}
	c.collapseAll()
}

// Truncatable reports whether card i shows a show-more control.
func (c *Carousel) Truncatable(i int) bool {
	if i < 0 || i >= len(c.cards) {
		return false
	}
	return c.cards[i].ForceTruncate || len(c.cards[i].Quote) > TruncateLength
}

// Expanded reports whether card i currently shows its full text.
func (c *Carousel) Expanded(i int) bool {
	if i < 0 || i >= len(c.state.Expanded) {
		return false
	}
	return c.state.Expanded[i]
}

// ToggleCard flips card i between truncated and full text. Cards that never
// truncate are ignored.
func (c *Carousel) ToggleCard(i int) {
	if !c.Truncatable(i) {
		return
	}
	c.state.Expanded[i] = !c.state.Expanded[i]
}

// collapseAll returns every card to its truncated state. Runs on every
// navigation so an expanded card never scrolls off half-open.
func (c *Carousel) collapseAll() {
	for i := range c.state.Expanded {
		c.state.Expanded[i] = false
	}
}
