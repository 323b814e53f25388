package carousel

import (
	"sync"
	"time"

	"github.com/rockridgeglobal/enquiry-relay/internal/schedule"
)

// Timer intervals for the carousel player.
const (
	AutoplayInterval = 5 * time.Second
	ResizeDebounce   = 250 * time.Millisecond
)

// Player drives a Carousel's autoplay and debounces viewport resizes. All
// timer work goes through the scheduler so the host controls time in tests.
type Player struct {
	mu sync.Mutex

	carousel *Carousel
	sched    schedule.Scheduler

	autoplayTask schedule.Task
	resizeTask   schedule.Task
	hovered      bool
	stopped      bool

	// OnChange, when set, observes the state after every transition the
	// player applies, including autoplay ticks and debounced resizes.
	OnChange func(State)
}

// NewPlayer wraps a carousel and starts its autoplay timer.
func NewPlayer(c *Carousel, sched schedule.Scheduler) *Player {
	p := &Player{carousel: c, sched: sched}
	p.mu.Lock()
	p.scheduleAutoplay()
	p.mu.Unlock()
	return p
}

// State returns the carousel's current state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.carousel.State()
}

// Next advances one slide and restarts the autoplay timer.
func (p *Player) Next() { p.navigate((*Carousel).Next) }

// Prev steps back one slide and restarts the autoplay timer.
func (p *Player) Prev() { p.navigate((*Carousel).Prev) }

// GoToSlide jumps to a slide, as from a dot click, and restarts the
// autoplay timer.
func (p *Player) GoToSlide(i int) {
	p.navigate(func(c *Carousel) { c.GoToSlide(i) })
}

// Swipe applies a touch gesture; a navigating gesture restarts the autoplay
// timer like any other explicit navigation.
func (p *Player) Swipe(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.carousel.Swipe(delta) {
		return
	}
	p.scheduleAutoplay()
	p.notify()
}

// HoverStart pauses autoplay while the pointer is over the carousel.
func (p *Player) HoverStart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hovered = true
	p.cancelAutoplay()
}

// HoverEnd resumes autoplay when the pointer leaves.
func (p *Player) HoverEnd() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hovered = false
	p.scheduleAutoplay()
}

// Resize records a new viewport width, applied only after resize events go
// quiet for the debounce interval. Each call replaces the pending one.
func (p *Player) Resize(viewportWidth int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resizeTask != nil {
		p.resizeTask.Cancel()
	}
	p.resizeTask = p.sched.Schedule(ResizeDebounce, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.resizeTask = nil
		p.carousel.Resize(viewportWidth)
		p.notify()
	})
}

// SyncScroll forwards a settled scroll position to the carousel.
func (p *Player) SyncScroll(scrollLeft, cardWidth int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.carousel.SyncScroll(scrollLeft, cardWidth)
	p.notify()
}

// ToggleCard forwards a show-more click.
func (p *Player) ToggleCard(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.carousel.ToggleCard(i)
	p.notify()
}

// Stop cancels all pending tasks. The player takes no further timer action.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	p.cancelAutoplay()
	if p.resizeTask != nil {
		p.resizeTask.Cancel()
		p.resizeTask = nil
	}
}

func (p *Player) navigate(move func(*Carousel)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	move(p.carousel)
	p.scheduleAutoplay()
	p.notify()
}

// scheduleAutoplay arms the next auto-advance, cancelling any pending one so
// at most a single autoplay task is ever outstanding. Callers hold p.mu.
func (p *Player) scheduleAutoplay() {
	p.cancelAutoplay()
	if p.hovered || p.stopped {
		return
	}
	p.autoplayTask = p.sched.Schedule(AutoplayInterval, p.autoAdvance)
}

func (p *Player) cancelAutoplay() {
	if p.autoplayTask != nil {
		p.autoplayTask.Cancel()
		p.autoplayTask = nil
	}
}

func (p *Player) autoAdvance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hovered || p.stopped {
		return
	}
	p.carousel.Next()
	p.scheduleAutoplay()
	p.notify()
}

func (p *Player) notify() {
	if p.OnChange != nil {
		p.OnChange(p.carousel.State())
	}
}
