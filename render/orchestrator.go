package render

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/terminal"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int      // registration order for stable sort
	modes    []string // empty runs in every mode
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	term      terminal.Terminal
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
	log       zerolog.Logger
}

// NewRenderOrchestrator creates an orchestrator with the given terminal and dimensions
func NewRenderOrchestrator(term terminal.Terminal, width, height int, log zerolog.Logger) *RenderOrchestrator {
	log = log.With().Str("component", "render").Logger()
	return &RenderOrchestrator{
		term:      term,
		buffer:    NewRenderBuffer(width, height, log),
		renderers: make([]rendererEntry, 0, 16),
		log:       log,
	}
}

// Register adds a renderer at the specified priority, limited to the named modes if any.
// Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority, modes ...string) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
		modes:    modes,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs terminal
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.term.Sync()
	o.log.Debug().Int("width", width).Int("height", height).Msg("resized")
}

// Buffer returns the frame buffer
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if len(entry.modes) > 0 && !slices.Contains(entry.modes, ctx.Mode) {
			continue
		}
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToTerminal(o.term)
}
