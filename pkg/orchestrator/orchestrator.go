// Package orchestrator coordinates the carousel rendering pipeline.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/carousel/pkg/pipeline"
	"github.com/user/carousel/pkg/ports"
)

// Text colors shared by all templates: black headline, dark gray sub text.
var (
	mainTextColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	subTextColor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// SlideResult is the outcome for one slide. A degraded slide (featured
// image failure, layout overflow) still carries an image and lists the
// degradation in Warnings; Err is set only when the slide produced nothing.
type SlideResult struct {
	SlideNumber int
	Role        ports.SlideRole
	Filename    string
	Image       image.Image
	Warnings    []string
	Err         error
}

// Degraded reports whether the slide rendered with warnings.
func (r SlideResult) Degraded() bool {
	return r.Err == nil && len(r.Warnings) > 0
}

// RunResult aggregates one carousel generation.
type RunResult struct {
	// Results holds exactly one entry per input slide, in input order.
	Results []SlideResult

	// Success is true iff every slide rendered, warnings included.
	Success bool

	// Count is the number of rendered slides.
	Count int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the timestamp source used for filenames.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithWorkers sets the number of parallel slide workers.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Orchestrator maps slides to templates by position, renders each slide
// independently, and aggregates per-slide results.
type Orchestrator struct {
	textStage     pipeline.Stage[pipeline.TextLayoutInput, pipeline.TextLayoutResult]
	featuredStage pipeline.Stage[pipeline.FeaturedInput, pipeline.FeaturedResult]
	slideStage    pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	templates     ports.TemplateStore
	fonts         ports.FontStore
	sink          ports.DebugSink
	logger        ports.Logger
	workers       int
	now           func() time.Time
}

// New creates a new Orchestrator.
func New(
	textStage pipeline.Stage[pipeline.TextLayoutInput, pipeline.TextLayoutResult],
	featuredStage pipeline.Stage[pipeline.FeaturedInput, pipeline.FeaturedResult],
	slideStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	templates ports.TemplateStore,
	fonts ports.FontStore,
	sink ports.DebugSink,
	logger ports.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		textStage:     textStage,
		featuredStage: featuredStage,
		slideStage:    slideStage,
		templates:     templates,
		fonts:         fonts,
		sink:          sink,
		logger:        logger,
		workers:       runtime.NumCPU(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate renders the ordered slide list. Slide failures are isolated:
// one slide's degradation never aborts its siblings. The only batch-fatal
// error is a missing template, since no fallback canvas exists.
func (o *Orchestrator) Generate(ctx context.Context, slides []pipeline.Slide) (RunResult, error) {
	if len(slides) == 0 {
		return RunResult{Results: []SlideResult{}, Success: true}, nil
	}

	o.logger.Info(l10n.F("Generating carousel with %d slides", len(slides)))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(slides, "", "  "); err == nil {
			o.sink.SaveSlidesJSON(data)
		}
	}

	// Resolve every role and load the templates up front so a missing
	// template aborts before any rendering work starts.
	roles := make([]ports.SlideRole, len(slides))
	canvases := map[ports.SlideRole]image.Image{}
	for i, s := range slides {
		role := pipeline.ResolveRole(s, i, len(slides))
		roles[i] = role
		if _, ok := canvases[role]; ok {
			continue
		}
		tpl, err := o.templates.Load(role)
		if err != nil {
			o.logger.Error(l10n.F("Failed to load template %s: %s", role.TemplateName(), err))
			return RunResult{}, fmt.Errorf("load template %s: %w", role.TemplateName(), err)
		}
		canvases[role] = tpl
	}

	stamp := o.now().Format("20060102_150405")
	results := o.renderAll(ctx, slides, roles, canvases, stamp)

	success := true
	for _, r := range results {
		if r.Err != nil {
			success = false
		}
	}

	o.logger.Info(l10n.F("Carousel completed: %d slides", len(results)))
	return RunResult{Results: results, Success: success, Count: len(results)}, nil
}

// indexedResult pairs a result with its input position for re-ordering.
type indexedResult struct {
	index  int
	result SlideResult
}

// renderAll renders slides on a worker pool. Slides share only the
// read-only template and font assets, so they are safe to parallelize.
func (o *Orchestrator) renderAll(
	ctx context.Context,
	slides []pipeline.Slide,
	roles []ports.SlideRole,
	canvases map[ports.SlideRole]image.Image,
	stamp string,
) []SlideResult {
	jobs := make(chan int, len(slides))
	out := make(chan indexedResult, len(slides))

	workers := o.workers
	if workers > len(slides) {
		workers = len(slides)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := o.renderSlide(ctx, slides[i], i, roles[i], canvases[roles[i]], stamp)
				out <- indexedResult{index: i, result: res}
			}
		}()
	}

	for i := range slides {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(out)
	}()

	indexed := make([]indexedResult, 0, len(slides))
	for r := range out {
		indexed = append(indexed, r)

		if r.result.Err == nil && o.sink.Enabled() {
			o.sink.SaveSlide(r.index, r.result.Image)
		}
	}

	sort.Slice(indexed, func(i, j int) bool {
		return indexed[i].index < indexed[j].index
	})

	results := make([]SlideResult, len(indexed))
	for i, r := range indexed {
		results[i] = r.result
	}
	return results
}

// renderSlide renders a single slide and captures its degradations.
func (o *Orchestrator) renderSlide(
	ctx context.Context,
	s pipeline.Slide,
	index int,
	role ports.SlideRole,
	template image.Image,
	stamp string,
) SlideResult {
	spec := pipeline.SpecForRole(role)
	mainFont := o.fonts.Resolve(role, ports.TextMain)
	subFont := o.fonts.Resolve(role, ports.TextSub)

	result := SlideResult{
		SlideNumber: echoSlideNumber(s, index),
		Role:        role,
		Filename:    fmt.Sprintf("image_%s_%d.png", stamp, index+1),
	}

	// The featured photo is only meaningful on the cover template.
	var featured *pipeline.FeaturedResult
	if role == ports.RoleCover && hasFeaturedSource(s) {
		prepared, err := o.featuredStage.Execute(ctx, pipeline.FeaturedInput{
			URL:       s.FeaturedImage,
			Base64:    s.FeaturedImageBase64,
			MaxWidth:  spec.FeaturedBox.Width,
			MaxHeight: spec.FeaturedBox.Height,
		})
		if err != nil {
			// Degrade to text-only rather than failing the slide.
			o.logger.Warn(l10n.F("Slide %d featured image degraded: %s", result.SlideNumber, err))
			result.Warnings = append(result.Warnings, fmt.Sprintf("featured image: %v", err))
		} else {
			featured = &prepared
			if o.sink.Enabled() {
				o.sink.SaveFeaturedImage(index, prepared.Image)
			}
		}
	}

	text, err := o.textStage.Execute(ctx, pipeline.TextLayoutInput{
		MainText: s.MainText,
		SubText:  s.SubText,
		MainFont: mainFont,
		SubFont:  subFont,
		Spec:     spec,
	})
	if err != nil {
		result.Err = fmt.Errorf("text layout: %w", err)
		return result
	}
	if text.Overflow {
		result.Warnings = append(result.Warnings, "layout overflow: text wider than padded region after wrapping")
	}
	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(text, "", "  "); err == nil {
			o.sink.SaveLayoutJSON(index, data)
		}
	}

	rendered, err := o.slideStage.Execute(ctx, pipeline.RenderInput{
		Template:  template,
		Spec:      spec,
		Text:      text,
		MainStyle: ports.TextStyle{Font: mainFont, Color: mainTextColor},
		SubStyle:  ports.TextStyle{Font: subFont, Color: subTextColor},
		Featured:  featured,
	})
	if err != nil {
		result.Err = fmt.Errorf("compose slide: %w", err)
		return result
	}

	result.Image = rendered.Image
	return result
}

// echoSlideNumber returns the slide's display number, defaulting to its
// 1-based position when the input omits it.
func echoSlideNumber(s pipeline.Slide, index int) int {
	if s.SlideNumber != 0 {
		return s.SlideNumber
	}
	return index + 1
}

func hasFeaturedSource(s pipeline.Slide) bool {
	return s.FeaturedImage != "" || s.FeaturedImageBase64 != ""
}
