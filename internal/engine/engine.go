package engine

import (
	"fmt"
	"image"
	"image/draw"
	"runtime"
	"sync"

	"github.com/fogleman/ease"

	"github.com/ivlev/svg2anim/internal/analyzer"
	"github.com/ivlev/svg2anim/internal/assets"
	"github.com/ivlev/svg2anim/internal/config"
	"github.com/ivlev/svg2anim/internal/encoder"
	"github.com/ivlev/svg2anim/internal/render"
	"github.com/ivlev/svg2anim/internal/source"
	"github.com/ivlev/svg2anim/internal/svgpath"
	"github.com/ivlev/svg2anim/internal/timeline"
)

// AnimationProject собирает итоговые артефакты (GIF и анимированный SVG)
// из каталога нарисованных вручную SVG-кадров по заданному сценарию.
type AnimationProject struct {
	Config   *config.Config
	Scenario *config.Scenario
}

func NewAnimationProject(cfg *config.Config, sc *config.Scenario) *AnimationProject {
	return &AnimationProject{Config: cfg, Scenario: sc}
}

func (p *AnimationProject) Run() error {
	groups, err := assets.Discover(p.Config.InputDir, p.Scenario.Groups)
	if err != nil {
		return err
	}

	fmt.Println("--- [PROJECT: LOGO ANIMATION] ---")
	for _, g := range groups {
		fmt.Printf("[*] Группа %q: %d кадров\n", g.Name, len(g.Assets))
	}
	fmt.Printf("[*] Холст: %dx%d\n", p.Scenario.Canvas.Width, p.Scenario.Canvas.Height)
	fmt.Println("---------------------------------")

	if p.Config.OutputGIF != "" {
		if err := p.renderCompositeGIF(groups); err != nil {
			return fmt.Errorf("сборка GIF: %w", err)
		}
	}
	if p.Config.FlameGIF != "" {
		if err := p.renderFlameGIF(groups); err != nil {
			return fmt.Errorf("сборка GIF пламени: %w", err)
		}
	}
	if p.Config.OutputSVG != "" {
		if err := p.renderCompositeSVG(groups); err != nil {
			return fmt.Errorf("сборка анимированного SVG: %w", err)
		}
	}
	if p.Config.FlameSVG != "" {
		if err := p.renderFlameSVG(groups); err != nil {
			return fmt.Errorf("сборка SVG пламени: %w", err)
		}
	}

	return nil
}

// normalizeGroup rasterizes and normalizes every frame of a group using
// a render worker pool. Empty frames are dropped (with a warning), render
// failures abort the run.
func (p *AnimationProject) normalizeGroup(group assets.Group, rule config.GroupRule) ([]*image.RGBA, error) {
	src := source.NewSVGSource(group.Paths())
	n := src.FrameCount()

	rendered := make([]*image.RGBA, n)
	errs := make([]error, n)
	jobs := make(chan int, n)
	var wg sync.WaitGroup

	workers := p.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				img, err := src.Render(i, 0, 0)
				if err != nil {
					errs[i] = err
					continue
				}
				if err := render.Flatten(img, rule.Fill); err != nil {
					errs[i] = err
					continue
				}
				if analyzer.IsEmpty(img) {
					// Остается nil: кадр будет исключен ниже.
					continue
				}
				rendered[i] = render.FitFrame(img, rule.Frame.Width, rule.Frame.Height, rule.Anchor)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	frames := make([]*image.RGBA, 0, n)
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			return nil, fmt.Errorf("кадр %s: %w", group.Assets[i].Name, errs[i])
		}
		if rendered[i] == nil {
			fmt.Printf("[!] Пропущен пустой кадр: %s\n", group.Assets[i].Name)
			continue
		}
		frames = append(frames, rendered[i])
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("группа %q: ни одного пригодного кадра", group.Name)
	}
	return frames, nil
}

func (p *AnimationProject) renderCompositeGIF(groups []assets.Group) error {
	sc := p.Scenario

	bg, err := render.ParseColor(sc.Background)
	if err != nil {
		return err
	}

	layers := make([]render.Layer, len(groups))
	lengths := make([]int, len(groups))
	for i, g := range groups {
		frames, err := p.normalizeGroup(g, sc.Groups[i])
		if err != nil {
			return err
		}
		layers[i] = render.Layer{
			Frames: frames,
			Offset: image.Pt(sc.Groups[i].Offset.X, sc.Groups[i].Offset.Y),
		}
		lengths[i] = len(frames)
		fmt.Printf("[>] Нормализовано %d/%d групп\n", i+1, len(groups))
	}

	tl, err := timeline.New(lengths...)
	if err != nil {
		return err
	}
	fmt.Printf("[*] Комбинированный цикл: %d кадров (%v)\n", tl.Length, lengths)

	comp := render.NewCompositor(sc.Canvas.Width, sc.Canvas.Height, bg)
	canvases := make([]*image.RGBA, 0, tl.Length)
	local := make([]int, len(layers))
	for i := 0; i < tl.Length; i++ {
		for s := range layers {
			local[s] = tl.LocalIndex(s, i)
		}
		canvases = append(canvases, comp.Composite(layers, local))
	}

	err = encoder.WriteGIF(p.Config.OutputGIF, canvases, sc.GIFFrameMS)
	for _, c := range canvases {
		comp.Recycle(c)
	}
	if err != nil {
		return err
	}

	fmt.Printf("[+] GIF сохранен: %s (%d кадров по %dms)\n", p.Config.OutputGIF, tl.Length, sc.GIFFrameMS)
	return nil
}

// renderFlameGIF emits the standalone flame flicker preview in the
// assets' original colors.
func (p *AnimationProject) renderFlameGIF(groups []assets.Group) error {
	sc := p.Scenario
	idx := sc.InterpolatedGroup()
	if idx < 0 {
		return fmt.Errorf("в сценарии нет группы с interpolate: true")
	}
	group := groups[idx]

	w, h := sc.Preview.Size.Width, sc.Preview.Size.Height
	src := source.NewSVGSource(group.Paths())

	var frames []*image.RGBA
	for i := 0; i < src.FrameCount(); i++ {
		img, err := src.Render(i, 0, 0)
		if err != nil {
			return fmt.Errorf("кадр %s: %w", group.Assets[i].Name, err)
		}
		if analyzer.IsEmpty(img) {
			fmt.Printf("[!] Пропущен пустой кадр: %s\n", group.Assets[i].Name)
			continue
		}

		fitted := render.ScaleToFit(img, w, h)
		canvas := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
		off := image.Pt((w-fitted.Bounds().Dx())/2, (h-fitted.Bounds().Dy())/2)
		dst := image.Rectangle{Min: off, Max: off.Add(fitted.Bounds().Size())}
		draw.Draw(canvas, dst, fitted, fitted.Bounds().Min, draw.Over)
		frames = append(frames, canvas)
	}

	if len(frames) == 0 {
		return fmt.Errorf("группа %q: ни одного пригодного кадра", group.Name)
	}

	if err := encoder.WriteGIF(p.Config.FlameGIF, frames, sc.Preview.FrameMS); err != nil {
		return err
	}
	fmt.Printf("[+] GIF пламени сохранен: %s (%d кадров по %dms)\n", p.Config.FlameGIF, len(frames), sc.Preview.FrameMS)
	return nil
}

// vecFrame is one vector frame of a group: its path data and the source
// asset's viewBox.
type vecFrame struct {
	paths   []string
	viewBox [4]float64
}

// loadVectorGroup scans path data out of every asset, dropping assets
// with no paths so the reduced length feeds the timeline math.
func loadVectorGroup(group assets.Group) ([]vecFrame, error) {
	var frames []vecFrame
	for _, a := range group.Assets {
		doc, err := assets.ReadDocument(a.Path)
		if err != nil {
			return nil, err
		}
		if len(doc.Paths) == 0 {
			fmt.Printf("[!] Пропущен пустой кадр: %s\n", a.Name)
			continue
		}
		frames = append(frames, vecFrame{paths: doc.Paths, viewBox: doc.ViewBox})
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("группа %q: ни одного векторного кадра", group.Name)
	}
	return frames, nil
}

// expandInbetweens inserts count interpolated frames after each original
// frame, wrapping around so the last frame blends back into the first.
// Only the leading path of a frame is blended; any trailing paths are
// carried from the base frame.
func expandInbetweens(frames []vecFrame, count int, easing ease.Function) []vecFrame {
	if count <= 0 || len(frames) < 2 {
		return frames
	}

	expanded := make([]vecFrame, 0, len(frames)*(count+1))
	for i := range frames {
		expanded = append(expanded, frames[i])
		next := frames[(i+1)%len(frames)]
		for k := 1; k <= count; k++ {
			t := easing(float64(k) / float64(count+1))
			blended := svgpath.Interpolate(frames[i].paths[0], next.paths[0], t)
			paths := append([]string{blended}, frames[i].paths[1:]...)
			expanded = append(expanded, vecFrame{paths: paths, viewBox: frames[i].viewBox})
		}
	}
	return expanded
}

// groupTransform positions a group's viewBox content on the composite
// canvas, the same translate+scale the prototype frames used.
func groupTransform(rule config.GroupRule, vb [4]float64) string {
	scale := rule.SVGScale
	if scale == 0 {
		scale = 1
	}
	tx := rule.SVGOffset.X - vb[0]*scale
	ty := rule.SVGOffset.Y - vb[1]*scale
	return encoder.Transform(tx, ty, scale)
}

func (p *AnimationProject) renderCompositeSVG(groups []assets.Group) error {
	sc := p.Scenario
	easing := svgpath.Easing(sc.Easing)

	sequences := make([][]vecFrame, len(groups))
	lengths := make([]int, len(groups))
	for i, g := range groups {
		frames, err := loadVectorGroup(g)
		if err != nil {
			return err
		}
		if sc.Groups[i].Interpolate {
			frames = expandInbetweens(frames, sc.Inbetweens, easing)
		}
		sequences[i] = frames
		lengths[i] = len(frames)
	}

	tl, err := timeline.New(lengths...)
	if err != nil {
		return err
	}
	fmt.Printf("[*] Векторный цикл: %d кадров (%v)\n", tl.Length, lengths)

	anim := &encoder.Animation{
		ViewBox: [4]float64{0, 0, float64(sc.Canvas.Width), float64(sc.Canvas.Height)},
		FrameMS: sc.SVGFrameMS,
	}
	for _, rule := range sc.Groups {
		anim.Fills = append(anim.Fills, encoder.ClassFill{Class: rule.Name, Fill: rule.Fill})
	}

	for i := 0; i < tl.Length; i++ {
		var frame []encoder.Placement
		for s := range sequences {
			vf := sequences[s][tl.LocalIndex(s, i)]
			frame = append(frame, encoder.Placement{
				Class:     sc.Groups[s].Name,
				Transform: groupTransform(sc.Groups[s], vf.viewBox),
				Paths:     vf.paths,
			})
		}
		anim.Frames = append(anim.Frames, frame)
	}

	if err := encoder.WriteSVG(p.Config.OutputSVG, anim); err != nil {
		return err
	}
	fmt.Printf("[+] Анимированный SVG сохранен: %s (%d кадров по %dms)\n", p.Config.OutputSVG, tl.Length, sc.SVGFrameMS)
	return nil
}

// renderFlameSVG emits the standalone flame animation with in-between
// frames, in the flame's own viewBox.
// staticPaths returns the longest common suffix of path data shared by
// every frame. Each frame keeps at least its leading (animated) path.
func staticPaths(frames []vecFrame) []string {
	if len(frames) == 0 {
		return nil
	}
	max := len(frames[0].paths) - 1
	for _, vf := range frames[1:] {
		if n := len(vf.paths) - 1; n < max {
			max = n
		}
	}

	common := 0
	for common < max {
		d := frames[0].paths[len(frames[0].paths)-1-common]
		same := true
		for _, vf := range frames[1:] {
			if vf.paths[len(vf.paths)-1-common] != d {
				same = false
				break
			}
		}
		if !same {
			break
		}
		common++
	}

	if common == 0 {
		return nil
	}
	return frames[0].paths[len(frames[0].paths)-common:]
}

func (p *AnimationProject) renderFlameSVG(groups []assets.Group) error {
	sc := p.Scenario
	idx := sc.InterpolatedGroup()
	if idx < 0 {
		return fmt.Errorf("в сценарии нет группы с interpolate: true")
	}

	frames, err := loadVectorGroup(groups[idx])
	if err != nil {
		return err
	}
	frames = expandInbetweens(frames, sc.Inbetweens, svgpath.Easing(sc.Easing))

	anim := &encoder.Animation{
		ViewBox: frames[0].viewBox,
		FrameMS: sc.Preview.FrameMS,
		Fills:   []encoder.ClassFill{{Class: sc.Groups[idx].Name, Fill: sc.Preview.Fill}},
	}

	// Paths drawn identically on every frame (the candle holder under the
	// flame) become one always-visible layer instead of n copies.
	static := staticPaths(frames)
	if len(static) > 0 {
		anim.Static = []encoder.Placement{{Class: sc.Groups[idx].Name, Paths: static}}
	}
	for _, vf := range frames {
		anim.Frames = append(anim.Frames, []encoder.Placement{
			{Class: sc.Groups[idx].Name, Paths: vf.paths[:len(vf.paths)-len(static)]},
		})
	}

	if err := encoder.WriteSVG(p.Config.FlameSVG, anim); err != nil {
		return err
	}
	fmt.Printf("[+] SVG пламени сохранен: %s (%d кадров по %dms)\n", p.Config.FlameSVG, len(anim.Frames), sc.Preview.FrameMS)
	return nil
}
