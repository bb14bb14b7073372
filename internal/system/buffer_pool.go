package system

import (
	"image"
	"sync"
)

// CanvasPool переиспользует холсты *image.RGBA одного размера, чтобы не
// аллоцировать по холсту на каждый кадр таймлайна (88 кадров для
// стандартной анимации) и снизить нагрузку на GC. Композитор берет
// холст, рендерит кадр, а после кодирования возвращает его обратно.
type CanvasPool struct {
	rect image.Rectangle
	pool sync.Pool
}

// NewCanvasPool создает пул холстов фиксированного размера.
func NewCanvasPool(width, height int) *CanvasPool {
	rect := image.Rect(0, 0, width, height)
	return &CanvasPool{
		rect: rect,
		pool: sync.Pool{
			New: func() interface{} {
				return image.NewRGBA(rect)
			},
		},
	}
}

// Get возвращает холст из пула. Содержимое не очищается: вызывающая
// сторона обязана полностью перерисовать холст.
func (p *CanvasPool) Get() *image.RGBA {
	return p.pool.Get().(*image.RGBA)
}

// Put возвращает холст в пул. Холсты чужого размера игнорируются.
func (p *CanvasPool) Put(img *image.RGBA) {
	if img == nil || img.Rect != p.rect {
		return
	}
	p.pool.Put(img)
}
