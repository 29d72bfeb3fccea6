package renderer

import (
	"image"
	"runtime"
	"sync"
	"time"
)

// WorkerPool renders scanlines in parallel. The scene is never mutated
// after construction and each scanline writes a disjoint image row, so
// workers need no synchronization beyond the final WaitGroup.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
	taskQueue  chan int
	wg         sync.WaitGroup
}

// NewWorkerPool creates a worker pool over an existing raytracer.
// numWorkers <= 0 uses the CPU count.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		raytracer:  raytracer,
		numWorkers: numWorkers,
		taskQueue:  make(chan int, raytracer.height),
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Render distributes scanlines across the workers and blocks until the
// image is complete. Because every scanline uses its own seeded random
// generator, the result is byte-identical to a serial render.
func (wp *WorkerPool) Render() (*image.RGBA, RenderStats) {
	rt := wp.raytracer
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	start := time.Now()
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(img)
	}

	for j := rt.height - 1; j >= 0; j-- {
		wp.taskQueue <- j
	}
	close(wp.taskQueue)
	wp.wg.Wait()

	return img, rt.stats(start)
}

// run is the main worker loop
func (wp *WorkerPool) run(img *image.RGBA) {
	defer wp.wg.Done()
	for j := range wp.taskQueue {
		wp.raytracer.renderScanline(j, img)
	}
}
