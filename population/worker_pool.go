package population

import (
	"runtime"
	"sync"

	"github.com/lixenwraith/lensing/physics"
	"github.com/lixenwraith/lensing/ray"
)

// stepTask is a contiguous slice of rays stepped by a single worker
// Slices handed out in one frame never overlap
type stepTask struct {
	rays     []ray.Ray
	absorbed []bool
	dt       float64
	bh       physics.BlackHole
	params   physics.Params
}

// workerPool steps ray chunks on persistent goroutines; step blocks until the whole frame is done
type workerPool struct {
	tasks      chan stepTask
	numWorkers int
	wg         sync.WaitGroup // worker lifetime
	frame      sync.WaitGroup // per-frame barrier
}

// newWorkerPool creates a pool with numWorkers goroutines, NumCPU when numWorkers <= 0
func newWorkerPool(numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{
		tasks:      make(chan stepTask, numWorkers),
		numWorkers: numWorkers,
	}
}

// Start launches all workers
func (wp *workerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop closes the task queue and waits for workers to exit
func (wp *workerPool) Stop() {
	close(wp.tasks)
	wp.wg.Wait()
}

// step splits rays into one chunk per worker and waits for all chunks
// bh and params arrive by value, so every ray in the frame sees the same snapshot
func (wp *workerPool) step(rays []ray.Ray, absorbed []bool, dt float64, bh physics.BlackHole, params physics.Params) {
	n := len(rays)
	if n == 0 {
		return
	}
	chunk := (n + wp.numWorkers - 1) / wp.numWorkers

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wp.frame.Add(1)
		wp.tasks <- stepTask{
			rays:     rays[lo:hi],
			absorbed: absorbed[lo:hi],
			dt:       dt,
			bh:       bh,
			params:   params,
		}
	}
	wp.frame.Wait()
}

func (wp *workerPool) run() {
	defer wp.wg.Done()

	for task := range wp.tasks {
		for i := range task.rays {
			task.absorbed[i] = task.rays[i].Step(task.dt, task.bh, task.params)
		}
		wp.frame.Done()
	}
}
