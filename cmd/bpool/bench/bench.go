package bench

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/openziti/bpool"
	"github.com/openziti/bpool/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

type Config struct {
	Workers    int
	Iterations int
	Hold       int
	BufferSz   int
	Consume    float64
	SampleMs   int
}

func (self *Config) validate() error {
	if self.Workers < 1 {
		return errors.Errorf("invalid worker count [%d]", self.Workers)
	}
	if self.Iterations < 0 {
		return errors.Errorf("invalid iteration count [%d]", self.Iterations)
	}
	if self.Hold < 1 {
		return errors.Errorf("invalid hold count [%d]", self.Hold)
	}
	if self.BufferSz < 1 {
		return errors.Errorf("invalid buffer size [%d]", self.BufferSz)
	}
	if self.Consume < 0 || self.Consume > 1 {
		return errors.Errorf("invalid consume fraction [%.2f]", self.Consume)
	}
	if self.SampleMs < 1 {
		return errors.Errorf("invalid sample interval [%d ms]", self.SampleMs)
	}
	return nil
}

type buffer struct {
	data []byte
	used int
}

type WorkerResult struct {
	Acquired int64
	Consumed int64
	Elapsed  time.Duration
}

type Report struct {
	Limit       int
	Spares      []*util.Sample
	Allocations []*util.Sample
	Allocated   int64
	Acquired    int64
	Consumed    int64
	FinalLen    int
	Elapsed     time.Duration
	Workers     *treemap.Map
}

// Run starts cfg.Workers goroutines sharing one pool built from opts. The pool factory counts
// allocations; spare count and allocation count are sampled throughout the run.
func Run(opts *bpool.Options, cfg *Config) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var allocated int64
	pool := bpool.NewSharedFromOptions[*buffer](opts, bpool.FactoryFunc[*buffer](func() *buffer {
		atomic.AddInt64(&allocated, 1)
		return &buffer{data: make([]byte, cfg.BufferSz)}
	}))

	spares := util.NewSampler(func() int64 { return int64(pool.Len()) })
	allocations := util.NewSampler(func() int64 { return atomic.LoadInt64(&allocated) })
	interval := time.Duration(cfg.SampleMs) * time.Millisecond
	spares.Start(interval)
	allocations.Start(interval)

	results := make(chan *workerOutcome, cfg.Workers)
	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results <- &workerOutcome{id, work(pool.Clone(), cfg, rand.New(rand.NewSource(int64(id)+1)))}
		}(i)
	}
	wg.Wait()
	close(results)

	report := &Report{
		Limit:       pool.Limit(),
		Spares:      spares.Stop(),
		Allocations: allocations.Stop(),
		Allocated:   atomic.LoadInt64(&allocated),
		FinalLen:    pool.Len(),
		Elapsed:     time.Since(start),
		Workers:     treemap.NewWithIntComparator(),
	}
	for outcome := range results {
		report.Acquired += outcome.result.Acquired
		report.Consumed += outcome.result.Consumed
		report.Workers.Put(outcome.id, outcome.result)
	}
	return report, nil
}

type workerOutcome struct {
	id     int
	result *WorkerResult
}

func work(pool bpool.SharedPool[*buffer, bpool.FactoryFunc[*buffer]], cfg *Config, r *rand.Rand) *WorkerResult {
	result := &WorkerResult{}
	guards := make([]*bpool.Guard[*buffer, bpool.FactoryFunc[*buffer]], cfg.Hold)
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		for j := range guards {
			guards[j] = pool.PopGuarded()
			buf := *guards[j].Value()
			buf.used = copy(buf.data, fill)
			result.Acquired++
		}
		for j, g := range guards {
			if cfg.Consume > 0 && r.Float64() < cfg.Consume {
				_ = g.IntoInner()
				result.Consumed++
			} else {
				g.Release()
			}
			guards[j] = nil
		}
	}
	result.Elapsed = time.Since(start)
	return result
}

var fill = []byte("bpool")

// Reuse is the fraction of acquisitions satisfied by a spare rather than the factory.
func (self *Report) Reuse() float64 {
	if self.Acquired == 0 {
		return 0
	}
	return 1.0 - float64(self.Allocated)/float64(self.Acquired)
}

// Values describes the run for its run.id.
func (self *Report) Values(opts *bpool.Options, cfg *Config) map[string]string {
	return map[string]string{
		"limit":        strconv.Itoa(opts.Limit),
		"pre_allocate": strconv.Itoa(opts.PreAllocate),
		"initialize":   strconv.FormatBool(opts.Initialize),
		"workers":      strconv.Itoa(cfg.Workers),
		"iterations":   strconv.Itoa(cfg.Iterations),
		"hold":         strconv.Itoa(cfg.Hold),
		"buffer_sz":    strconv.Itoa(cfg.BufferSz),
		"consume":      strconv.FormatFloat(cfg.Consume, 'f', -1, 64),
		"reuse":        strconv.FormatFloat(self.Reuse(), 'f', 4, 64),
	}
}

func (self *Report) Log() {
	it := self.Workers.Iterator()
	for it.Next() {
		result := it.Value().(*WorkerResult)
		logrus.Infof("worker [#%d] acquired [%d], consumed [%d] in [%s]", it.Key(), result.Acquired, result.Consumed, result.Elapsed)
	}
	logrus.Infof("acquired [%d], allocated [%d], consumed [%d], reuse [%.2f%%]", self.Acquired, self.Allocated, self.Consumed, self.Reuse()*100.0)
	logrus.Infof("spares [%d/%d] after [%s]", self.FinalLen, self.Limit, self.Elapsed)
}
