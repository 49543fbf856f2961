package util

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Sample struct {
	Ts time.Time
	V  int64
}

// WriteSamples writes samples to <outPath>/<name>.csv as "unixNanos,value" lines.
func WriteSamples(name, outPath string, samples []*Sample) error {
	path := filepath.Join(outPath, fmt.Sprintf("%s.csv", name))
	oF, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = oF.Close() }()
	w := bufio.NewWriter(oF)
	for _, sample := range samples {
		if _, err := fmt.Fprintf(w, "%d,%d\n", sample.Ts.UnixNano(), sample.V); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	logrus.Infof("wrote [%d] samples to [%s]", len(samples), path)
	return nil
}

// ReadSamples reads a csv file produced by WriteSamples.
func ReadSamples(path string) ([]*Sample, error) {
	iF, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = iF.Close() }()

	var samples []*Sample
	scanner := bufio.NewScanner(iF)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		tokens := strings.Split(text, ",")
		if len(tokens) != 2 {
			return nil, errors.Errorf("malformed sample at [%s:%d]", path, line)
		}
		ts, err := strconv.ParseInt(tokens[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid timestamp at [%s:%d]", path, line)
		}
		v, err := strconv.ParseInt(tokens[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value at [%s:%d]", path, line)
		}
		samples = append(samples, &Sample{Ts: time.Unix(0, ts), V: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// Sampler periodically records the value returned by its probe.
type Sampler struct {
	probe   func() int64
	samples []*Sample
	close   chan struct{}
	done    chan struct{}
	lock    sync.Mutex
}

func NewSampler(probe func() int64) *Sampler {
	return &Sampler{probe: probe}
}

func (self *Sampler) Start(interval time.Duration) {
	self.close = make(chan struct{})
	self.done = make(chan struct{})
	go self.run(interval)
}

// Stop ends sampling, takes one last sample and returns everything recorded.
func (self *Sampler) Stop() []*Sample {
	close(self.close)
	<-self.done
	self.sample()
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.samples
}

func (self *Sampler) run(interval time.Duration) {
	defer close(self.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			self.sample()
		case <-self.close:
			return
		}
	}
}

func (self *Sampler) sample() {
	v := self.probe()
	self.lock.Lock()
	self.samples = append(self.samples, &Sample{Ts: time.Now(), V: v})
	self.lock.Unlock()
}
