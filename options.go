package bpool

import (
	"github.com/openziti/bpool/cf"
	"github.com/pkg/errors"
)

// Options carries the construction parameters of a pool in loadable form.
type Options struct {
	Limit       int  `cf:"limit"`
	PreAllocate int  `cf:"pre_allocate"`
	Initialize  bool `cf:"initialize"`
}

func DefaultOptions() *Options {
	return &Options{
		Limit:       64,
		PreAllocate: 0,
		Initialize:  false,
	}
}

func (self *Options) Load(data map[string]interface{}) error {
	if err := cf.Load(data, self); err != nil {
		return errors.Wrap(err, "unable to load pool options")
	}
	return self.Validate()
}

func (self *Options) Validate() error {
	if self.Limit < 0 {
		return errors.Errorf("invalid 'limit' value [%d]", self.Limit)
	}
	if self.PreAllocate < 0 {
		return errors.Errorf("invalid 'pre_allocate' value [%d]", self.PreAllocate)
	}
	return nil
}

func (self *Options) Dump() string {
	return cf.Dump("options", self)
}

func NewFromOptions[T any, F Factory[T]](opts *Options, factory F) *Pool[T, F] {
	return New[T, F](opts.Limit, opts.PreAllocate, opts.Initialize, factory)
}

func NewSharedFromOptions[T any, F Factory[T]](opts *Options, factory F) SharedPool[T, F] {
	return NewShared[T, F](opts.Limit, opts.PreAllocate, opts.Initialize, factory)
}
