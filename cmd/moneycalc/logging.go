package main

import (
	"fmt"
	"time"

	"github.com/go-kit/log"
)

// loggingCalculator decorates a Calculator with logging
type loggingCalculator struct {
	logger log.Logger
	next   Calculator
}

// NewLoggingCalculator returns a new instance of a logging Calculator
func NewLoggingCalculator(logger log.Logger, c Calculator) Calculator {
	return &loggingCalculator{
		next:   c,
		logger: logger,
	}
}

func (c *loggingCalculator) Eval(op string, args []string) (result string, err error) {
	defer func(begin time.Time) {
		c.logger.Log(
			"method", op,
			"args", fmt.Sprintf("%q", args),
			"result", result,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Eval(op, args)
}
