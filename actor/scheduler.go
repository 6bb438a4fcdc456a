/*
 * MIT License
 *
 * Copyright (c) 2025 Vincent Maciejewski, M2 Tech
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/vincent212/actors-go/log"
)

// ErrSchedulerNotStarted is returned when a timer is requested before
// Start.
var ErrSchedulerNotStarted = errors.New("scheduler has not started")

// Scheduler delivers Timeout messages to actors after a delay or at
// wall-clock interval boundaries. One Scheduler serves any number of
// actors.
type Scheduler struct {
	quartzScheduler quartz.Scheduler
	started         *atomic.Bool
	logger          log.Logger
}

// NewScheduler creates a stopped Scheduler.
func NewScheduler(logger log.Logger) *Scheduler {
	if logger == nil {
		logger = log.DefaultLogger
	}
	quartzScheduler, _ := quartz.NewStdScheduler(
		quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))
	return &Scheduler{
		quartzScheduler: quartzScheduler,
		started:         atomic.NewBool(false),
		logger:          logger,
	}
}

// Start begins executing scheduled timers.
func (s *Scheduler) Start(ctx context.Context) {
	s.quartzScheduler.Start(ctx)
	s.started.Store(s.quartzScheduler.IsStarted())
	s.logger.Info("timer scheduler started")
}

// Stop cancels pending timers and shuts the scheduler down.
func (s *Scheduler) Stop() {
	_ = s.quartzScheduler.Clear()
	s.quartzScheduler.Stop()
	s.quartzScheduler.Wait(context.Background())
	s.started.Store(false)
	s.logger.Info("timer scheduler stopped")
}

// WakeIn delivers Timeout{Data: data} to target after the given delay.
func (s *Scheduler) WakeIn(target Ref, delay time.Duration, data int) error {
	if !s.started.Load() {
		return ErrSchedulerNotStarted
	}
	return s.schedule(target, delay, data)
}

// WakeAt delivers Timeout{Data: data} to target at the next wall-clock
// multiple of interval since midnight. An actor that wants a periodic
// tick re-arms from its Timeout handler.
func (s *Scheduler) WakeAt(target Ref, interval time.Duration, data int) error {
	if !s.started.Load() {
		return ErrSchedulerNotStarted
	}
	if interval <= 0 {
		return errors.New("interval must be positive")
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sinceMidnight := now.Sub(midnight)
	wait := interval - sinceMidnight%interval

	return s.schedule(target, wait, data)
}

func (s *Scheduler) schedule(target Ref, delay time.Duration, data int) error {
	fn := job.NewFunctionJob[bool](func(context.Context) (bool, error) {
		target.Post(&Timeout{Data: data}, nil)
		return true, nil
	})
	key := fmt.Sprintf("timeout-%s-%s", target.Name(), uuid.NewString())
	detail := quartz.NewJobDetail(fn, quartz.NewJobKey(key))
	if err := s.quartzScheduler.ScheduleJob(detail, quartz.NewRunOnceTrigger(delay)); err != nil {
		return errors.Wrapf(err, "schedule timeout for %s", target.Name())
	}
	return nil
}
