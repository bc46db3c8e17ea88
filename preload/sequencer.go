// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preload sequences the greeting intro shown before the galaxy:
// each greeting is held for a fixed step, then a completion signal
// fires once after a short fade.
package preload

import (
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
)

// Greetings are the default greetings, in display order.
var Greetings = []string{
	"Hello, Welcome",
	"欢迎光临",
	"ようこそ",
	"Ciao, Benvenuto",
	"Willkommen",
	"Добро пожаловать",
	"Selamat Datang",
	"வணக்கம்",
	"नमस्ते",
	"Hola, Bienvenido",
	"Bienvenue",
}

const (
	// DefaultStep is the default hold time of each greeting.
	DefaultStep = 400 * time.Millisecond

	// DefaultFinish is the default fade time between the end of the
	// last greeting and the completion signal.
	DefaultFinish = 500 * time.Millisecond
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler schedules a function to run once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeScheduler is the [Scheduler] based on [time.AfterFunc].
// Functions run on their own goroutine.
type TimeScheduler struct{}

func (TimeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Sequencer is a small state machine with an index and a done flag,
// advanced by a single scheduled callback at a time. It is safe to
// call its methods from any goroutine.
type Sequencer struct {

	// Greetings are the greetings to show, in order.
	Greetings []string

	// Step is the hold time of each greeting.
	Step time.Duration

	// Finish is the delay between the end of the last greeting's hold
	// time and the completion signal.
	Finish time.Duration

	// OnHide, if set, is called when the last greeting's hold time has
	// elapsed, at the start of the Finish fade.
	OnHide func()

	sched Scheduler

	mu sync.Mutex

	index int

	started, hidden, done, stopped bool

	timer Timer

	onStep func(i int, greeting string)

	onDone func()
}

// New returns a new sequencer. If sch is nil, a [TimeScheduler] is used.
func New(greetings []string, step, finish time.Duration, sch Scheduler) *Sequencer {
	if sch == nil {
		sch = TimeScheduler{}
	}
	return &Sequencer{Greetings: greetings, Step: step, Finish: finish, sched: sch}
}

// Start shows the first greeting immediately by calling onStep, then
// each following greeting after Step, and calls onDone exactly once
// Finish after the last greeting's hold time has elapsed. With N
// greetings, onDone therefore fires no earlier than N*Step.
// Callbacks run on the scheduler's goroutine and must not call [Sequencer.Stop].
func (sq *Sequencer) Start(onStep func(i int, greeting string), onDone func()) error {
	sq.mu.Lock()
	if sq.started {
		sq.mu.Unlock()
		return errors.New("preload.Sequencer: already started")
	}
	sq.started = true
	sq.onStep = onStep
	sq.onDone = onDone
	if len(sq.Greetings) == 0 {
		sq.hidden = true
		sq.timer = sq.sched.AfterFunc(sq.Finish, sq.finish)
		sq.mu.Unlock()
		return nil
	}
	sq.timer = sq.sched.AfterFunc(sq.Step, sq.advance)
	sq.mu.Unlock()
	sq.emit(0)
	return nil
}

// emit calls onStep for greeting i unless the sequencer was stopped.
func (sq *Sequencer) emit(i int) {
	sq.mu.Lock()
	if sq.stopped || sq.onStep == nil {
		sq.mu.Unlock()
		return
	}
	f := sq.onStep
	sq.mu.Unlock()
	logx.PrintlnDebug("preload: greeting", i)
	f(i, sq.Greetings[i])
}

func (sq *Sequencer) advance() {
	sq.mu.Lock()
	if sq.stopped {
		sq.mu.Unlock()
		return
	}
	sq.index++
	if sq.index < len(sq.Greetings) {
		i := sq.index
		sq.timer = sq.sched.AfterFunc(sq.Step, sq.advance)
		sq.mu.Unlock()
		sq.emit(i)
		return
	}
	sq.hidden = true
	sq.timer = sq.sched.AfterFunc(sq.Finish, sq.finish)
	sq.mu.Unlock()
	sq.hide()
}

// hide calls OnHide unless the sequencer was stopped.
func (sq *Sequencer) hide() {
	sq.mu.Lock()
	if sq.stopped || sq.OnHide == nil {
		sq.mu.Unlock()
		return
	}
	f := sq.OnHide
	sq.mu.Unlock()
	f()
}

func (sq *Sequencer) finish() {
	sq.mu.Lock()
	if sq.stopped || sq.done {
		sq.mu.Unlock()
		return
	}
	sq.done = true
	sq.timer = nil
	f := sq.onDone
	sq.mu.Unlock()
	if f != nil {
		f()
	}
}

// Stop cancels the pending callback. No callback starts after Stop
// returns; a callback that is already running is not waited for.
// Stop is safe to call more than once and before Start.
func (sq *Sequencer) Stop() {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	sq.stopped = true
	if sq.timer != nil {
		sq.timer.Stop()
		sq.timer = nil
	}
}

// Index returns the index of the greeting currently shown.
// It equals the number of greetings once the last one has been hidden.
func (sq *Sequencer) Index() int {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	if sq.hidden {
		return len(sq.Greetings)
	}
	return sq.index
}

// Progress returns the fraction of greetings that have been completed, in [0, 1].
func (sq *Sequencer) Progress() float32 {
	n := len(sq.Greetings)
	if n == 0 {
		return 1
	}
	return float32(sq.Index()) / float32(n)
}

// Done returns whether the completion signal has fired.
func (sq *Sequencer) Done() bool {
	sq.mu.Lock()
	defer sq.mu.Unlock()
	return sq.done
}
