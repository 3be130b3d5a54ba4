package reminder

import (
	"sync"
	"time"
)

var _ observer = &observerMock{}

type observerMock struct {
	RecordSweepFunc    func(trigger string, duration time.Duration, err error)
	RecordReminderFunc func(outcome string)

	calls struct {
		RecordSweep []struct {
			Trigger  string
			Duration time.Duration
			Err      error
		}
		RecordReminder []struct {
			Outcome string
		}
	}
	lockRecordSweep    sync.RWMutex
	lockRecordReminder sync.RWMutex
}

func (mock *observerMock) RecordSweep(trigger string, duration time.Duration, err error) {
	if mock.RecordSweepFunc == nil {
		panic("observerMock.RecordSweepFunc: method is nil but observer.RecordSweep was just called")
	}
	callInfo := struct {
		Trigger  string
		Duration time.Duration
		Err      error
	}{Trigger: trigger, Duration: duration, Err: err}
	mock.lockRecordSweep.Lock()
	mock.calls.RecordSweep = append(mock.calls.RecordSweep, callInfo)
	mock.lockRecordSweep.Unlock()
	mock.RecordSweepFunc(trigger, duration, err)
}

func (mock *observerMock) RecordSweepCalls() []struct {
	Trigger  string
	Duration time.Duration
	Err      error
} {
	mock.lockRecordSweep.RLock()
	calls := mock.calls.RecordSweep
	mock.lockRecordSweep.RUnlock()
	return calls
}

func (mock *observerMock) RecordReminder(outcome string) {
	if mock.RecordReminderFunc == nil {
		panic("observerMock.RecordReminderFunc: method is nil but observer.RecordReminder was just called")
	}
	callInfo := struct {
		Outcome string
	}{Outcome: outcome}
	mock.lockRecordReminder.Lock()
	mock.calls.RecordReminder = append(mock.calls.RecordReminder, callInfo)
	mock.lockRecordReminder.Unlock()
	mock.RecordReminderFunc(outcome)
}

func (mock *observerMock) RecordReminderCalls() []struct {
	Outcome string
} {
	mock.lockRecordReminder.RLock()
	calls := mock.calls.RecordReminder
	mock.lockRecordReminder.RUnlock()
	return calls
}
