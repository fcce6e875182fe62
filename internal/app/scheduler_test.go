package app

import "testing"

func TestSchedulerRunsTasksInDueOrder(t *testing.T) {
	var sched scheduler
	var got []int

	sched.schedule(3, func() { got = append(got, 3) })
	sched.schedule(1, func() { got = append(got, 1) })
	sched.schedule(2, func() { got = append(got, 2) })

	for tick := int64(1); tick <= 5; tick++ {
		for sched.runNext(tick) {
		}
	}

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected tasks in due order [1 2 3], got %v", got)
	}
}

func TestSchedulerSameDueRunsInScheduleOrder(t *testing.T) {
	var sched scheduler
	var got []string

	sched.schedule(2, func() { got = append(got, "first") })
	sched.schedule(2, func() { got = append(got, "second") })

	for sched.runNext(2) {
	}

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected schedule order preserved, got %v", got)
	}
}

func TestSchedulerCancelAllDropsPending(t *testing.T) {
	var sched scheduler
	ran := false

	sched.schedule(1, func() { ran = true })
	sched.cancelAll()

	for sched.runNext(10) {
	}
	if ran {
		t.Fatal("cancelled task should not run")
	}
}

func TestSchedulerEpochOrphansChainedTasks(t *testing.T) {
	var sched scheduler
	var got []string

	sched.schedule(1, func() {
		got = append(got, "outer")
		sched.cancelAll()
		sched.schedule(1, func() { got = append(got, "inner") })
	})
	sched.schedule(2, func() { got = append(got, "stale") })

	for tick := int64(1); tick <= 5; tick++ {
		for sched.runNext(tick) {
		}
	}

	if len(got) != 2 || got[0] != "outer" || got[1] != "inner" {
		t.Fatalf("expected [outer inner], got %v", got)
	}
}

func TestSchedulerGateReportsStaleEpoch(t *testing.T) {
	var sched scheduler

	gate := sched.gate()
	if !gate() {
		t.Fatal("fresh gate should pass")
	}
	sched.cancelAll()
	if gate() {
		t.Fatal("gate issued before cancelAll should fail after it")
	}
}

func TestSchedulerMinimumDelayIsOneTick(t *testing.T) {
	var sched scheduler
	ran := false

	sched.now = 5
	sched.schedule(0, func() { ran = true })

	if sched.runNext(5) && ran {
		t.Fatal("task with clamped delay must not run on the scheduling tick")
	}
	for sched.runNext(6) {
	}
	if !ran {
		t.Fatal("task should run one tick after scheduling")
	}
}
