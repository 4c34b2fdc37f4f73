package frame_test

import (
	"testing"

	"github.com/plus3/gamescene/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	LastDelta    float64
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(f *frame.UpdateFrame) {
	s.ExecuteCount++
	s.LastDelta = f.DeltaTime
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

func TestScheduler(t *testing.T) {
	t.Run("systems execute in registration order", func(t *testing.T) {
		var order []string
		scheduler := frame.NewScheduler()
		scheduler.Register(&countingSystem{order: &order, name: "first"})
		scheduler.Register(&countingSystem{order: &order, name: "second"})
		scheduler.Register(&countingSystem{order: &order, name: "third"})

		scheduler.Once(1.0 / 60.0)
		scheduler.Once(1.0 / 60.0)

		assert.Equal(t, []string{"first", "second", "third", "first", "second", "third"}, order)
		assert.Equal(t, uint64(2), scheduler.Frames())
	})

	t.Run("delta time is passed through", func(t *testing.T) {
		scheduler := frame.NewScheduler()
		system := &countingSystem{}
		scheduler.Register(system)

		scheduler.Once(0.5)
		assert.Equal(t, 0.5, system.LastDelta)

		scheduler.Once(0.25)
		assert.Equal(t, 0.25, system.LastDelta)
		assert.Equal(t, 2, system.ExecuteCount)
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		var order []string
		scheduler := frame.NewScheduler()
		scheduler.Register(frame.SystemFunc(func(f *frame.UpdateFrame) {
			f.Commands.Defer(func() { order = append(order, "deferred") })
			order = append(order, "a")
		}))
		scheduler.Register(frame.SystemFunc(func(f *frame.UpdateFrame) {
			order = append(order, "b")
		}))

		scheduler.Once(0)

		assert.Equal(t, []string{"a", "b", "deferred"}, order)
	})

	t.Run("frame index increments", func(t *testing.T) {
		var seen []uint64
		scheduler := frame.NewScheduler()
		scheduler.Register(frame.SystemFunc(func(f *frame.UpdateFrame) {
			seen = append(seen, f.Index)
		}))

		for i := 0; i < 3; i++ {
			scheduler.Once(0)
		}

		assert.Equal(t, []uint64{0, 1, 2}, seen)
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := frame.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(frame.SystemFunc(func(*frame.UpdateFrame) {}))

	stats := scheduler.GetStats()
	require.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)
	assert.Zero(t, stats.Systems[0].MinDuration)
	assert.Zero(t, stats.Systems[0].AvgDuration)

	for i := 0; i < 10; i++ {
		scheduler.Once(1.0 / 60.0)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, uint64(10), stats.FrameCount)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(10), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
		assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
		assert.GreaterOrEqual(t, s.TotalDuration, s.MaxDuration)
	}
}

func TestCommands(t *testing.T) {
	scheduler := frame.NewScheduler()
	var queued int
	calls := 0
	scheduler.Register(frame.SystemFunc(func(f *frame.UpdateFrame) {
		f.Commands.Defer(func() { calls++ })
		f.Commands.Defer(func() { calls++ })
		queued = f.Commands.Len()
	}))

	scheduler.Once(0)
	assert.Equal(t, 2, queued)
	assert.Equal(t, 2, calls)

	scheduler.Once(0)
	assert.Equal(t, 2, queued, "each frame starts with an empty buffer")
	assert.Equal(t, 4, calls)
}
