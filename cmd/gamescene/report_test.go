package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/gamescene/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	scheduler := frame.NewScheduler()
	scheduler.Register(frame.SystemFunc(func(*frame.UpdateFrame) {}))
	scheduler.Once(0)

	r := &Report{
		Variant:    "steer",
		TPS:        60,
		TotalTime:  time.Second,
		UpdateTime: Stats{Samples: []time.Duration{time.Millisecond}},
		DrawTime:   Stats{Samples: []time.Duration{2 * time.Millisecond, 4 * time.Millisecond}},
		Scheduler:  scheduler.GetStats(),
	}
	r.UpdateTime.Finalize()
	r.DrawTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Variant:** steer")
	assert.Contains(t, out, "1 updates, 2 draws")
	assert.Contains(t, out, "**Avg:** 3ms")
	assert.Contains(t, out, "- SystemFunc: 1 runs")
}
