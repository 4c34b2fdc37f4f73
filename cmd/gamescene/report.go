package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/gamescene/frame"
)

type Report struct {
	Variant    string
	TPS        int
	TotalTime  time.Duration
	UpdateTime Stats
	DrawTime   Stats
	Scheduler  *frame.SchedulerStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Scene Frame Report

## Run
- **Variant:** {{.Variant}}
- **Target TPS:** {{.TPS}}
- **Wall Time:** {{.TotalTime}}
- **Frames:** {{len .UpdateTime.Samples}} updates, {{len .DrawTime.Samples}} draws

## Update (controller)
- **Avg:** {{.UpdateTime.Avg}}
- **Min:** {{.UpdateTime.Min}}
- **Max:** {{.UpdateTime.Max}}

## Draw
- **Avg:** {{.DrawTime.Avg}}
- **Min:** {{.DrawTime.Min}}
- **Max:** {{.DrawTime.Max}}
{{if .Scheduler}}
## Systems
{{range .Scheduler.Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}{{end}}`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
