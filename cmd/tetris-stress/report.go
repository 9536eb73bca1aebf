package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetris/game"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Height   int
	Width    int
	Seed     int64
	Frame    time.Duration

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	TickTime       Stats
	GamesFinished  int
	PiecesPlaced   int
	LinesCleared   int
	BestScore      int
	Systems        []SystemTotals
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// SystemTotals sums one system's execution stats across sessions.
type SystemTotals struct {
	Name       string
	Executions int64
	Total      time.Duration
	Max        time.Duration
}

func (t SystemTotals) Avg() time.Duration {
	if t.Executions == 0 {
		return 0
	}
	return t.Total / time.Duration(t.Executions)
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
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect adds a session's game results and scheduler timings. Pieces and
// lines of earlier games are lost on restart, so only the current game counts
// towards them.
func (r *Report) Collect(session *game.Session, finished int) {
	state := session.State()
	r.GamesFinished += finished
	r.PiecesPlaced += state.PiecesPlaced
	r.LinesCleared += state.Lines
	r.BestScore = max(r.BestScore, state.Score)

	for i, sys := range session.Scheduler().Stats().Systems {
		if i == len(r.Systems) {
			r.Systems = append(r.Systems, SystemTotals{Name: sys.Name})
		}
		totals := &r.Systems[i]
		totals.Executions += sys.ExecutionCount
		totals.Total += sys.TotalDuration
		totals.Max = max(totals.Max, sys.MaxDuration)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}} ({{.Height}}x{{.Width}}, base seed {{.Seed}})
- **Simulated Frame:** {{.Frame}}

## Game Results
- **Games Finished:** {{.GamesFinished}}
- **Pieces Placed (current games):** {{.PiecesPlaced}}
- **Lines Cleared (current games):** {{.LinesCleared}}
- **Best Score:** {{.BestScore}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (all sessions):**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Systems
| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.Executions}} | {{.Avg}} | {{.Max}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
