package engine

import (
	"reflect"
	"time"
)

// PipelineStats provides statistics about stage execution.
type PipelineStats struct {
	StageCount      int
	Events          int64
	Failed          int64
	TotalExecutions int64
	Stages          []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Pipeline runs stages in order and records how long each one takes.
type Pipeline struct {
	stages     []Stage
	stageStats []*stageStatsInternal
	events     int64
	failed     int64
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		stages: make([]Stage, 0),
	}
}

// Register appends a stage. Its statistics are reported under the stage's type
// name.
func (p *Pipeline) Register(stage Stage) {
	p.stages = append(p.stages, stage)

	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}

	p.stageStats = append(p.stageStats, &stageStatsInternal{
		name:        stageType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs every stage against frame and then flushes the frame's signals to
// the listener. If a stage fails the frame, the remaining stages are skipped
// and the signals are dropped.
func (p *Pipeline) Once(frame *Frame, listener Listener) {
	p.events++

	for i, stage := range p.stages {
		if frame.err != nil {
			break
		}

		start := time.Now()
		stage.Execute(frame)
		duration := time.Since(start)

		stats := p.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	if frame.err != nil {
		p.failed++
		frame.Signals.reset()
		return
	}
	frame.Signals.Flush(listener)
}

// GetStats returns statistics about stage execution.
func (p *Pipeline) GetStats() *PipelineStats {
	stats := &PipelineStats{
		StageCount: len(p.stages),
		Events:     p.events,
		Failed:     p.failed,
		Stages:     make([]StageStats, len(p.stageStats)),
	}

	var totalExecs int64
	for i, internal := range p.stageStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
