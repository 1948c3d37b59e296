package orchestrator

import "github.com/monument-ringing/monument/compose"

// UpdateKind tags Update's sum-type variant — spec.md §6's update stream:
// Comp(composition), Progress{...}, Aborting.
type UpdateKind uint8

const (
	UpdateComp UpdateKind = iota
	UpdateProgress
	UpdateAborting
)

// Progress is one worker's periodic frontier report, accumulated with the
// running composition-count/length statistics only the collector (this
// package) tracks across a worker's emitted compositions.
type Progress struct {
	IterCount       int
	NumComps        int
	QueueLen        int
	AvgLength       float64
	MaxLength       int
	TruncatingQueue bool
}

// Update is one message on the orchestrator's update channel. Comp is set
// only when Kind == UpdateComp; Progress only when Kind == UpdateProgress.
type Update struct {
	Kind     UpdateKind
	Comp     *compose.Composition
	Progress Progress
}
