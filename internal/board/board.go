package board

import (
	"sort"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/lead"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

// Board is the in-memory projection of one pipeline: its stages in
// display order, each carrying the active leads that occupy it. A board
// is never patched in place; every mutation and every external change
// notification throws it away and rebuilds it from a fresh fetch.
type Board struct {
	Pipeline *pipeline.Pipeline
	Columns  []Column
}

// Column is one stage plus its occupants and their summed value.
type Column struct {
	Stage *pipeline.Stage
	Leads []*lead.Lead
	Total int64 // Sum of lead values in cents
}

// Build assembles a board from a stage list and a lead list. Stages are
// sorted by their order value; leads are grouped into their stage's
// column. Closed leads carry no stage and never appear.
func Build(p *pipeline.Pipeline, stages []*pipeline.Stage, leads []*lead.Lead) *Board {
	sorted := make([]*pipeline.Stage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	byStage := make(map[uuid.UUID][]*lead.Lead)

	for _, l := range leads {
		if l.Closed() || l.StageID == nil {
			continue
		}

		byStage[*l.StageID] = append(byStage[*l.StageID], l)
	}

	columns := make([]Column, len(sorted))
	for i, st := range sorted {
		occupants := byStage[st.ID]

		var total int64
		for _, l := range occupants {
			total += l.Value
		}

		columns[i] = Column{Stage: st, Leads: occupants, Total: total}
	}

	return &Board{Pipeline: p, Columns: columns}
}

// Column returns the column holding the given stage, or nil.
func (b *Board) Column(stageID uuid.UUID) *Column {
	for i := range b.Columns {
		if b.Columns[i].Stage.ID == stageID {
			return &b.Columns[i]
		}
	}

	return nil
}
