package board_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nveloso/pipeflow/internal/board"
	"github.com/nveloso/pipeflow/internal/lead"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

func TestBuild(t *testing.T) {
	businessID := uuid.New()
	p := &pipeline.Pipeline{ID: uuid.New(), BusinessID: businessID, Name: "Sales"}

	// Orders are sparse and the input is unsorted on purpose.
	s1 := &pipeline.Stage{ID: uuid.New(), PipelineID: p.ID, Name: "New", Order: 1}
	s2 := &pipeline.Stage{ID: uuid.New(), PipelineID: p.ID, Name: "Qualified", Order: 4}
	s3 := &pipeline.Stage{ID: uuid.New(), PipelineID: p.ID, Name: "Won", Order: 9, IsRevenue: true}

	active := func(stage *pipeline.Stage, value int64) *lead.Lead {
		id := stage.ID
		return &lead.Lead{ID: uuid.New(), BusinessID: businessID, StageID: &id, Value: value}
	}

	closedAt := time.Now().UTC()
	closed := &lead.Lead{ID: uuid.New(), BusinessID: businessID, ClosedAt: &closedAt, Value: 9999}

	b := board.Build(p,
		[]*pipeline.Stage{s2, s3, s1},
		[]*lead.Lead{active(s1, 1000), active(s2, 2500), active(s1, 500), closed},
	)

	require.Len(t, b.Columns, 3)
	assert.Equal(t, "New", b.Columns[0].Stage.Name)
	assert.Equal(t, "Qualified", b.Columns[1].Stage.Name)
	assert.Equal(t, "Won", b.Columns[2].Stage.Name)

	assert.Len(t, b.Columns[0].Leads, 2)
	assert.Equal(t, int64(1500), b.Columns[0].Total)
	assert.Len(t, b.Columns[1].Leads, 1)
	assert.Equal(t, int64(2500), b.Columns[1].Total)
	assert.Empty(t, b.Columns[2].Leads)

	// Closed leads never appear on the board.
	for _, col := range b.Columns {
		for _, l := range col.Leads {
			assert.Nil(t, l.ClosedAt)
		}
	}

	col := b.Column(s2.ID)
	require.NotNil(t, col)
	assert.Equal(t, "Qualified", col.Stage.Name)
	assert.Nil(t, b.Column(uuid.New()))
}

func TestBuild_EmptyPipeline(t *testing.T) {
	p := &pipeline.Pipeline{ID: uuid.New(), Name: "Empty"}

	b := board.Build(p, nil, nil)

	assert.Empty(t, b.Columns)
	assert.Equal(t, p, b.Pipeline)
}
