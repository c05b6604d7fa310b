package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/nveloso/pipeflow/internal/board"
	"github.com/nveloso/pipeflow/internal/lead"
	"github.com/nveloso/pipeflow/internal/pipeline"
)

type pipelineResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type stageResponse struct {
	ID              uuid.UUID  `json:"id"`
	PipelineID      uuid.UUID  `json:"pipeline_id"`
	Name            string     `json:"name"`
	Color           string     `json:"color,omitempty"`
	Order           int        `json:"order"`
	IsRevenue       bool       `json:"is_revenue"`
	IsInput         bool       `json:"is_input"`
	DefaultAssignee *uuid.UUID `json:"default_assignee,omitempty"`
}

type leadResponse struct {
	ID           uuid.UUID  `json:"id"`
	StageID      *uuid.UUID `json:"stage_id,omitempty"`
	CustomerName string     `json:"customer_name"`
	Value        int64      `json:"value"`
	IsRevenue    bool       `json:"is_revenue"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	Assignee     *uuid.UUID `json:"assignee,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type columnResponse struct {
	Stage stageResponse  `json:"stage"`
	Leads []leadResponse `json:"leads"`
	Total int64          `json:"total"`
}

type boardResponse struct {
	Pipeline pipelineResponse `json:"pipeline"`
	Columns  []columnResponse `json:"columns"`
}

func toPipelineResponse(p *pipeline.Pipeline) pipelineResponse {
	return pipelineResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func toPipelineList(pipelines []*pipeline.Pipeline) []pipelineResponse {
	resp := make([]pipelineResponse, len(pipelines))
	for i, p := range pipelines {
		resp[i] = toPipelineResponse(p)
	}

	return resp
}

func toStageResponse(st *pipeline.Stage) stageResponse {
	return stageResponse{
		ID:              st.ID,
		PipelineID:      st.PipelineID,
		Name:            st.Name,
		Color:           st.Color,
		Order:           st.Order,
		IsRevenue:       st.IsRevenue,
		IsInput:         st.IsInput,
		DefaultAssignee: st.DefaultAssignee,
	}
}

func toLeadResponse(l *lead.Lead) leadResponse {
	return leadResponse{
		ID:           l.ID,
		StageID:      l.StageID,
		CustomerName: l.CustomerName,
		Value:        l.Value,
		IsRevenue:    l.IsRevenue,
		ClosedAt:     l.ClosedAt,
		Assignee:     l.Assignee,
		CreatedAt:    l.CreatedAt,
	}
}

func toBoardResponse(b *board.Board) boardResponse {
	columns := make([]columnResponse, len(b.Columns))

	for i, col := range b.Columns {
		leads := make([]leadResponse, len(col.Leads))
		for j, l := range col.Leads {
			leads[j] = toLeadResponse(l)
		}

		columns[i] = columnResponse{
			Stage: toStageResponse(col.Stage),
			Leads: leads,
			Total: col.Total,
		}
	}

	return boardResponse{
		Pipeline: toPipelineResponse(b.Pipeline),
		Columns:  columns,
	}
}
