package data_access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage[0].Key)
	}
	return names
}

func TestPagePipeline(t *testing.T) {
	tests := []struct {
		name   string
		skip   int
		limit  int
		stages []string
	}{
		{"skip and limit", 20, 10, []string{"$skip", "$limit"}},
		{"first page", 0, 10, []string{"$limit"}},
		// A zero limit must not emit $limit: the server rejects $limit: 0.
		{"zero limit", 0, 0, []string{}},
		{"zero limit with skip", 20, 0, []string{"$skip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagePipeline(tt.skip, tt.limit)
			assert.Equal(t, tt.stages, stageNames(p))
		})
	}
}

func TestPagePipelineValues(t *testing.T) {
	p := pagePipeline(30, 15)
	require.Len(t, p, 2)
	assert.Equal(t, 30, p[0][0].Value)
	assert.Equal(t, 15, p[1][0].Value)
}
