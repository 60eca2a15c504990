package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAdvance(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.handleAdvance(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"grid":        "-----\n-----\n-***-\n-----\n-----\n",
		"generations": float64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "-----\n--*--\n--*--\n--*--\n-----\n", resp.Grid)
	assert.Equal(t, 1, resp.Generations)
	assert.Equal(t, 3, resp.Population)
	assert.Len(t, resp.Rows, 5)
}

func TestHandleAdvance_DefaultsToOneGeneration(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.handleAdvance(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"grid": "*--\n---\n---",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Generations)
	assert.Equal(t, 0, resp.Population)
}

func TestHandleAdvance_Errors(t *testing.T) {
	s := NewServer(nil)
	ctx := context.Background()

	_, err := s.handleAdvance(ctx, mcp.CallToolRequest{}, map[string]interface{}{"grid": "-x-"})
	assert.Error(t, err)

	_, err = s.handleAdvance(ctx, mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)

	for _, gens := range []interface{}{float64(-2), float64(2.5), float64(MaxGenerations + 1), "3"} {
		_, err = s.handleAdvance(ctx, mcp.CallToolRequest{}, map[string]interface{}{
			"grid": "---", "generations": gens,
		})
		assert.Error(t, err, "generations %v", gens)
	}
}

func TestHandleAdvance_WorkBudget(t *testing.T) {
	s := NewServer(nil)

	// 64x128 cells for 10000 generations is above MaxCellUpdates.
	row := strings.Repeat("-", 128) + "\n"
	_, err := s.handleAdvance(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"grid":        strings.Repeat(row, 64),
		"generations": float64(MaxGenerations),
	})
	assert.ErrorContains(t, err, "cell updates")
}

func TestHandleGetPattern(t *testing.T) {
	s := NewServer(nil)

	resp, err := s.handleGetPattern(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"name": "demo"})
	require.NoError(t, err)
	assert.Equal(t, "---*-----\n----*----\n--***----\n---------\n---------\n", resp.Grid)
	assert.Equal(t, 10, resp.Generations)

	_, err = s.handleGetPattern(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"name": "nope"})
	assert.Error(t, err)
}
