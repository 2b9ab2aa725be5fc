package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cooked/internal/app"
	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/alexanderramin/cooked/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStressService_Evaluate(t *testing.T) {
	svc := NewStressService()
	now := testutil.Now

	resp, err := svc.Evaluate(context.Background(), app.StressRequest{
		Now: &now,
		Assignments: []domain.Assignment{
			{ID: "a", Name: "A", Weight: 40, Deadline: testutil.Day(20)},
			{ID: "b", Name: "B", Weight: 10, Deadline: testutil.Day(2)},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Result)
	require.Len(t, resp.Contributions, 2)
	assert.Equal(t, "a", resp.Contributions[0].AssignmentID)

	sum := resp.Contributions[0].Contribution + resp.Contributions[1].Contribution
	assert.InDelta(t, resp.Result.Score, sum, 1e-9)
}

func TestStressService_EmptyBatch(t *testing.T) {
	resp, err := NewStressService().Evaluate(context.Background(), app.StressRequest{})
	require.NoError(t, err)

	assert.Nil(t, resp.Result)
	assert.Empty(t, resp.Contributions)
}
