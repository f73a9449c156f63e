package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/section-planner/pkg/model"
)

func scored(id string, score int) model.ScoredSchedule {
	return model.ScoredSchedule{Schedule: model.Schedule{id}, Score: score}
}

func TestRankGroupsAscendingAndStable(t *testing.T) {
	ranking := Rank([]model.ScoredSchedule{
		scored("a", 40), scored("b", -10), scored("c", 40), scored("d", 25), scored("e", -10), scored("f", 40),
	})

	require.Len(t, ranking, 3)
	assert.Equal(t, []int{-10, 25, 40}, []int{ranking[0].Score, ranking[1].Score, ranking[2].Score})
	assert.Equal(t, []model.ScoredSchedule{scored("b", -10), scored("e", -10)}, ranking[0].Schedules)
	assert.Equal(t, []model.ScoredSchedule{scored("a", 40), scored("c", 40), scored("f", 40)}, ranking[2].Schedules)
	assert.Equal(t, 6, ranking.Len())

	group, ok := ranking.Lookup(25)
	require.True(t, ok)
	assert.Equal(t, "(d)", group[0].Schedule.String())
	_, ok = ranking.Lookup(0)
	assert.False(t, ok)
}

func TestRankEmpty(t *testing.T) {
	ranking := Rank(nil)
	assert.NotNil(t, ranking)
	assert.Empty(t, ranking)
	assert.Empty(t, ranking.Flatten())
}

func TestRankDoesNotReorderInput(t *testing.T) {
	in := []model.ScoredSchedule{scored("a", 3), scored("b", 1)}
	Rank(in)
	assert.Equal(t, "a", in[0].Schedule[0])
}

// Scores over real generator output stay non-decreasing and each group keeps
// generation order.
func TestRankGeneratedSchedules(t *testing.T) {
	catalog := wideCatalog(t)
	accepted, err := collect(t, catalog, wideCourses, NewConstraints(nil, window(t, 7, 14)))
	require.NoError(t, err)

	position := make(map[string]int, len(accepted))
	scorer := defaultScorer("prof 4")
	var all []model.ScoredSchedule
	for i, s := range accepted {
		position[s.String()] = i
		ss, err := scorer.Score(catalog, s)
		require.NoError(t, err)
		all = append(all, ss)
	}

	flat := Rank(all).Flatten()
	require.Len(t, flat, len(accepted))
	for i := 1; i < len(flat); i++ {
		prev, cur := flat[i-1], flat[i]
		require.LessOrEqual(t, prev.Score, cur.Score)
		if prev.Score == cur.Score {
			require.Less(t, position[prev.Schedule.String()], position[cur.Schedule.String()])
		}
	}
}
