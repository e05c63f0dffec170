package game_test

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everforgeworks/colony-defense/internal/game"
)

func seeded() game.Option {
	return game.WithRand(rand.New(rand.NewSource(7)))
}

func TestColony_NoWavesWinsImmediately(t *testing.T) {
	c, err := game.NewColony(nil, game.NewAssaultSchedule(3), game.TestLayout(), 2, seeded())
	require.NoError(t, err)

	assert.Equal(t, game.Won, c.RunToCompletion())
	assert.Equal(t, 1, c.Turn())
	assert.Equal(t, game.Concluded, c.State())
}

func TestColony_UndefendedAttackerReachesNest(t *testing.T) {
	schedule := game.NewAssaultSchedule(3).AddWave(0, 1)
	c, err := game.NewColony(nil, schedule, game.MixedLayout(1, 3, 0), 2, seeded())
	require.NoError(t, err)
	a := schedule.Wave(0)[0]
	assert.Same(t, c.Entry(), a.Location())

	for _, want := range []string{"tunnel_0_1", "tunnel_0_0"} {
		require.Equal(t, game.Continuing, c.Step())
		assert.Equal(t, want, a.Location().Name())
	}
	assert.Equal(t, game.Lost, c.Step())
	assert.Equal(t, 3, c.Turn())
	assert.Same(t, c.Goal(), a.Location())
	assert.Equal(t, 3, a.Armor())

	assert.Equal(t, game.Lost, c.Step(), "a concluded colony stays concluded")
	assert.Equal(t, 3, c.Turn())
}

func TestColony_TestAssaultWithoutDefenseIsLost(t *testing.T) {
	c, err := game.NewColony(nil, game.TestAssault(), game.TestLayout(), 2, seeded())
	require.NoError(t, err)
	assert.Equal(t, game.Lost, c.RunToCompletion())
}

func TestColony_ThrowersHoldTheTunnel(t *testing.T) {
	strategy := func(d game.Deployment) {
		if d.Turn() == 0 {
			require.NoError(t, d.DeployDefender("tunnel_0_0", game.ThrowerName))
			require.NoError(t, d.DeployDefender("tunnel_0_1", game.ThrowerName))
		}
	}
	c, err := game.NewColony(strategy, game.TestAssault(), game.TestLayout(), 10, seeded())
	require.NoError(t, err)

	assert.Equal(t, game.Won, c.RunToCompletion())
	assert.Equal(t, 5, c.Turn())
	assert.Empty(t, c.Attackers())
	assert.Equal(t, 2, c.Food())
}

func TestColony_StrategyRunsOncePerTurn(t *testing.T) {
	var turns []int
	strategy := func(d game.Deployment) { turns = append(turns, d.Turn()) }
	c, err := game.NewColony(strategy, game.TestAssault(), game.TestLayout(), 2, seeded())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		c.Step()
	}
	assert.Equal(t, []int{0, 1, 2}, turns)
}

func TestColony_InsufficientFoodChangesNothing(t *testing.T) {
	c, err := game.NewColony(nil, game.TestAssault(), game.TestLayout(), 3, seeded())
	require.NoError(t, err)

	err = c.DeployDefender("tunnel_0_4", game.ThrowerName)
	assert.True(t, errors.Is(err, game.ErrInsufficientFood))
	assert.Equal(t, 3, c.Food())
	l, err := c.Location("tunnel_0_4")
	require.NoError(t, err)
	assert.Nil(t, l.Defender())
	assert.Empty(t, c.Defenders())
}

func TestColony_DeployErrors(t *testing.T) {
	c, err := game.NewColony(nil, game.TestAssault(), game.TestLayout(), 20, seeded())
	require.NoError(t, err)

	testCases := []struct {
		name     string
		location string
		variant  string
		want     error
	}{
		{"unknown location", "tunnel_9_9", game.ThrowerName, game.ErrUnknownLocation},
		{"hive is not deployable", game.EntryName, game.ThrowerName, game.ErrUnknownLocation},
		{"nest is not deployable", game.GoalName, game.ThrowerName, game.ErrUnknownLocation},
		{"unknown variant", "tunnel_0_1", "Catapult", game.ErrUnknownVariant},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.DeployDefender(tc.location, tc.variant)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Equal(t, 20, c.Food())
		})
	}

	require.NoError(t, c.DeployDefender("tunnel_0_1", game.WallName))
	err = c.DeployDefender("tunnel_0_1", game.ThrowerName)
	assert.True(t, errors.Is(err, game.ErrOccupancyConflict))
	assert.Equal(t, 16, c.Food())
}

func TestColony_RemoveContainerRevealsContained(t *testing.T) {
	c, err := game.NewColony(nil, game.TestAssault(), game.TestLayout(), 10, seeded())
	require.NoError(t, err)

	require.NoError(t, c.DeployDefender("tunnel_0_2", game.BodyguardName))
	require.NoError(t, c.DeployDefender("tunnel_0_2", game.ThrowerName))
	require.NoError(t, c.RemoveDefender("tunnel_0_2"))

	l, err := c.Location("tunnel_0_2")
	require.NoError(t, err)
	require.NotNil(t, l.Defender())
	assert.Equal(t, game.ThrowerName, l.Defender().Name())
}

func TestColony_RemoveFromEmptyLocation(t *testing.T) {
	c, err := game.NewColony(nil, game.TestAssault(), game.TestLayout(), 10, seeded())
	require.NoError(t, err)

	assert.True(t, errors.Is(c.RemoveDefender("tunnel_0_2"), game.ErrNotPresent))
	assert.True(t, errors.Is(c.RemoveDefender("nowhere"), game.ErrUnknownLocation))
}

func TestColony_RemoverVacates(t *testing.T) {
	c, err := game.NewColony(nil, game.TestAssault(), game.TestLayout(), 10, seeded())
	require.NoError(t, err)

	require.NoError(t, c.DeployDefender("tunnel_0_2", game.WallName))
	require.NoError(t, c.DeployDefender("tunnel_0_2", game.RemoverName))
	assert.Empty(t, c.Defenders())
	assert.Equal(t, 6, c.Food())
}

func TestColony_EmitsEvents(t *testing.T) {
	var events []game.Event
	sink := game.WithEventSink(func(ev game.Event) { events = append(events, ev) })
	schedule := game.NewAssaultSchedule(1).AddWave(0, 1)
	c, err := game.NewColony(nil, schedule, game.TestLayout(), 10, seeded(), sink)
	require.NoError(t, err)

	require.NoError(t, c.DeployDefender("tunnel_0_6", game.ThrowerName))
	assert.Equal(t, game.Won, c.Step())

	var kinds []game.EventKind
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []game.EventKind{
		game.EventDeployed,
		game.EventReleased,
		game.EventExpired,
		game.EventConcluded,
	}, kinds)
	assert.Equal(t, "tunnel_0_7", events[1].Location)
	assert.Equal(t, "won", events[3].Detail)
}

func TestColony_DuplicateLocationNames(t *testing.T) {
	layout := func(goal *game.Location, register func(*game.Location, bool)) {
		register(game.NewLocation("same", goal), true)
		register(game.NewLocation("same", goal), false)
	}
	_, err := game.NewColony(nil, game.TestAssault(), layout, 2)
	assert.Error(t, err)
}

func TestColony_AttackersNeedAnEntry(t *testing.T) {
	layout := func(goal *game.Location, register func(*game.Location, bool)) {
		register(game.NewLocation("closed", goal), false)
	}
	_, err := game.NewColony(nil, game.TestAssault(), layout, 2)
	assert.Error(t, err)
}

func TestColony_WaterDrownsGroundedAttackers(t *testing.T) {
	schedule := game.NewAssaultSchedule(3).Grounded().AddWave(0, 1)
	c, err := game.NewColony(nil, schedule, game.MixedLayout(1, 3, 3), 2, seeded())
	require.NoError(t, err)

	// water_0_2 is the entry of a three-step tunnel with moats every third step.
	assert.Equal(t, game.Won, c.Step())
}

func TestColony_SnapshotListsTunnelsThenNest(t *testing.T) {
	c, err := game.NewColony(nil, game.TestAssault(), game.TestLayout(), 10, seeded())
	require.NoError(t, err)
	require.NoError(t, c.DeployDefender("tunnel_0_3", game.BodyguardName))
	require.NoError(t, c.DeployDefender("tunnel_0_3", game.HarvesterName))

	snap := c.Snapshot()
	require.Len(t, snap.Locations, 9)
	assert.Equal(t, game.GoalName, snap.Locations[8].Name)
	assert.True(t, snap.Locations[7].Entry)
	assert.Equal(t, 2, snap.QueuedAttackers)
	assert.Equal(t, []string{game.GoalName}, snap.Goals)

	guard := snap.Locations[3].Defender
	require.NotNil(t, guard)
	assert.Equal(t, game.BodyguardName, guard.Variant)
	require.NotNil(t, guard.Contained)
	assert.Equal(t, game.HarvesterName, guard.Contained.Variant)
}

func TestColony_DeployIntoWaterAnnouncesBeforeDrowning(t *testing.T) {
	var events []game.Event
	sink := game.WithEventSink(func(ev game.Event) { events = append(events, ev) })
	c, err := game.NewColony(nil, game.NewAssaultSchedule(3), game.MixedLayout(1, 8, 3), 10, seeded(), sink)
	require.NoError(t, err)

	require.NoError(t, c.DeployDefender("water_0_2", game.ThrowerName))
	assert.Equal(t, 6, c.Food())
	assert.Empty(t, c.Defenders())

	require.Len(t, events, 2)
	assert.Equal(t, game.EventDeployed, events[0].Kind)
	assert.Equal(t, game.EventExpired, events[1].Kind)
	assert.Equal(t, "water_0_2", events[1].Location)

	events = nil
	require.NoError(t, c.DeployDefender("water_0_2", game.ScubaName))
	assert.Len(t, c.Defenders(), 1)
	require.Len(t, events, 1)
	assert.Equal(t, game.EventDeployed, events[0].Kind)
}
