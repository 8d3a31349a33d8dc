package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfit/engine"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestBotPlaysUntilGameOver(t *testing.T) {
	logger, _ := test.NewNullLogger()
	rng := rand.New(rand.NewPCG(7, 11))
	session, err := engine.NewSession(5, 5, engine.Options{Rand: rng, Logger: logger})
	require.NoError(t, err)

	bot := &Bot{session: session, rng: rng}
	placements := 0
	for i := 0; i < 10000 && !session.Over(); i++ {
		placed, err := bot.Move()
		require.NoError(t, err)
		require.True(t, placed, "a live session always has a move")
		placements++
	}

	assert.True(t, session.Over())
	assert.Positive(t, placements)
	assert.Equal(t, int64(placements*3), session.Stats().Events)
}

func TestReportGenerate(t *testing.T) {
	logger, _ := test.NewNullLogger()
	session, err := engine.NewSession(8, 8, engine.Options{Logger: logger})
	require.NoError(t, err)

	r := &Report{
		Duration:   time.Second,
		Width:      8,
		Height:     8,
		Seed:       42,
		Placements: 3,
		DropTime:   Stats{Samples: []time.Duration{time.Microsecond}},
		Pipeline:   session.Stats(),
	}
	r.DropTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "**Board:** 8x8")
	assert.Contains(t, buf.String(), "**Placements:** 3")
	assert.Contains(t, buf.String(), "HoverStage")
}
