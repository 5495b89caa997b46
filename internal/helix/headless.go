package helix

// SimResult summarizes a headless run.
type SimResult struct {
	Frames           int
	SimTime          float64
	Score            int
	HighScore        int
	Level            int
	LevelsCleared    int
	PlatformsSmashed int
	GameOver         bool
	Hash             uint64
}

// Simulate drives a started game for up to frames render frames of dt
// seconds, steering with pilot. Every event is passed to onEvent, which may
// be nil. The run stops early at game over.
func Simulate(g *Game, pilot *Autopilot, frames int, dt float64, onEvent func(Event)) SimResult {
	if !g.Started() {
		g.Start()
	}

	var res SimResult
	for res.Frames < frames && !g.State().GameOver {
		if pilot != nil {
			g.Drag(pilot.Drag(g.Snapshot()))
		}
		g.Step(dt)
		res.Frames++

		for _, e := range g.Events() {
			switch e := e.(type) {
			case LevelCompletedEvent:
				res.LevelsCleared++
			case PlatformDestroyedEvent:
				if e.Cause == CauseSmash {
					res.PlatformsSmashed++
				}
			}
			if onEvent != nil {
				onEvent(e)
			}
		}
	}

	snap := g.Snapshot()
	res.SimTime = snap.SimTime
	res.Score = snap.Score
	res.HighScore = snap.HighScore
	res.Level = snap.Level
	res.GameOver = snap.GameOver
	res.Hash = snap.Hash()
	return res
}
