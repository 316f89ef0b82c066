package system

// StatsRecorder receives gameplay outcomes worth persisting.
type StatsRecorder interface {
	RecordDeath()
	RecordWin(livesLeft int)
	RecordGameOver()
}

type nopStats struct{}

func (nopStats) RecordDeath()    {}
func (nopStats) RecordWin(int)   {}
func (nopStats) RecordGameOver() {}
