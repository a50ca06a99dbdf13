package sprig

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and sprite counts.
// Only populated when Group.debug is true.
type debugStats struct {
	updateTime   time.Duration
	drawTime     time.Duration
	spriteCount  int
	evictedCount int
	drawCount    int
	culledCount  int
}

// debugLog prints timing and sprite counts to stderr.
func (g *Group) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] update: %v | draw: %v | total: %v\n",
		stats.updateTime, stats.drawTime, stats.updateTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] sprites: %d | evicted: %d | drawn: %d | culled: %d\n",
		stats.spriteCount, stats.evictedCount, stats.drawCount, stats.culledCount)
}

// debugMaxGroupSize is the sprite count above which a group warns.
const debugMaxGroupSize = 10000

// debugCheckGroupSize warns on stderr if a group holds too many sprites.
func debugCheckGroupSize(g *Group) {
	if len(g.sprites) > debugMaxGroupSize {
		_, _ = fmt.Fprintf(os.Stderr, "[sprig] warning: group has %d sprites (threshold %d)\n",
			len(g.sprites), debugMaxGroupSize)
	}
}
