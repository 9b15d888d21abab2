package engine

import (
	"fmt"
	"sort"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
)

// SelectCheckpoint picks the shortest-wait checkpoint serving the flight's gate zone.
// When no checkpoint serves the zone every checkpoint is a candidate. Ties keep table order.
func (c Config) SelectCheckpoint(s models.Situation, f models.FlightInfo) models.CheckpointSelection {
	candidates := c.checkpointCandidates(c.gateZone(f))

	out := models.CheckpointSelection{}
	if len(candidates) == 0 {
		return out
	}
	out.Best = candidates[0]
	if len(candidates) > 1 {
		alt := candidates[1]
		out.Alternative = &alt
	}

	switch {
	case s.Urgency == domain.UrgencyCritical:
		out.Advice = "Head to this checkpoint right away."
	case out.Alternative != nil:
		out.Advice = fmt.Sprintf("Alternative: Checkpoint %s (%dmin)", out.Alternative.ID, out.Alternative.MeanWaitMinutes)
	}
	return out
}

func (c Config) checkpointCandidates(zone string) []models.Checkpoint {
	candidates := make([]models.Checkpoint, 0, len(c.Checkpoints))
	for _, cp := range c.Checkpoints {
		if cp.Serves(zone) {
			candidates = append(candidates, cp)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, c.Checkpoints...)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MeanWaitMinutes < candidates[j].MeanWaitMinutes
	})
	return candidates
}
