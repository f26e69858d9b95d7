package championship

import (
	"encoding/json"
	"fmt"
	"sort"
)

func clasificationKey(id uint) string {
	return fmt.Sprintf("clasification_%d", id)
}

// Clasification rebuilds the league standings: 3 points per win, 1 per
// draw, 0 per loss, every ordered-pair fixture counted once for each team
// it names. Ordering is descending by points; ties are left in iteration
// order (no tie-break is defined). Results are cached in the KV store and
// invalidated whenever a result or the enrollment set changes.
func (s *ChampionshipService) Clasification(id uint) ([]ClasificationTeam, error) {
	if cached, err := s.KV.Get(clasificationKey(id)); err == nil && cached != "" {
		var table []ClasificationTeam
		if err := json.Unmarshal([]byte(cached), &table); err == nil {
			return table, nil
		}
	}

	if _, err := s.Get(id, TypeLeague); err != nil {
		return nil, err
	}

	enrolled, err := s.enrolledTeams(id)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(enrolled))
	for i, team := range enrolled {
		names[i] = team.TeamName
	}

	matches, err := s.championshipMatches(id)
	if err != nil {
		return nil, err
	}

	table := computeClasification(names, matches)

	if raw, err := json.Marshal(table); err == nil {
		// Best effort; a cold cache just recomputes.
		s.KV.Set(clasificationKey(id), string(raw))
	}
	return table, nil
}

func (s *ChampionshipService) invalidateClasification(id uint) {
	s.KV.Delete(clasificationKey(id))
}

func computeClasification(names []string, matches []Match) []ClasificationTeam {
	table := make([]ClasificationTeam, len(names))
	for i, name := range names {
		table[i] = ClasificationTeam{TeamName: name}
	}

	for i := range table {
		for _, match := range matches {
			if match.Result1 == nil || match.Result2 == nil {
				continue
			}
			switch table[i].TeamName {
			case match.Team1:
				if *match.Result1 > *match.Result2 {
					table[i].addVictory()
				} else if *match.Result1 < *match.Result2 {
					table[i].addLoose()
				} else {
					table[i].addDraw()
				}
			case match.Team2:
				if *match.Result2 > *match.Result1 {
					table[i].addVictory()
				} else if *match.Result2 < *match.Result1 {
					table[i].addLoose()
				} else {
					table[i].addDraw()
				}
			}
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Points > table[j].Points
	})
	return table
}
