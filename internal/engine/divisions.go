package engine

// Division is a named tier in the monthly league ladder, unlocked by a
// points threshold. The table is static reference data ordered by
// strictly increasing MinPoints.
type Division struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MinPoints int    `json:"minPoints"`
	RewardXP  int    `json:"rewardXp"`
}

var Divisions = []Division{
	{ID: "bronze", Name: "Bronze", MinPoints: 0, RewardXP: 50},
	{ID: "silver", Name: "Silver", MinPoints: 50, RewardXP: 100},
	{ID: "gold", Name: "Gold", MinPoints: 150, RewardXP: 200},
	{ID: "platinum", Name: "Platinum", MinPoints: 300, RewardXP: 350},
	{ID: "diamond", Name: "Diamond", MinPoints: 500, RewardXP: 500},
	{ID: "master", Name: "Master", MinPoints: 800, RewardXP: 700},
	{ID: "challenger", Name: "Challenger", MinPoints: 1200, RewardXP: 1000},
}

// DivisionForPoints returns the highest division whose threshold the
// point total has reached.
func DivisionForPoints(points int) Division {
	current := Divisions[0]
	for _, d := range Divisions {
		if points >= d.MinPoints {
			current = d
		}
	}
	return current
}

// NextDivision returns the division above the given one, or false when
// already at the top of the ladder.
func NextDivision(current Division) (Division, bool) {
	idx := divisionRank(current.ID)
	if idx < 0 || idx == len(Divisions)-1 {
		return Division{}, false
	}
	return Divisions[idx+1], true
}

func divisionRank(id string) int {
	for i, d := range Divisions {
		if d.ID == id {
			return i
		}
	}
	return -1
}
