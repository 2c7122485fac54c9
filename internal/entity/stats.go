package entity

// Stats counts finished rounds. The JSON names are the ones used by the stats history file.
type Stats struct {
	X    int `json:"X" redis:"X"`
	O    int `json:"O" redis:"O"`
	Draw int `json:"Draw" redis:"Draw"`
}

// Add sums two records field by field.
func (that Stats) Add(other Stats) Stats {
	return Stats{
		X:    that.X + other.X,
		O:    that.O + other.O,
		Draw: that.Draw + other.Draw,
	}
}

func (that Stats) Total() int {
	return that.X + that.O + that.Draw
}

func (that Stats) IsValid() bool {
	return that.X >= 0 && that.O >= 0 && that.Draw >= 0
}

func (that Stats) Wins(player Player) int {
	if player == PlayerX {
		return that.X
	}
	return that.O
}
