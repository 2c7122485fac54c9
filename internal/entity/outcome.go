package entity

type Status string

const (
	StatusInProgress Status = "in progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome describes how the current round stands. Winner is only set for StatusWin.
type Outcome struct {
	Status Status
	Winner Player
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player Player) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return string(that.Winner) + " wins"
	case StatusDraw:
		return string(StatusDraw)
	default:
		return string(StatusInProgress)
	}
}
