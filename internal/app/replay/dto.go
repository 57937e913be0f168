package replay

import "redscope/internal/domain/gamestate"

type Request struct {
	Limit int
	Step  *int
}

type Response struct {
	Snapshots []gamestate.Snapshot `json:"snapshots"`
}
