package board

import "encoding/json"

// Stone is a placed game piece. It never changes after creation; gravity and rotation move the pointer
// between cells, so ID identifies the same physical stone across transformations.
type Stone struct {
	id       uint64
	playerID int
}

// NewStone builds a stone with a known id. Used when a board is rebuilt from saved state;
// fresh stones come from an IDAllocator.
func NewStone(id uint64, playerID int) *Stone {
	return &Stone{id: id, playerID: playerID}
}

func (that *Stone) ID() uint64 {
	return that.id
}

func (that *Stone) PlayerID() int {
	return that.playerID
}

func (that *Stone) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     uint64 `json:"id"`
		Player int    `json:"player"`
	}{
		ID:     that.id,
		Player: that.playerID,
	})
}

// IDAllocator hands out monotonically increasing stone ids. Each game session owns one,
// so separate games never share a counter.
type IDAllocator struct {
	next uint64
}

func NewIDAllocator(start uint64) *IDAllocator {
	return &IDAllocator{next: start}
}

// NewStone creates a stone for playerID with the next id.
func (that *IDAllocator) NewStone(playerID int) *Stone {
	stone := NewStone(that.next, playerID)
	that.next++

	return stone
}

// Next returns the id the next stone will get.
func (that *IDAllocator) Next() uint64 {
	return that.next
}
