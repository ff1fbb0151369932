package model

import "time"

// Matto describes a submitted character sighting. Username is a snapshot of
// the owner's name at creation time and is not kept in sync afterwards.
type Matto struct {
	ID          string
	UserID      string
	Username    string
	PhotoData   string
	Nickname    string
	Description string
	Rarity      string
	Points      int64
	IsApproved  bool
	CreatedAt   time.Time
}

// MattoUpdate carries a partial set of matto fields to change. Points is
// never taken from callers directly; the ledger fills it in whenever Rarity
// changes so the stored value and the owner's total move together.
type MattoUpdate struct {
	Nickname    *string
	Description *string
	Rarity      *string
	IsApproved  *bool
	Points      *int64
}

// Submission is the input for a new matto. Username is the owner's name as
// supplied by the caller and is stored as a snapshot on the record.
type Submission struct {
	UserID      string
	Username    string
	PhotoData   string
	Nickname    string
	Description string
	Rarity      string
}

// MattoChanges carries a partial matto mutation requested by a caller.
// Point values are never accepted; they follow rarity.
type MattoChanges struct {
	Nickname    *string
	Description *string
	Rarity      *string
	IsApproved  *bool
}
