package world

// Health is the fraction of an actor's health remaining, from 0.0 to 1.0.
type Health struct {
	Value float64 `json:"value"`
}

const badlyHurtThreshold = 0.5

func (h Health) IsAlive() bool     { return h.Value > 0 }
func (h Health) IsDead() bool      { return h.Value <= 0 }
func (h Health) IsBadlyHurt() bool { return h.Value < badlyHurtThreshold }
func (h Health) IsHurt() bool      { return h.Value < 1 }

// Restore raises health by amount, capped at full health.
func (h *Health) Restore(amount float64) {
	h.Value = min(1, h.Value+amount)
}

// TakeDamage lowers health by damage scaled against the actor's endurance.
// Returns true if the damage killed the actor.
func (h *Health) TakeDamage(damage float64, endurance int) bool {
	h.Value -= damage / float64(4+2*endurance)
	return h.Value <= 0
}

// Stamina is spent on attacks and dodging and recovered by resting.
type Stamina struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

func NewStamina(endurance int) Stamina {
	total := 5 + endurance
	return Stamina{Value: total, Max: total}
}

func (s Stamina) IsLow() bool  { return s.Value*3 < s.Max }
func (s Stamina) IsFull() bool { return s.Value >= s.Max }

func (s *Stamina) Spend(amount int) bool {
	if s.Value < amount {
		return false
	}
	s.Value -= amount
	return true
}

func (s *Stamina) Recover(amount int) {
	s.Value = min(s.Max, s.Value+amount)
}

type Stats struct {
	Strength  int `json:"strength"`
	Endurance int `json:"endurance"`
	Agility   int `json:"agility"`
	Luck      int `json:"luck"`
}

type Trait string

const (
	TraitBigEater   Trait = "big_eater"
	TraitFragile    Trait = "fragile"
	TraitGoodDodger Trait = "good_dodger"
)

type Traits struct {
	Set []Trait `json:"set,omitempty"`
}

func (t Traits) Has(trait Trait) bool {
	for _, v := range t.Set {
		if v == trait {
			return true
		}
	}
	return false
}

// Name is a proper name. Unknown names are not shown until the crew has
// learned them (e.g. by talking).
type Name struct {
	Value string `json:"value"`
	Known bool   `json:"known"`
}

// Noun is the common noun used when an entity has no known name.
type Noun struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// CrewMember marks an actor as part of a crew. Crew is the crew entity that
// holds the shared points pool.
type CrewMember struct {
	Crew Entity `json:"crew"`
}

// Crew is the shared currency pool of the player's crew.
type Crew struct {
	Points int `json:"points"`
}

// Hostile marks creatures that oppose the crew. Aggressive hostiles attack on
// sight; others only fight back.
type Hostile struct {
	Aggressive bool `json:"aggressive"`
}

type Wandering struct{}

type Creature struct {
	Kind CreatureKind `json:"kind"`
}

type Item struct {
	Kind ItemKind `json:"kind"`
}

type Price struct {
	Value int `json:"value"`
}

// SellValue is what a shopkeeper pays for the item.
func (p Price) SellValue() int {
	return p.Value / 2
}

type Weapon struct {
	Damage float64 `json:"damage"`
}

// Held records an item being carried. An item with Held never has a Pos.
type Held struct {
	Holder Entity `json:"holder"`
	InHand bool   `json:"in_hand"`
}

type DoorKind string

const (
	DoorKindDoor    DoorKind = "door"
	DoorKindPath    DoorKind = "path"
	DoorKindHatch   DoorKind = "hatch"
	DoorKindDoorway DoorKind = "doorway"
)

// Door leads to Destination. Pair is the shared entity of the two doors,
// which may carry a BlockType.
type Door struct {
	Destination Pos      `json:"destination"`
	Pair        Entity   `json:"pair"`
	Kind        DoorKind `json:"kind"`
}

// DoorPair marks the shared entity of two paired doors.
type DoorPair struct{}

type BlockType string

const (
	BlockStuck  BlockType = "stuck"
	BlockSealed BlockType = "sealed"
	BlockLocked BlockType = "locked"
)

// Description is how the block reads in "the door is {state}".
func (b BlockType) Description() string {
	switch b {
	case BlockSealed:
		return "sealed shut"
	default:
		return string(b)
	}
}

// Area is an independent one dimensional space of Size coordinates.
type Area struct {
	Label      string `json:"label"`
	Size       uint   `json:"size"`
	Background string `json:"background,omitempty"`
}

type ShipStatus int

const (
	ShipNeedTwoCans ShipStatus = iota
	ShipNeedOneCan
	ShipRefueled
	ShipLaunching
)

// Refuel advances the status by one fuel can. Returns false if the ship
// does not need fuel.
func (s *ShipStatus) Refuel() bool {
	switch *s {
	case ShipNeedTwoCans:
		*s = ShipNeedOneCan
	case ShipNeedOneCan:
		*s = ShipRefueled
	default:
		return false
	}
	return true
}

func (s ShipStatus) NeedsFuel() bool {
	return s == ShipNeedTwoCans || s == ShipNeedOneCan
}

func (s ShipStatus) String() string {
	switch s {
	case ShipNeedTwoCans:
		return "needs two fuel cans"
	case ShipNeedOneCan:
		return "needs one fuel can"
	case ShipRefueled:
		return "refueled"
	case ShipLaunching:
		return "launching"
	default:
		return "unknown"
	}
}

// Ship is attached to the ship's interior area. Exit is the door inside the
// ship that leads out to the current location.
type Ship struct {
	Status ShipStatus `json:"status"`
	Exit   Entity     `json:"exit"`
}

// Container holds items that are revealed when it is opened.
type Container struct {
	Items []ItemKind `json:"items,omitempty"`
}

// FortunaChest is the goal of the final location.
type FortunaChest struct{}

type StockItem struct {
	Kind     ItemKind `json:"kind"`
	Price    int      `json:"price"`
	Quantity int      `json:"quantity"` // negative means unlimited
}

type Shopkeeper struct {
	Stock []StockItem `json:"stock"`
}

type Recruitable struct{}

type Talker struct {
	Lines []string `json:"lines"`
}

type Tameable struct{}

// Pet marks a tamed creature.
type Pet struct {
	Crew Entity `json:"crew"`
}

// Waiting marks a crew member that stays put instead of following the
// controlled actor.
type Waiting struct{}

// Trading marks an actor that is browsing a shopkeeper's store.
type Trading struct {
	Shopkeeper Entity `json:"shopkeeper"`
}

type IntentionKind string

const (
	IntentionWield IntentionKind = "wield"
	IntentionForce IntentionKind = "force"
)

// Intention is an action a crew member has decided to take later, such as
// forcing a door the controlled actor could not.
type Intention struct {
	Kind   IntentionKind `json:"kind"`
	Target Entity        `json:"target"`
}

type RepeatKind string

const (
	RepeatTakeAll RepeatKind = "take_all"
	RepeatRest    RepeatKind = "rest"
)

// Repeating is a pending action that is re-run each tick until it is done
// or interrupted.
type Repeating struct {
	Kind RepeatKind `json:"kind"`
}
