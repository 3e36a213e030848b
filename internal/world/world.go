package world

import (
	"encoding/json"
	"fmt"
	"slices"
)

// World holds every entity and its components, with one typed store per
// component type. It is owned by a single game state and is not safe for
// concurrent use.
type World struct {
	next Entity

	Positions     *Store[Pos]
	Directions    *Store[Direction]
	Healths       *Store[Health]
	Staminas      *Store[Stamina]
	Stats         *Store[Stats]
	Traits        *Store[Traits]
	Names         *Store[Name]
	Nouns         *Store[Noun]
	CrewMembers   *Store[CrewMember]
	Crews         *Store[Crew]
	Hostiles      *Store[Hostile]
	Wanderers     *Store[Wandering]
	Creatures     *Store[Creature]
	Items         *Store[Item]
	Prices        *Store[Price]
	Weapons       *Store[Weapon]
	Held          *Store[Held]
	Doors         *Store[Door]
	DoorPairs     *Store[DoorPair]
	Blocks        *Store[BlockType]
	Areas         *Store[Area]
	Ships         *Store[Ship]
	Containers    *Store[Container]
	FortunaChests *Store[FortunaChest]
	Shopkeepers   *Store[Shopkeeper]
	Recruitables  *Store[Recruitable]
	Talkers       *Store[Talker]
	Tameables     *Store[Tameable]
	Pets          *Store[Pet]
	Waiting       *Store[Waiting]
	Trading       *Store[Trading]
	Intentions    *Store[Intention]
	Repeating     *Store[Repeating]

	allStores []anyStore
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{
		next:          1,
		Positions:     NewStore[Pos](),
		Directions:    NewStore[Direction](),
		Healths:       NewStore[Health](),
		Staminas:      NewStore[Stamina](),
		Stats:         NewStore[Stats](),
		Traits:        NewStore[Traits](),
		Names:         NewStore[Name](),
		Nouns:         NewStore[Noun](),
		CrewMembers:   NewStore[CrewMember](),
		Crews:         NewStore[Crew](),
		Hostiles:      NewStore[Hostile](),
		Wanderers:     NewStore[Wandering](),
		Creatures:     NewStore[Creature](),
		Items:         NewStore[Item](),
		Prices:        NewStore[Price](),
		Weapons:       NewStore[Weapon](),
		Held:          NewStore[Held](),
		Doors:         NewStore[Door](),
		DoorPairs:     NewStore[DoorPair](),
		Blocks:        NewStore[BlockType](),
		Areas:         NewStore[Area](),
		Ships:         NewStore[Ship](),
		Containers:    NewStore[Container](),
		FortunaChests: NewStore[FortunaChest](),
		Shopkeepers:   NewStore[Shopkeeper](),
		Recruitables:  NewStore[Recruitable](),
		Talkers:       NewStore[Talker](),
		Tameables:     NewStore[Tameable](),
		Pets:          NewStore[Pet](),
		Waiting:       NewStore[Waiting](),
		Trading:       NewStore[Trading](),
		Intentions:    NewStore[Intention](),
		Repeating:     NewStore[Repeating](),
	}
	w.register()
	return w
}

func (w *World) register() {
	w.allStores = []anyStore{
		w.Positions, w.Directions, w.Healths, w.Staminas, w.Stats, w.Traits,
		w.Names, w.Nouns, w.CrewMembers, w.Crews, w.Hostiles, w.Wanderers,
		w.Creatures, w.Items, w.Prices, w.Weapons, w.Held, w.Doors,
		w.DoorPairs, w.Blocks, w.Areas, w.Ships, w.Containers,
		w.FortunaChests, w.Shopkeepers, w.Recruitables, w.Talkers,
		w.Tameables, w.Pets, w.Waiting, w.Trading, w.Intentions, w.Repeating,
	}
}

// Create reserves a new entity with no components.
func (w *World) Create() Entity {
	e := w.next
	w.next++
	return e
}

// Destroy removes every component of e.
func (w *World) Destroy(e Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// Exists reports whether e has any component.
func (w *World) Exists(e Entity) bool {
	for _, s := range w.allStores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Entities returns every entity that has at least one component, in
// creation order.
func (w *World) Entities() []Entity {
	seen := map[Entity]bool{}
	var result []Entity
	for _, s := range w.allStores {
		for _, e := range s.Entities() {
			if !seen[e] {
				seen[e] = true
				result = append(result, e)
			}
		}
	}
	slices.Sort(result)
	return result
}

// Clear removes every entity. Identifiers keep increasing.
func (w *World) Clear() {
	for _, s := range w.allStores {
		s.clear()
	}
}

// worldJSON mirrors World for serialization. Store pointers share the
// world's stores so decoding fills them in place.
type worldJSON struct {
	Next          Entity               `json:"next"`
	Positions     *Store[Pos]          `json:"positions"`
	Directions    *Store[Direction]    `json:"directions"`
	Healths       *Store[Health]       `json:"healths"`
	Staminas      *Store[Stamina]      `json:"staminas"`
	Stats         *Store[Stats]        `json:"stats"`
	Traits        *Store[Traits]       `json:"traits"`
	Names         *Store[Name]         `json:"names"`
	Nouns         *Store[Noun]         `json:"nouns"`
	CrewMembers   *Store[CrewMember]   `json:"crew_members"`
	Crews         *Store[Crew]         `json:"crews"`
	Hostiles      *Store[Hostile]      `json:"hostiles"`
	Wanderers     *Store[Wandering]    `json:"wanderers"`
	Creatures     *Store[Creature]     `json:"creatures"`
	Items         *Store[Item]         `json:"items"`
	Prices        *Store[Price]        `json:"prices"`
	Weapons       *Store[Weapon]       `json:"weapons"`
	Held          *Store[Held]         `json:"held"`
	Doors         *Store[Door]         `json:"doors"`
	DoorPairs     *Store[DoorPair]     `json:"door_pairs"`
	Blocks        *Store[BlockType]    `json:"blocks"`
	Areas         *Store[Area]         `json:"areas"`
	Ships         *Store[Ship]         `json:"ships"`
	Containers    *Store[Container]    `json:"containers"`
	FortunaChests *Store[FortunaChest] `json:"fortuna_chests"`
	Shopkeepers   *Store[Shopkeeper]   `json:"shopkeepers"`
	Recruitables  *Store[Recruitable]  `json:"recruitables"`
	Talkers       *Store[Talker]       `json:"talkers"`
	Tameables     *Store[Tameable]     `json:"tameables"`
	Pets          *Store[Pet]          `json:"pets"`
	Waiting       *Store[Waiting]      `json:"waiting"`
	Trading       *Store[Trading]      `json:"trading"`
	Intentions    *Store[Intention]    `json:"intentions"`
	Repeating     *Store[Repeating]    `json:"repeating"`
}

func (w *World) mirror() *worldJSON {
	return &worldJSON{
		Next:          w.next,
		Positions:     w.Positions,
		Directions:    w.Directions,
		Healths:       w.Healths,
		Staminas:      w.Staminas,
		Stats:         w.Stats,
		Traits:        w.Traits,
		Names:         w.Names,
		Nouns:         w.Nouns,
		CrewMembers:   w.CrewMembers,
		Crews:         w.Crews,
		Hostiles:      w.Hostiles,
		Wanderers:     w.Wanderers,
		Creatures:     w.Creatures,
		Items:         w.Items,
		Prices:        w.Prices,
		Weapons:       w.Weapons,
		Held:          w.Held,
		Doors:         w.Doors,
		DoorPairs:     w.DoorPairs,
		Blocks:        w.Blocks,
		Areas:         w.Areas,
		Ships:         w.Ships,
		Containers:    w.Containers,
		FortunaChests: w.FortunaChests,
		Shopkeepers:   w.Shopkeepers,
		Recruitables:  w.Recruitables,
		Talkers:       w.Talkers,
		Tameables:     w.Tameables,
		Pets:          w.Pets,
		Waiting:       w.Waiting,
		Trading:       w.Trading,
		Intentions:    w.Intentions,
		Repeating:     w.Repeating,
	}
}

func (w *World) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.mirror())
}

func (w *World) UnmarshalJSON(b []byte) error {
	if w.allStores == nil {
		*w = *NewWorld()
	}
	m := w.mirror()
	if err := json.Unmarshal(b, m); err != nil {
		return err
	}
	if m.Next == 0 {
		return fmt.Errorf("world is missing its next entity id")
	}
	w.next = m.Next
	return nil
}
