package game

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"slices"

	"github.com/pixil98/go-crew/internal/action"
	"github.com/pixil98/go-crew/internal/ai"
	"github.com/pixil98/go-crew/internal/command"
	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/view"
	"github.com/pixil98/go-crew/internal/world"
)

const (
	winText  = "The crew opened the fortuna chest and found what they were looking for."
	loseText = "There is no one left in the crew to carry on."
	lostText = "The crew left without opening the fortuna chest."
)

// Run takes step on st and returns the phase the game is left in along with
// the frames to show, in order. An error means the step could not be taken
// and st is unchanged.
func Run(step Step, st *GameState, content location.Catalog) (Phase, []view.Frame, error) {
	r := &runner{st: st, content: content}
	phase, err := r.run(step)
	return phase, r.frames, err
}

type runner struct {
	st      *GameState
	content location.Catalog
	frames  []view.Frame
}

func (r *runner) run(step Step) (Phase, error) {
	switch s := step.(type) {
	case PrepareNextLocation:
		return r.prepareNextLocation(), nil
	case LoadLocation:
		return r.loadLocation(s.Name)
	case PrepareTick:
		return r.prepareTick(nil), nil
	case Tick:
		return r.tick(s), nil
	case ChangeControlled:
		return r.changeControlled(s.Actor)
	default:
		return Phase{Kind: PhaseInvalid}, fmt.Errorf("%w: unknown step %T", ErrInvalidPhase, step)
	}
}

func (r *runner) emit(f view.Frame) {
	r.frames = append(r.frames, f)
}

func (r *runner) stop(outcome Outcome, text string, messages []string) Phase {
	r.emit(view.EndingFrame(outcome == OutcomeWin, text, messages))
	slog.Info("game stopped", "game", r.st.Id, "outcome", outcome)
	return Phase{Kind: PhaseStopped, Outcome: outcome}
}

func (r *runner) prepareNextLocation() Phase {
	choice, name, ok := r.st.Tracker.Next(r.st.Rand, r.content.Categories())
	if !ok {
		return r.stop(OutcomeLose, lostText, nil)
	}
	if name != "" {
		return Phase{Kind: PhaseLoadLocation, Location: name}
	}

	options := make([]string, len(choice.Options))
	for i, o := range choice.Options {
		options[i] = o.Category
	}
	r.emit(view.ChoiceFrame(options, nil))
	return Phase{Kind: PhaseChooseLocation, Choice: &choice}
}

func (r *runner) loadLocation(name string) (Phase, error) {
	bp, err := r.content.Blueprint(name)
	if err != nil {
		slog.Error("location load failed", "location", name, "error", err)
		return Phase{Kind: PhaseLoadLocation, Location: name}, fmt.Errorf("loading location %q: %w", name, err)
	}

	w := r.st.World
	entry := bp.Spawn(w, r.st.Rand, r.st.Ship)
	for _, member := range w.LivingCrewOf(r.st.Crew) {
		if pos, ok := w.Positions.Get(member); ok && pos.IsIn(r.st.Ship) {
			w.Positions.Set(member, entry)
			w.Directions.Set(member, world.DirectionRight)
			w.Waiting.Remove(member)
		}
	}
	r.st.render = renderCache{}

	slog.Info("location loaded", "game", r.st.Id, "location", name)
	return r.prepareTick([]string{"The crew has arrived at a new location."}), nil
}

func (r *runner) prepareTick(messages []string) Phase {
	r.emit(r.snapshot(messages))
	area, _ := r.st.World.AreaOf(r.st.Controlled)
	r.st.render = renderCache{area: area, hash: r.objectsHash()}
	return Phase{Kind: PhaseCommandInput}
}

func (r *runner) changeControlled(actor world.Entity) (Phase, error) {
	w := r.st.World
	if crew, ok := w.CrewOf(actor); !ok || crew != r.st.Crew || !w.IsAlive(actor) {
		return Phase{Kind: PhaseCommandInput}, fmt.Errorf("%w: %d is not a living crew member", ErrInvalidPhase, actor)
	}
	r.st.Controlled = actor
	r.st.render = renderCache{}
	return r.prepareTick([]string{fmt.Sprintf("You are now controlling %s.", w.NameOf(actor))}), nil
}

// tick performs the player's action, any repeating actions, and then the
// actions of every other actor.
func (r *runner) tick(s Tick) Phase {
	t := &turn{
		st:    r.st,
		ctx:   action.Context{World: r.st.World, Rand: r.st.Rand},
		acted: map[world.Entity]bool{},
	}
	w := r.st.World
	if s.Action != nil {
		w.Repeating.Remove(r.st.Controlled)
		for _, performer := range r.performers(s.Target) {
			t.perform(performer, s.Action)
		}
	}
	t.continueRepeating()
	t.acted[r.st.Controlled] = true
	for _, p := range ai.Plan(w, r.st.Rand, t.acted) {
		t.perform(p.Actor, p.Action)
	}

	t.removeDead()
	t.updateStatus()

	if t.won {
		return r.stop(OutcomeWin, winText, t.messages)
	}
	if len(w.LivingCrewOf(r.st.Crew)) == 0 {
		return r.stop(OutcomeLose, loseText, t.messages)
	}
	if !w.IsAlive(r.st.Controlled) {
		r.st.Controlled = w.LivingCrewOf(r.st.Crew)[0]
		t.add("You are now controlling %s.", w.NameOf(r.st.Controlled))
	}

	if ship, _ := w.Ships.Get(r.st.Ship); ship.Status == world.ShipLaunching {
		t.messages = append(t.messages, r.depart()...)
		r.emit(view.AreaFrame(w, r.st.Controlled, t.messages))
		return r.prepareNextLocation()
	}

	if area, _ := w.AreaOf(r.st.Controlled); area != r.st.render.area {
		r.st.render = renderCache{area: area}
	}
	if t.dialogue != nil {
		r.emit(view.DialogueFrame(t.dialogue.Speaker, t.dialogue.Lines, t.messages))
		return Phase{Kind: PhaseCommandInput}
	}
	hash := r.objectsHash()
	if len(t.messages) > 0 || hash != r.st.render.hash || w.Trading.Has(r.st.Controlled) {
		r.emit(r.snapshot(t.messages))
		r.st.render.hash = hash
	}
	return Phase{Kind: PhaseCommandInput}
}

// performers expands target into the actors that take the player's action,
// controlled actor first.
func (r *runner) performers(target command.Target) []world.Entity {
	result := []world.Entity{r.st.Controlled}
	if target != command.TargetCrew {
		return result
	}
	w := r.st.World
	area, _ := w.AreaOf(r.st.Controlled)
	for _, member := range w.CrewInArea(area) {
		if member != r.st.Controlled && !w.Waiting.Has(member) {
			if crew, _ := w.CrewOf(member); crew == r.st.Crew {
				result = append(result, member)
			}
		}
	}
	return result
}

// depart leaves the current location behind. Crew members outside the ship
// are left behind, and the rest recover while travelling.
func (r *runner) depart() []string {
	w := r.st.World
	var messages []string
	for _, member := range action.AbsentCrew(w, r.st.Crew) {
		messages = append(messages, fmt.Sprintf("%s was left behind.", view.Capitalize(w.NameOf(member))))
		w.CrewMembers.Remove(member)
		delete(r.st.status, member)
	}

	location.Despawn(w, r.st.Ship)
	w.Ships.Update(r.st.Ship, func(s *world.Ship) { s.Status = world.ShipNeedTwoCans })
	for _, member := range w.LivingCrewOf(r.st.Crew) {
		w.Staminas.Update(member, func(s *world.Stamina) { s.Value = s.Max })
		w.Waiting.Remove(member)
		w.Trading.Remove(member)
		w.Repeating.Remove(member)
		w.Intentions.Remove(member)
	}
	r.st.render = renderCache{}

	slog.Info("ship departed", "game", r.st.Id, "left_behind", len(messages))
	return append(messages, "The ship left for the next location.")
}

// snapshot is the frame for the controlled actor's current situation.
func (r *runner) snapshot(messages []string) view.Frame {
	w := r.st.World
	if t, ok := w.Trading.Get(r.st.Controlled); ok {
		return view.StoreFrame(w, r.st.Controlled, t.Shopkeeper, messages)
	}
	return view.AreaFrame(w, r.st.Controlled, messages)
}

// objectsHash summarizes what the controlled actor can see.
func (r *runner) objectsHash() uint64 {
	f := view.AreaFrame(r.st.World, r.st.Controlled, nil)
	h := fnv.New64a()
	if f.Area != nil {
		fmt.Fprintf(h, "%s|%d|", f.Area.Label, f.Area.Size)
		for _, o := range f.Area.Objects {
			fmt.Fprintf(h, "%d:%s:%s:%t|", o.Coord, o.Symbol, o.Name, o.FacesLeft)
		}
	}
	return h.Sum64()
}

// turn collects what happens during one tick.
type turn struct {
	st       *GameState
	ctx      action.Context
	acted    map[world.Entity]bool
	messages []string
	dialogue *action.Dialogue
	won      bool
}

func (t *turn) add(format string, args ...any) {
	t.messages = append(t.messages, view.Capitalize(fmt.Sprintf(format, args...)))
}

func (t *turn) perform(actor world.Entity, act action.Action) {
	w := t.st.World
	t.acted[actor] = true
	if !w.IsAlive(actor) {
		return
	}

	outcome, err := action.Perform(t.ctx, actor, act)
	if err != nil {
		w.Repeating.Remove(actor)
		t.messages = append(t.messages, err.Error())
		if actor == t.st.Controlled {
			t.delegate(act)
		}
		return
	}
	// Crew members idling on their own are not worth announcing.
	if _, idle := act.(action.Wait); !idle || actor == t.st.Controlled {
		t.messages = append(t.messages, outcome.Messages...)
	}
	if outcome.Dialogue != nil && actor == t.st.Controlled {
		t.dialogue = outcome.Dialogue
	}
	if outcome.Event == action.EventWin {
		t.won = true
	}
	if give, ok := act.(action.Give); ok && w.Weapons.Has(give.Item) {
		w.Intentions.Set(give.Receiver, world.Intention{Kind: world.IntentionWield, Target: give.Item})
	}
}

// delegate hands a door the controlled actor failed to force to a crew
// member in the same area that has the right tool.
func (t *turn) delegate(act action.Action) {
	force, ok := act.(action.ForceDoor)
	if !ok {
		return
	}
	w := t.st.World
	if action.CanForce(w, t.st.Controlled, force.Door) {
		return
	}
	area, _ := w.AreaOf(t.st.Controlled)
	for _, member := range w.CrewInArea(area) {
		if member == t.st.Controlled || t.acted[member] {
			continue
		}
		if action.CanForce(w, member, force.Door) {
			w.Intentions.Set(member, world.Intention{Kind: world.IntentionForce, Target: force.Door})
			t.add("%s will try to force %s.", w.NameOf(member), w.NameOf(force.Door))
			return
		}
	}
}

// continueRepeating runs one step of every pending repeating action for
// actors that have not acted yet. An aggressive creature in the area
// interrupts it.
func (t *turn) continueRepeating() {
	w := t.st.World
	actors := w.Repeating.Entities()
	slices.Sort(actors)
	for _, actor := range actors {
		if t.acted[actor] {
			continue
		}
		rep, _ := w.Repeating.Get(actor)
		area, ok := w.AreaOf(actor)
		if !ok || !w.IsAlive(actor) || len(w.HostilesInArea(area, true)) > 0 {
			w.Repeating.Remove(actor)
			continue
		}

		switch rep.Kind {
		case world.RepeatTakeAll:
			t.perform(actor, action.TakeAll{})
		case world.RepeatRest:
			t.perform(actor, action.Rest{})
		default:
			w.Repeating.Remove(actor)
		}
	}
}

// removeDead strips dead crew members of their membership and drops what
// they carried.
func (t *turn) removeDead() {
	w := t.st.World
	for _, member := range w.CrewMembersOf(t.st.Crew) {
		if !w.IsDead(member) {
			continue
		}
		w.Spill(member)
		w.CrewMembers.Remove(member)
		w.Waiting.Remove(member)
		w.Repeating.Remove(member)
		w.Intentions.Remove(member)
		w.Trading.Remove(member)
		delete(t.st.status, member)
		t.add("%s is dead.", w.NameOf(member))
	}
	for _, e := range w.Hostiles.Entities() {
		if w.IsDead(e) {
			w.Spill(e)
			w.Wanderers.Remove(e)
		}
	}
}

// updateStatus announces crew members that became badly hurt or tired since
// the previous tick.
func (t *turn) updateStatus() {
	w := t.st.World
	for _, member := range w.LivingCrewOf(t.st.Crew) {
		h, _ := w.Healths.Get(member)
		s, _ := w.Staminas.Get(member)
		now := statusFlags{LowHealth: h.IsBadlyHurt(), LowStamina: s.IsLow()}
		prev := t.st.status[member]

		if now.LowHealth && !prev.LowHealth {
			t.add("%s is badly hurt.", w.NameOf(member))
		}
		if now.LowStamina && !prev.LowStamina {
			t.add("%s is tired.", w.NameOf(member))
		}
		t.st.status[member] = now
	}
}
