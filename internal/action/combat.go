package action

import (
	"github.com/pixil98/go-crew/internal/world"
)

const (
	attackStamina  = 2
	dodgeStamina   = 1
	maxDodgeChance = 80
	fragileFactor  = 1.5
)

func attack(ctx Context, performer world.Entity, targets []world.Entity) (Outcome, error) {
	w := ctx.World
	pos, ok := w.Positions.Get(performer)
	if !ok {
		return Outcome{}, Fail("%s is nowhere.", w.NameOf(performer))
	}

	var candidates []world.Entity
	for _, t := range targets {
		p, ok := w.Positions.Get(t)
		if ok && p.IsIn(pos.Area) && w.IsAlive(t) && t != performer {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return Outcome{}, Fail("There is nothing for %s to attack.", w.NameOf(performer))
	}
	reachable, err := reachableTargets(ctx, performer, candidates)
	if err != nil {
		return Outcome{}, err
	}
	target := reachable[ctx.Rand.IntN(len(reachable))]

	dest, _ := approachActor(ctx, performer, target)
	if err := moveTo(ctx, performer, dest); err != nil {
		return Outcome{}, err
	}
	faceTowards(ctx, performer, target)

	var outcome Outcome
	if hostile, ok := w.Hostiles.Get(target); ok && !hostile.Aggressive {
		w.Hostiles.Set(target, world.Hostile{Aggressive: true})
	}

	rested := true
	w.Staminas.Update(performer, func(s *world.Stamina) { rested = s.Spend(attackStamina) })

	if tryDodge(ctx, performer, target) {
		outcome.add("%s dodged %s's attack.", w.NameOf(target), w.NameOf(performer))
		return outcome, nil
	}

	damage := attackDamage(w, performer)
	if !rested {
		damage /= 2
	}
	if traits, ok := w.Traits.Get(target); ok && traits.Has(world.TraitFragile) {
		damage *= fragileFactor
	}
	stats, _ := w.Stats.Get(target)
	killed := false
	w.Healths.Update(target, func(h *world.Health) { killed = h.TakeDamage(damage, stats.Endurance) })

	if killed {
		outcome.add("%s's attack killed %s.", w.NameOf(performer), w.NameOf(target))
	} else {
		outcome.add("%s's attack hit %s.", w.NameOf(performer), w.NameOf(target))
	}
	return outcome, nil
}

// reachableTargets filters candidates down to those performer can get next
// to. It fails with the first blockage when none can be reached.
func reachableTargets(ctx Context, performer world.Entity, candidates []world.Entity) ([]world.Entity, error) {
	var result []world.Entity
	var blocked error
	for _, c := range candidates {
		if _, err := approachActor(ctx, performer, c); err != nil {
			if blocked == nil {
				blocked = err
			}
			continue
		}
		result = append(result, c)
	}
	if len(result) == 0 {
		return nil, blocked
	}
	return result, nil
}

// attackDamage scales the wielded weapon's damage by strength.
func attackDamage(w *world.World, attacker world.Entity) float64 {
	stats, _ := w.Stats.Get(attacker)
	return w.WeaponDamage(attacker) * (1 + float64(stats.Strength)/10)
}

// tryDodge rolls the defender's chance to avoid the attack, spending its
// stamina on success.
func tryDodge(ctx Context, attacker, defender world.Entity) bool {
	w := ctx.World
	st, ok := w.Staminas.Get(defender)
	if !ok || st.Value < dodgeStamina {
		return false
	}
	chance := dodgeChance(w, attacker, defender)
	if chance <= 0 || ctx.Rand.IntN(100) >= chance {
		return false
	}
	w.Staminas.Update(defender, func(s *world.Stamina) { s.Spend(dodgeStamina) })
	return true
}

func dodgeChance(w *world.World, attacker, defender world.Entity) int {
	att, _ := w.Stats.Get(attacker)
	def, _ := w.Stats.Get(defender)
	agility := def.Agility
	if traits, ok := w.Traits.Get(defender); ok && traits.Has(world.TraitGoodDodger) {
		agility += 3
	}
	return min(maxDodgeChance, max(0, 2*agility+def.Luck-att.Agility))
}

// rest recovers one stamina for performer and keeps it resting until full.
func rest(ctx Context, performer world.Entity) (Outcome, error) {
	w := ctx.World
	pos, ok := w.Positions.Get(performer)
	if !ok {
		return Outcome{}, Fail("%s is nowhere.", w.NameOf(performer))
	}
	if len(w.HostilesInArea(pos.Area, true)) > 0 {
		return Outcome{}, Fail("%s can not rest with enemies nearby.", w.NameOf(performer))
	}
	st, ok := w.Staminas.Get(performer)
	if !ok || st.IsFull() {
		w.Repeating.Remove(performer)
		return succeed("%s is already rested.", w.NameOf(performer))
	}

	st.Recover(1)
	w.Staminas.Set(performer, st)
	if st.IsFull() {
		w.Repeating.Remove(performer)
		return succeed("%s is now rested.", w.NameOf(performer))
	}
	w.Repeating.Set(performer, world.Repeating{Kind: world.RepeatRest})
	return succeed("%s is resting.", w.NameOf(performer))
}

// NeedsRest reports whether any crew member in area is missing stamina.
func NeedsRest(w *world.World, area world.Entity) bool {
	for _, e := range w.CrewInArea(area) {
		if st, ok := w.Staminas.Get(e); ok && !st.IsFull() {
			return true
		}
	}
	return false
}
