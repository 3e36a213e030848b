package action

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pixil98/go-crew/internal/world"
)

// Action is one of the action types in this package. Perform dispatches on
// the concrete type.
type Action interface {
	isAction()
}

type (
	TakeItem      struct{ Item world.Entity }
	TakeAll       struct{}
	Wield         struct{ Item world.Entity }
	Give          struct{ Item, Receiver world.Entity }
	UseMedkit     struct{}
	EatFood       struct{}
	EnterDoor     struct{ Door world.Entity }
	ForceDoor     struct{ Door world.Entity }
	GoToShip      struct{}
	Attack        struct{ Targets []world.Entity }
	Wait          struct{}
	Rest          struct{}
	Refuel        struct{}
	Launch        struct{}
	OpenContainer struct{ Container world.Entity }
	Talk          struct{ Target world.Entity }
	Recruit       struct{ Target world.Entity }
	Tame          struct{ Target world.Entity }
	Name          struct {
		Target world.Entity
		Name   string
	}
	Trade struct{ Shopkeeper world.Entity }
	Buy   struct {
		Kind   world.ItemKind
		Amount int
	}
	Sell       struct{ Items []world.Entity }
	ExitTrade  struct{}
	TellWait   struct{ Target world.Entity }
	TellFollow struct{ Target world.Entity }
)

func (TakeItem) isAction()      {}
func (TakeAll) isAction()       {}
func (Wield) isAction()         {}
func (Give) isAction()          {}
func (UseMedkit) isAction()     {}
func (EatFood) isAction()       {}
func (EnterDoor) isAction()     {}
func (ForceDoor) isAction()     {}
func (GoToShip) isAction()      {}
func (Attack) isAction()        {}
func (Wait) isAction()          {}
func (Rest) isAction()          {}
func (Refuel) isAction()        {}
func (Launch) isAction()        {}
func (OpenContainer) isAction() {}
func (Talk) isAction()          {}
func (Recruit) isAction()       {}
func (Tame) isAction()          {}
func (Name) isAction()          {}
func (Trade) isAction()         {}
func (Buy) isAction()           {}
func (Sell) isAction()          {}
func (ExitTrade) isAction()     {}
func (TellWait) isAction()      {}
func (TellFollow) isAction()    {}

// Failure is the descriptive reason an action could not be performed. The
// world is unchanged when an action fails.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Fail creates a Failure with a formatted message.
func Fail(format string, args ...any) *Failure {
	return &Failure{Message: capitalize(fmt.Sprintf(format, args...))}
}

// Event is a game level consequence of an action.
type Event int

const (
	EventNone Event = iota
	EventWin
)

// Dialogue is a conversation to present to the player.
type Dialogue struct {
	Speaker string   `json:"speaker"`
	Lines   []string `json:"lines"`
}

// Outcome is the result of a successful action.
type Outcome struct {
	Messages []string
	Event    Event
	Dialogue *Dialogue
}

func (o *Outcome) add(format string, args ...any) {
	o.Messages = append(o.Messages, capitalize(fmt.Sprintf(format, args...)))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func succeed(format string, args ...any) (Outcome, error) {
	var o Outcome
	o.add(format, args...)
	return o, nil
}

// Context carries the state an action reads and mutates.
type Context struct {
	World *world.World
	Rand  *rand.Rand
}

// Perform validates and applies act for performer.
func Perform(ctx Context, performer world.Entity, act Action) (Outcome, error) {
	if !ctx.World.IsAlive(performer) {
		return Outcome{}, Fail("%s is not able to act.", ctx.World.NameOf(performer))
	}

	switch a := act.(type) {
	case TakeItem:
		return takeItem(ctx, performer, a.Item)
	case TakeAll:
		return takeAll(ctx, performer)
	case Wield:
		return wield(ctx, performer, a.Item)
	case Give:
		return give(ctx, performer, a)
	case UseMedkit:
		return useMedkit(ctx, performer)
	case EatFood:
		return eatFood(ctx, performer)
	case EnterDoor:
		return enterDoor(ctx, performer, a.Door)
	case ForceDoor:
		return forceDoor(ctx, performer, a.Door)
	case GoToShip:
		return goToShip(ctx, performer)
	case Attack:
		return attack(ctx, performer, a.Targets)
	case Wait:
		return succeed("%s waited.", ctx.World.NameOf(performer))
	case Rest:
		return rest(ctx, performer)
	case Refuel:
		return refuel(ctx, performer)
	case Launch:
		return launch(ctx, performer)
	case OpenContainer:
		return openContainer(ctx, performer, a.Container)
	case Talk:
		return talk(ctx, performer, a.Target)
	case Recruit:
		return recruit(ctx, performer, a.Target)
	case Tame:
		return tame(ctx, performer, a.Target)
	case Name:
		return name(ctx, performer, a)
	case Trade:
		return trade(ctx, performer, a.Shopkeeper)
	case Buy:
		return buy(ctx, performer, a)
	case Sell:
		return sell(ctx, performer, a.Items)
	case ExitTrade:
		return exitTrade(ctx, performer)
	case TellWait:
		return tellWait(ctx, performer, a.Target)
	case TellFollow:
		return tellFollow(ctx, performer, a.Target)
	default:
		panic(fmt.Sprintf("unhandled action %T", act))
	}
}
