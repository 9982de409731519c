package components

import (
	"github.com/automoto/platfight/fsm"
	"github.com/yohamta/donburi"
)

// FSMData holds a fighter's action state machine.
type FSMData struct {
	Machine *fsm.StateMachine
}

var FSM = donburi.NewComponentType[FSMData]()
