package menu

import (
	"context"

	"github.com/looplab/fsm"

	"fanmenu/internal/config/logger"
)

// Phase is the controller's state in the expand/fold cycle
type Phase string

// FSM states
const (
	Folded    Phase = "folded"
	Expanding Phase = "expanding"
	Expanded  Phase = "expanded"
	Folding   Phase = "folding"
)

// FSM events
const (
	EventPresent   = "present"
	EventPresented = "presented"
	EventDismiss   = "dismiss"
	EventDismissed = "dismissed"
)

// newPhaseFSM creates the state machine for the expand/fold cycle
func newPhaseFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		string(Folded),
		fsm.Events{
			{Name: EventPresent, Src: []string{string(Folded)}, Dst: string(Expanding)},
			{Name: EventPresented, Src: []string{string(Expanding)}, Dst: string(Expanded)},
			{Name: EventDismiss, Src: []string{string(Expanded)}, Dst: string(Folding)},
			{Name: EventDismissed, Src: []string{string(Folding)}, Dst: string(Folded)},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("PHASE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}
