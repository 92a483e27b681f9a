package tui

import (
	"github.com/vovakirdan/blocks/internal/core"
	"github.com/vovakirdan/blocks/internal/games/breakout"
)

// ScreenKind identifies a screen on the stack.
type ScreenKind int

const (
	ScreenStart ScreenKind = iota
	ScreenPlay
	ScreenPause
	ScreenEnd
)

// String returns the name of the screen kind.
func (k ScreenKind) String() string {
	switch k {
	case ScreenStart:
		return "start"
	case ScreenPlay:
		return "play"
	case ScreenPause:
		return "pause"
	case ScreenEnd:
		return "end"
	default:
		return "unknown"
	}
}

// EndResult is what the end screen shows.
type EndResult struct {
	Score     uint
	Level     int
	HighScore int
	NewBest   bool
}

// Screen is one entry of the stack. Play is set for ScreenPlay only,
// Result for ScreenEnd only.
type Screen struct {
	Kind   ScreenKind
	Play   *breakout.Play
	Ticks  int
	Result EndResult
}

// TransitionKind is the way a transition changes the stack.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionPush
	TransitionReplace
	TransitionPop
)

// Transition is returned by the transition functions and applied by Stack.
type Transition struct {
	Kind TransitionKind
	Next Screen
}

func none() Transition { return Transition{} }

func push(s Screen) Transition { return Transition{Kind: TransitionPush, Next: s} }

func replace(s Screen) Transition { return Transition{Kind: TransitionReplace, Next: s} }

func pop() Transition { return Transition{Kind: TransitionPop} }

// Session carries what the stack needs to start levels.
type Session struct {
	Levels     *breakout.Generator
	StartLevel int
}

func (s Session) newPlay(index int, score uint) Screen {
	return Screen{
		Kind: ScreenPlay,
		Play: breakout.NewPlay(s.Levels.Config(), s.Levels.Level(index), score),
	}
}

// keyTransition decides how a key event changes the stack. Events that do
// not navigate return TransitionNone.
func keyTransition(sess Session, top Screen, ev core.KeyEvent) Transition {
	switch top.Kind {
	case ScreenStart:
		if ev.Action == core.ActionLaunch {
			return replace(sess.newPlay(sess.StartLevel, 0))
		}
	case ScreenPlay:
		if top.Play.Mode() != breakout.ModeRunning {
			return none()
		}
		if ev.Action == core.ActionPause || (ev.Action == core.ActionLaunch && !ev.Repeat) {
			return push(Screen{Kind: ScreenPause})
		}
	case ScreenPause:
		if ev.Action == core.ActionLaunch || ev.Action == core.ActionPause {
			return pop()
		}
	case ScreenEnd:
		if ev.Action == core.ActionLaunch {
			return replace(Screen{Kind: ScreenStart})
		}
	}
	return none()
}

// frameTransition decides what follows a finished level.
func frameTransition(sess Session, play *breakout.Play) Transition {
	out := play.Outcome()
	switch out.Kind {
	case breakout.OutcomeLost:
		return replace(Screen{
			Kind:   ScreenEnd,
			Result: EndResult{Score: out.Score, Level: play.Index()},
		})
	case breakout.OutcomeWon:
		return replace(sess.newPlay(out.NextIndex, out.Score))
	}
	return none()
}

// Stack is the screen stack of one session. It always holds at least one
// screen.
type Stack struct {
	sess    Session
	screens []Screen
}

// NewStack creates a stack showing the start screen.
func NewStack(sess Session) *Stack {
	return &Stack{
		sess:    sess,
		screens: []Screen{{Kind: ScreenStart}},
	}
}

// Top returns the active screen.
func (s *Stack) Top() *Screen {
	return &s.screens[len(s.screens)-1]
}

// Below returns the screen under the top one, or nil.
func (s *Stack) Below() *Screen {
	if len(s.screens) < 2 {
		return nil
	}
	return &s.screens[len(s.screens)-2]
}

// Len returns the number of screens.
func (s *Stack) Len() int {
	return len(s.screens)
}

// HandleKey applies a key event. Keys that do not navigate are forwarded to
// the running level.
func (s *Stack) HandleKey(ev core.KeyEvent) Transition {
	top := s.Top()
	t := keyTransition(s.sess, *top, ev)
	if t.Kind != TransitionNone {
		s.apply(t)
		return t
	}

	if top.Kind == ScreenPlay {
		switch ev.Action {
		case core.ActionLaunch:
			top.Play.Launch()
		case core.ActionLeft:
			top.Play.MovePaddle(breakout.Left, ev.Repeat)
		case core.ActionRight:
			top.Play.MovePaddle(breakout.Right, ev.Repeat)
		}
	}
	return t
}

// Tick advances the active screen by one frame and returns the resulting
// transition with the sounds the frame produced.
func (s *Stack) Tick() (Transition, []breakout.Sound) {
	top := s.Top()
	top.Ticks++

	if top.Kind != ScreenPlay {
		return none(), nil
	}

	res := top.Play.AdvanceFrame()
	t := frameTransition(s.sess, top.Play)
	s.apply(t)
	return t, res.Sounds
}

func (s *Stack) apply(t Transition) {
	switch t.Kind {
	case TransitionPush:
		s.screens = append(s.screens, t.Next)
	case TransitionReplace:
		s.screens[len(s.screens)-1] = t.Next
	case TransitionPop:
		if len(s.screens) > 1 {
			s.screens = s.screens[:len(s.screens)-1]
		}
	}
}
