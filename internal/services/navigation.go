package services

// Step is the screen a session is on.
type Step string

const (
	StepForm   Step = "form"
	StepThanks Step = "thanks"
	StepLogin  Step = "login"
	StepAdmin  Step = "admin"
)

// Navigator is the screen state machine. Every entered screen bumps Seq so
// clients know to scroll back to the top.
type Navigator struct {
	step Step
	seq  int
}

func NewNavigator() *Navigator {
	return &Navigator{step: StepForm}
}

func (n *Navigator) Step() Step { return n.step }

func (n *Navigator) Seq() int { return n.seq }

// Submitted lands on the confirmation screen. A send finishing after the
// visitor left the form still lands there.
func (n *Navigator) Submitted() {
	n.enter(StepThanks)
}

func (n *Navigator) OpenLogin() error {
	return n.move(StepForm, StepLogin)
}

func (n *Navigator) Authenticated() error {
	return n.move(StepLogin, StepAdmin)
}

// Back returns to the form from the login or admin screens.
func (n *Navigator) Back() error {
	if n.step != StepLogin && n.step != StepAdmin {
		return ErrWrongStep
	}
	n.enter(StepForm)
	return nil
}

func (n *Navigator) StartOver() error {
	return n.move(StepThanks, StepForm)
}

func (n *Navigator) move(from, to Step) error {
	if n.step != from {
		return ErrWrongStep
	}
	n.enter(to)
	return nil
}

func (n *Navigator) enter(s Step) {
	n.step = s
	n.seq++
}
