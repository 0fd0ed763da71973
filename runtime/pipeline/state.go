package pipeline

// State represents a pipeline stage or a terminal state.
type State string

const (
	StateInit               State = "init"
	StateValidityCheck      State = "validityCheck"
	StateTranslate          State = "translate"
	StatePreMergeTransform  State = "preMergeTransform"
	StateMerge              State = "merge"
	StatePostMergeTransform State = "postMergeTransform"
	StateCreatePages        State = "createPages"
	StateTransformPages     State = "transformPages"
	StateRender             State = "render"
	StateReport             State = "report"

	StateDone    State = "done"
	StateAborted State = "aborted"
	StateFailed  State = "failed"
)

// Stages lists the non-terminal stages in execution order.
var Stages = []State{
	StateValidityCheck,
	StateTranslate,
	StatePreMergeTransform,
	StateMerge,
	StatePostMergeTransform,
	StateCreatePages,
	StateTransformPages,
	StateRender,
	StateReport,
}

// IsTerminal reports whether s ends a run.
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateAborted || s == StateFailed
}

// Message returns the progress message announced before the stage runs.
func (s State) Message() string {
	switch s {
	case StateValidityCheck:
		return "Validity check"
	case StateTranslate:
		return "Creating documentation models"
	case StatePreMergeTransform:
		return "Transforming documentation model before merging"
	case StateMerge:
		return "Merging documentation models"
	case StatePostMergeTransform:
		return "Transforming documentation model after merging"
	case StateCreatePages:
		return "Creating pages"
	case StateTransformPages:
		return "Transforming pages"
	case StateRender:
		return "Rendering"
	case StateReport:
		return "Reporting"
	}
	return string(s)
}

// Status classifies how a run or a stage ended.
type Status string

const (
	StatusSucceeded      Status = "succeeded"
	StatusNothingToDo    Status = "nothingToDo"
	StatusValidityFailed Status = "validityFailed"
	StatusHandlerFailed  Status = "handlerFailed"
	StatusPolicyFailed   Status = "policyFailed"
)

// Terminal maps a status onto the terminal state it leads to.
func (s Status) Terminal() State {
	switch s {
	case StatusSucceeded:
		return StateDone
	case StatusNothingToDo, StatusValidityFailed:
		return StateAborted
	default:
		return StateFailed
	}
}
