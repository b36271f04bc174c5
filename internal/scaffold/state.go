package scaffold

// State is a step of a scaffold run.
type State int

const (
	Resolving State = iota
	ConflictCheck
	Copying
	Mutating
	CleaningFeature
	GitInit
	Installing
	Done
	Aborted
)

var stateNames = [...]string{
	Resolving:       "resolving",
	ConflictCheck:   "conflict-check",
	Copying:         "copying",
	Mutating:        "mutating",
	CleaningFeature: "cleaning-feature",
	GitInit:         "git-init",
	Installing:      "installing",
	Done:            "done",
	Aborted:         "aborted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == Done || s == Aborted
}
