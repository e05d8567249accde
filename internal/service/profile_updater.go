package service

// profilePatch acts as a "Change Set" context for profile updates.
// It collects only the fields the caller actually provided, so an
// omitted or blank field never reaches the UPDATE statement.
type profilePatch struct {
	fields map[string]any
}

func newProfilePatch() *profilePatch {
	return &profilePatch{fields: map[string]any{}}
}

func (p *profilePatch) set(column, newVal string) {
	if newVal == "" {
		return
	}
	p.fields[column] = newVal
}

func (p *profilePatch) dirty() bool {
	return len(p.fields) > 0
}
