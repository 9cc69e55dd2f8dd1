package main

type Action struct {
	Type   ActionType
	Before viewSnapshot
	After  viewSnapshot
}

// History holds undo/redo stacks of view snapshots.
type History struct {
	undoStack []Action
	redoStack []Action
}

func (h *History) record(actionType ActionType, before, after viewSnapshot) {
	if before == after {
		return
	}
	h.undoStack = append(h.undoStack, Action{Type: actionType, Before: before, After: after})
	if len(h.undoStack) > historyLimit {
		h.undoStack = h.undoStack[len(h.undoStack)-historyLimit:]
	}
	h.redoStack = h.redoStack[:0]
}

func (h *History) undo(vs *ViewState) (Action, Effect, bool) {
	if len(h.undoStack) == 0 {
		return Action{}, EffectNone, false
	}

	lastIndex := len(h.undoStack) - 1
	action := h.undoStack[lastIndex]
	h.undoStack = h.undoStack[:lastIndex]

	effect := vs.restore(action.Before)
	h.redoStack = append(h.redoStack, action)
	return action, effect, true
}

func (h *History) redo(vs *ViewState) (Action, Effect, bool) {
	if len(h.redoStack) == 0 {
		return Action{}, EffectNone, false
	}

	lastIndex := len(h.redoStack) - 1
	action := h.redoStack[lastIndex]
	h.redoStack = h.redoStack[:lastIndex]

	effect := vs.restore(action.After)
	h.undoStack = append(h.undoStack, action)
	return action, effect, true
}
