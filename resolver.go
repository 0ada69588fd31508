package jsonvalue

import "github.com/cybergodev/jsonvalue/internal"

type resolveMode uint8

const (
	// modeRead never mutates; any missing step resolves to nothing
	modeRead resolveMode = iota
	// modeCreate auto-vivifies missing fields, elements and null containers
	modeCreate
)

// resolver walks one tokenized path through a Value tree
type resolver struct {
	cfg  *Config
	op   string
	path string
}

func newResolver(op, path string) *resolver {
	return &resolver{cfg: activeConfig(), op: op, path: path}
}

// tokenize splits the path and enforces the depth limit
func (r *resolver) tokenize() ([]internal.Step, bool) {
	steps, ok := internal.Tokenize(r.path, r.cfg.keyFunc())
	if !ok {
		r.cfg.logRefused(r.op, r.path, reasonMalformedPath)
		return nil, false
	}
	if len(steps) > r.cfg.MaxPathDepth {
		r.cfg.logRefused(r.op, r.path, reasonPathTooDeep)
		return nil, false
	}
	return steps, true
}

// resolve returns the node addressed by the resolver's path, or nil
func (r *resolver) resolve(root *Value, mode resolveMode) *Value {
	if root == nil {
		return nil
	}
	steps, ok := r.tokenize()
	if !ok {
		return nil
	}
	if mode == modeCreate {
		if reason := r.plan(root, steps); reason != "" {
			r.cfg.logRefused(r.op, r.path, reason)
			return nil
		}
	}
	return r.walk(root, steps, mode)
}

// plan checks, without mutating anything, that every step of a create-mode
// walk can succeed. Once a step leaves the existing tree all remaining nodes
// are freshly created nulls, so only static checks apply to them.
func (r *resolver) plan(root *Value, steps []internal.Step) string {
	cur := root
	for i, st := range steps {
		last := i == len(steps)-1

		if cur == nil || cur.kind == KindNull {
			if st.Kind == internal.StepAppend && !last {
				return reasonAppendMisuse
			}
			if (st.Kind == internal.StepIndex || st.Kind == internal.StepNumeric) && st.Index > r.cfg.MaxArrayIndex {
				return reasonIndexLimit
			}
			cur = nil
			continue
		}

		switch cur.kind {
		case KindObject:
			if !st.MatchesKey() {
				return reasonKindMismatch
			}
			cur = cur.Find(st.Key)
		case KindArray:
			switch st.Kind {
			case internal.StepKey:
				return reasonKindMismatch
			case internal.StepAppend:
				if !last {
					return reasonAppendMisuse
				}
				cur = nil
			default:
				if st.Index < len(cur.arr) {
					cur = &cur.arr[st.Index]
				} else if st.Index > r.cfg.MaxArrayIndex {
					return reasonIndexLimit
				} else {
					cur = nil
				}
			}
		default:
			return reasonScalarInWay
		}
	}
	return ""
}

// walk follows the steps from root, creating nodes in create mode
func (r *resolver) walk(root *Value, steps []internal.Step, mode resolveMode) *Value {
	cur := root
	for i, st := range steps {
		cur = r.child(cur, st, i == len(steps)-1, mode)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// child descends one step. In create mode a null node is first turned into
// the container the step asks for, a missing field is appended as null and
// an index past the end gap-fills the array with nulls. A missing field stays
// null until the next step (or the caller's write) decides what it holds,
// which is the lookahead that picks Array for index-like steps and Object
// otherwise.
func (r *resolver) child(cur *Value, st internal.Step, last bool, mode resolveMode) *Value {
	if cur.kind == KindNull {
		if mode != modeCreate {
			return nil
		}
		if st.WantsArray() {
			cur.becomeArray()
		} else {
			cur.becomeObject()
		}
	}

	switch cur.kind {
	case KindObject:
		if !st.MatchesKey() {
			return nil
		}
		if found := cur.Find(st.Key); found != nil {
			return found
		}
		if mode != modeCreate {
			return nil
		}
		cur.obj = append(cur.obj, Member{Key: st.Key})
		return &cur.obj[len(cur.obj)-1].Value

	case KindArray:
		switch st.Kind {
		case internal.StepKey:
			return nil
		case internal.StepAppend:
			if mode != modeCreate || !last {
				return nil
			}
			cur.arr = append(cur.arr, NewObject())
			return &cur.arr[len(cur.arr)-1]
		}
		if st.Index < len(cur.arr) {
			return &cur.arr[st.Index]
		}
		if mode != modeCreate || st.Index > r.cfg.MaxArrayIndex {
			return nil
		}
		cur.growTo(st.Index)
		return &cur.arr[st.Index]
	}

	return nil
}

// erase removes the final step's key or index from its parent
func (r *resolver) erase(root *Value) int {
	if root == nil {
		return 0
	}
	steps, ok := r.tokenize()
	if !ok || len(steps) == 0 {
		return 0
	}

	parent := r.walk(root, steps[:len(steps)-1], modeRead)
	if parent == nil {
		return 0
	}

	last := steps[len(steps)-1]
	switch parent.kind {
	case KindObject:
		if !last.MatchesKey() {
			return 0
		}
		return parent.RemoveKey(last.Key)
	case KindArray:
		if last.Kind == internal.StepKey || last.Kind == internal.StepAppend {
			return 0
		}
		return parent.RemoveIndex(last.Index)
	}
	return 0
}
