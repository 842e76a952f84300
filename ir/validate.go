package ir

// Validate walks a Pattern tree and reports the first CharClass whose
// Ranges are not sorted and disjoint, returning a *BuildError wrapping
// ErrUnsortedRanges. Builders call this before EmitNFA so a malformed
// class is caught as a fatal error at the IR boundary rather than silently
// producing a wrong automaton (spec section 3's "sorted disjoint" is a
// data-model invariant, not something EmitNFA itself can check mid-walk).
func Validate(p Pattern) error {
	switch v := p.(type) {
	case CharClass:
		for i := 1; i < len(v.Ranges); i++ {
			if v.Ranges[i-1].Hi >= v.Ranges[i].Lo {
				return &BuildError{Describe: v.Describe(), Err: ErrUnsortedRanges}
			}
		}
		return nil
	case Seq:
		for _, child := range v.Children {
			if err := Validate(child); err != nil {
				return err
			}
		}
		return nil
	case Alt:
		for _, child := range v.Children {
			if err := Validate(child); err != nil {
				return err
			}
		}
		return nil
	case Opt:
		return Validate(v.Child)
	case Star:
		return Validate(v.Child)
	case Plus:
		return Validate(v.Child)
	default:
		return nil // Char and any other atom has no sub-structure to check.
	}
}
