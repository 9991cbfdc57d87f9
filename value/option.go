package value

import "fmt"

// Some is the Option type's inhabited variant.
type Some struct {
	Inner Value
}

func (*Some) Kind() Kind { return KindSome }

func (s *Some) String() string { return fmt.Sprintf("Some(%s)", s.Inner) }

// None is the Option type's empty variant. It carries no payload, so a
// single shared value would do, but espyscript's Eval contract always
// hands back a concrete Value rather than a pointer to a package-level
// singleton, matching how Unit and the primitive type markers are used
// throughout this package.
type None struct{}

func (None) Kind() Kind     { return KindNone }
func (None) String() string { return "None" }
