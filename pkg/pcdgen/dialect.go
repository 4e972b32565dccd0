package pcdgen

import (
	"fmt"
	"maps"
	"slices"

	"github.com/macropower/pcdgen/pkg/pcd"
	"github.com/macropower/pcdgen/pkg/pcderrors"
)

const (
	// LangCXX renders a C++ header with constexpr doubles in namespace pcd.
	LangCXX = "cxx"
	// LangF90 renders a Fortran 90 module of real(dp) parameters.
	LangF90 = "f90"
)

// Dialect describes the syntax of a generated file in one language.
type Dialect struct {
	// Header returns the text written before the first group.
	Header func() string
	// GroupComment returns the comment introducing a group.
	GroupComment func(group string) string
	// Entry returns the declaration of a single constant.
	Entry func(e pcd.Entry) string
	// Footer returns the text written after the last group.
	Footer func() string
}

var dialects = map[string]*Dialect{
	LangCXX: newCXXDialect(),
	LangF90: newF90Dialect(),
}

// Languages returns the supported language tags, sorted.
func Languages() []string {
	return slices.Sorted(maps.Keys(dialects))
}

// LookupDialect returns the [Dialect] registered for lang.
func LookupDialect(lang string) (*Dialect, error) {
	d, ok := dialects[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", pcderrors.ErrUnsupportedLanguage, lang, Languages())
	}

	return d, nil
}

func newCXXDialect() *Dialect {
	const guard = "PHYSICAL_CONSTANTS_DICTIONARY"

	return &Dialect{
		Header: func() string {
			return fmt.Sprintf("#ifndef %[1]s_HPP\n#define %[1]s_HPP\n\nnamespace pcd {\n", guard)
		},
		GroupComment: func(group string) string {
			return fmt.Sprintf("\n// %s constants\n", group)
		},
		Entry: func(e pcd.Entry) string {
			return fmt.Sprintf("constexpr double %s = %s;\n", e.Name, e.Value)
		},
		Footer: func() string {
			// The trailing space and missing final newline are part of the
			// established output format.
			return fmt.Sprintf("\n} // namespace pcd \n#endif // %s", guard)
		},
	}
}

func newF90Dialect() *Dialect {
	const indent = "    "

	return &Dialect{
		Header: func() string {
			return "module pcd\n" +
				indent + "implicit none\n\n" +
				indent + "!define double precision kind\n" +
				indent + "integer, parameter :: dp = selected_real_kind(12)\n"
		},
		GroupComment: func(group string) string {
			return fmt.Sprintf("\n%s!%s constants\n", indent, group)
		},
		Entry: func(e pcd.Entry) string {
			return fmt.Sprintf("%sreal(dp), parameter :: %s = %s_dp\n", indent, e.Name, e.Value)
		},
		Footer: func() string {
			return "\nend module pcd"
		},
	}
}
