package assert

import (
	"cmp"
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Failure is the panic value raised by a failed assertion.
type Failure struct {
	Expr   string // the checked condition as written at the call site
	Detail string // operand values, e.g. "(7 !< 5)"
}

// Error implements error so a recovered Failure can be wrapped or logged.
func (f *Failure) Error() string {
	if f.Detail == "" {
		return "assert: " + f.Expr
	}

	return fmt.Sprintf("assert: %s %s", f.Expr, f.Detail)
}

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger routes failure reports to l. The default logger discards them.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func fail(expr, detail string) {
	logger.Load().Error().
		Str("expr", expr).
		Str("detail", detail).
		Msg("assertion failed")

	panic(&Failure{Expr: expr, Detail: detail})
}

// True panics unless cond holds.
func True(cond bool, expr string) {
	if !cond {
		fail(expr, "(false)")
	}
}

// False panics if cond holds.
func False(cond bool, expr string) {
	if cond {
		fail(expr, "(true)")
	}
}

// Equal panics unless a == b.
func Equal[T comparable](a, b T, expr string) {
	if a != b {
		fail(expr, fmt.Sprintf("(%v != %v)", a, b))
	}
}

// NotEqual panics if a == b.
func NotEqual[T comparable](a, b T, expr string) {
	if a == b {
		fail(expr, fmt.Sprintf("(%v == %v)", a, b))
	}
}

// Less panics unless a < b.
func Less[T cmp.Ordered](a, b T, expr string) {
	if !(a < b) {
		fail(expr, fmt.Sprintf("(%v !< %v)", a, b))
	}
}

// LessEqual panics unless a <= b.
func LessEqual[T cmp.Ordered](a, b T, expr string) {
	if !(a <= b) {
		fail(expr, fmt.Sprintf("(%v !<= %v)", a, b))
	}
}

// Greater panics unless a > b.
func Greater[T cmp.Ordered](a, b T, expr string) {
	if !(a > b) {
		fail(expr, fmt.Sprintf("(%v !> %v)", a, b))
	}
}

// GreaterEqual panics unless a >= b.
func GreaterEqual[T cmp.Ordered](a, b T, expr string) {
	if !(a >= b) {
		fail(expr, fmt.Sprintf("(%v !>= %v)", a, b))
	}
}

// NotNil panics if v is nil, including typed nil pointers, maps, slices,
// channels and funcs stored in an interface.
func NotNil(v any, expr string) {
	if v == nil {
		fail(expr, "is nil")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			fail(expr, "is nil")
		}
	}
}
