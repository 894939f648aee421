package scope

import (
	"fmt"

	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/token"
	"github.com/algol68/scopechecker/lang/tree"
)

// Severity classifies a Diagnostic: a hard scope violation versus a
// warning that a conforming implementation would still compile and run,
// re-checking the escape dynamically.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Code identifies which scope violation a Diagnostic reports, so a caller
// can distinguish them without parsing Message.
type Code uint8

const (
	// CodeTransientName is a transient value (e.g. a sliced FLEX row)
	// stored somewhere it cannot be.
	CodeTransientName Code = iota
	// CodeScopeStatic is a REF/PROC/FORMAT/UNION value that statically
	// appears to outlive its scope; Mode and Attribute carry the offending
	// mode and node kind.
	CodeScopeStatic
	// CodeUninitialised is an identifier used before its own initialising
	// unit has run.
	CodeUninitialised
	// CodePrecision is reserved for a hosting driver's varying_mp_digits
	// precision warnings; the checker core never emits it.
	CodePrecision
)

func (c Code) String() string {
	switch c {
	case CodeTransientName:
		return "TRANSIENT_NAME"
	case CodeScopeStatic:
		return "SCOPE_STATIC"
	case CodeUninitialised:
		return "UNINITIALISED"
	case CodePrecision:
		return "PRECISION"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic is one message the checker attaches to a node. Mode and
// Attribute are only set for diagnostics whose Code is CodeScopeStatic;
// they are nil/zero otherwise.
type Diagnostic struct {
	Severity  Severity
	Code      Code
	Pos       token.Pos
	Node      *tree.Node
	Mode      *mode.Mode
	Attribute tree.Kind
	Message   string
}

func (d Diagnostic) String() string {
	if d.Pos.IsValid() {
		line, col := d.Pos.LineCol()
		return fmt.Sprintf("%d:%d: %s: %s", line, col, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Checker walks a decorated syntax tree and accumulates the diagnostics
// the scope rules produce. It carries no other state: every scope-list
// and tuple the walk needs lives on the Go call stack, the same shape the
// source's recursive scope_* functions give it.
type Checker struct {
	diags []Diagnostic
}

// NewChecker returns an empty Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Diagnostics returns every diagnostic collected so far.
func (c *Checker) Diagnostics() []Diagnostic {
	return c.diags
}

func (c *Checker) errorf(p *tree.Node, code Code, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Pos:      p.Pos,
		Node:     p,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *Checker) warnf(p *tree.Node, code Code, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Pos:      p.Pos,
		Node:     p,
		Message:  fmt.Sprintf(format, args...),
	})
}

// scopeStaticWarnf reports a CodeScopeStatic warning, carrying the
// offending mode and node kind alongside the message.
func (c *Checker) scopeStaticWarnf(p *tree.Node, m *mode.Mode, attr tree.Kind, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Severity:  SeverityWarning,
		Code:      CodeScopeStatic,
		Pos:       p.Pos,
		Node:      p,
		Mode:      m,
		Attribute: attr,
		Message:   fmt.Sprintf(format, args...),
	})
}
