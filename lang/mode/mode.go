// Package mode defines the mode (Algol 68 term for type) descriptors
// consulted by the scope checker. Mode equivalence proper — folding two
// structurally identical mode expressions into one canonical descriptor —
// is the mode equivalencer's job, an external collaborator; this package
// only defines the shape a mode descriptor must have for the checker's
// predicates to work, and those predicates themselves.
package mode

// Kind discriminates the mode constructors the scope checker cares about.
// Algol 68 has many more mode kinds (STRUCT, proc yields, etc.) but the
// checker only ever asks "is this a reference / procedure / format / union
// / flex row", so only the kinds needed to answer those questions, plus a
// catch-all Plain for everything else (INT, REAL, BOOL, STRUCT, rows of
// plain modes, ...), are represented.
type Kind uint8

const (
	// Plain is any mode the checker treats opaquely: INT, REAL, CHAR, BOOL,
	// STRUCT, an unreferenced ROW, etc.
	Plain Kind = iota
	Ref
	Proc
	Format
	Union
	Row // [...]M or [FLEX...]M; Flex distinguishes the flexible case
)

// Mode is a mode descriptor. Equality between modes is by pointer identity:
// two Mode values describe the same mode iff they are the same *Mode.
// Construct shared sub-modes once and reuse the pointer, as a mode
// equivalencer would.
type Mode struct {
	Kind Kind

	// SubMode is the mode this one is built from: the referenced mode for
	// Ref, the element mode for Row, nil for Proc/Format/Union/Plain (the
	// checker never looks inside a PROC or UNION's signature — they are
	// opaque to it).
	SubMode *Mode

	// Flex is only meaningful when Kind == Row: true for a FLEX row, false
	// for a fixed-bound row.
	Flex bool

	// HasRows records whether this mode contains, anywhere in its structure,
	// a mode with rows (used by the environ pass's get_declarer_elements).
	// For Plain modes representing a STRUCT or union of rowed fields, the
	// mode equivalencer would set this; the checker only ever reads it.
	HasRows bool

	// Name is for diagnostics only, so a reported diagnostic can name the
	// offending mode; it has no bearing on equality or any predicate below.
	Name string
}

func (m *Mode) String() string {
	if m == nil {
		return "<no mode>"
	}
	if m.Name != "" {
		return m.Name
	}
	switch m.Kind {
	case Ref:
		return "REF " + m.SubMode.String()
	case Proc:
		return "PROC"
	case Format:
		return "FORMAT"
	case Union:
		return "UNION"
	case Row:
		if m.Flex {
			return "FLEX [] " + m.SubMode.String()
		}
		return "[] " + m.SubMode.String()
	default:
		return "mode"
	}
}

// IsRef reports whether m is a REF mode (m denotes a name, i.e. a storage
// location).
func IsRef(m *Mode) bool { return m != nil && m.Kind == Ref }

// IsProc reports whether m is a PROC mode.
func IsProc(m *Mode) bool { return m != nil && m.Kind == Proc }

// IsFormat reports whether m is a FORMAT mode.
func IsFormat(m *Mode) bool { return m != nil && m.Kind == Format }

// IsUnion reports whether m is a UNION mode.
func IsUnion(m *Mode) bool { return m != nil && m.Kind == Union }

// HasRows reports whether m contains a rowed mode anywhere in its
// structure — used by the environ pass to decide whether a declarer's
// bounds-carrying indicant matters to scope.
func HasRows(m *Mode) bool {
	if m == nil {
		return false
	}
	if m.Kind == Row {
		return true
	}
	return m.HasRows
}

// IsRefFlex reports whether m is REF FLEX [...]M, the mode whose slicing
// produces a transient value.
func IsRefFlex(m *Mode) bool {
	return IsRef(m) && m.SubMode != nil && m.SubMode.Kind == Row && m.SubMode.Flex
}

// IsFlexRow reports whether m is itself a flexible row mode (not a
// reference to one); used where a declarer's referent mode, already
// stripped of its REF layer by the caller, is tested directly.
func IsFlexRow(m *Mode) bool { return m != nil && m.Kind == Row && m.Flex }

// IsRefToRefOrFlex reports whether m is REF REF ... FLEX [...] M: a
// reference whose eventual referent, after stripping away any number of
// REF layers, is a flexible row. This is the predicate scope_statement's
// SELECTION case in parser-scope.c calls is_ref_refety_flex.
func IsRefToRefOrFlex(m *Mode) bool {
	for IsRef(m) {
		if IsRefFlex(m) {
			return true
		}
		m = m.SubMode
	}
	return false
}
