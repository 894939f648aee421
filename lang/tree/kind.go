package tree

// Kind discriminates the syntactic category of a Node (what a full parser
// would call its ATTRIBUTE). Only the categories the scope checker (or its
// tree builders / printer) actually dispatches on are enumerated; a full
// parser would need many more (there are hundreds of productions in the
// Algol 68 grammar), but those are irrelevant to scope and are collapsed
// into whatever generic category the checker would otherwise recurse
// through.
type Kind uint16

//go:generate stringer -type=Kind
const (
	BadKind Kind = iota

	// Structural / generic
	ParticularProgram
	Unit
	Primary
	Secondary
	Tertiary
	EnclosedClause

	// Clauses
	ClosedClause
	CollateralClause
	ParallelClause
	ConditionalClause
	CaseClause
	ConformityClause
	LoopClause
	SerialClause
	EnquiryClause
	InitialiserSeries
	DeclarationList

	// Clause punctuation / parts, kept as distinct kinds because the
	// clause-level walkers dispatch on them
	Label
	LabeledUnit
	AssignSymbol
	SemiSymbol
	ExitSymbol
	EndSymbol
	CloseSymbol
	OpenSymbol
	BeginSymbol
	ElsePart
	Choice
	ElifPart
	BriefElifPart
	OutPart
	CaseOusePart
	BriefOusePart
	ConformityOusePart
	BriefConformityOusePart
	ForPart
	FromPart
	ByPart
	ToPart
	WhilePart
	DoPart
	AltDoPart
	UntilPart

	// Declarations
	IdentityDeclaration
	VariableDeclaration
	ProcedureDeclaration
	ProcedureVariableDeclaration
	BriefOperatorDeclaration
	OperatorDeclaration
	ModeDeclaration
	PriorityDeclaration
	DefiningIdentifier
	DefiningOperator
	Declarer
	Bounds
	Indicant
	RefSymbol
	ProcSymbol
	UnionSymbol
	ParameterPack

	// Coercions
	Voiding
	Dereferencing
	Deproceduring
	Uniting
	Rowing
	Widening
	Proceduring

	// Expressions / units
	Nihil
	Denotation
	Identifier
	Operator
	Call
	Slice
	Assignation
	RoutineText
	Generator
	LocSymbol
	HeapSymbol
	Formula
	MonadicFormula
	Selection
	DiagonalFunction
	TransposeFunction
	RowFunction
	ColumnFunction
	Cast
	FormatText
	FormatPattern
	FormatItemG
	DynamicReplicator
	Assertion
	IdentityRelation
	AndFunction
	OrFunction
	Jump
	Skip
	GotoSymbol
)

var kindNames = map[Kind]string{
	BadKind:                      "bad",
	ParticularProgram:            "particular-program",
	Unit:                         "unit",
	Primary:                      "primary",
	Secondary:                    "secondary",
	Tertiary:                     "tertiary",
	EnclosedClause:               "enclosed-clause",
	ClosedClause:                 "closed-clause",
	CollateralClause:             "collateral-clause",
	ParallelClause:               "parallel-clause",
	ConditionalClause:            "conditional-clause",
	CaseClause:                   "case-clause",
	ConformityClause:             "conformity-clause",
	LoopClause:                   "loop-clause",
	SerialClause:                 "serial-clause",
	EnquiryClause:                "enquiry-clause",
	InitialiserSeries:            "initialiser-series",
	DeclarationList:              "declaration-list",
	Label:                        "label",
	LabeledUnit:                  "labeled-unit",
	AssignSymbol:                 "assign-symbol",
	SemiSymbol:                   "semi-symbol",
	ExitSymbol:                   "exit-symbol",
	EndSymbol:                    "end-symbol",
	CloseSymbol:                  "close-symbol",
	OpenSymbol:                   "open-symbol",
	BeginSymbol:                  "begin-symbol",
	ElsePart:                     "else-part",
	Choice:                       "choice",
	ElifPart:                     "elif-part",
	BriefElifPart:                "brief-elif-part",
	OutPart:                      "out-part",
	CaseOusePart:                 "case-ouse-part",
	BriefOusePart:                "brief-ouse-part",
	ConformityOusePart:           "conformity-ouse-part",
	BriefConformityOusePart:      "brief-conformity-ouse-part",
	ForPart:                      "for-part",
	FromPart:                     "from-part",
	ByPart:                       "by-part",
	ToPart:                       "to-part",
	WhilePart:                    "while-part",
	DoPart:                       "do-part",
	AltDoPart:                    "alt-do-part",
	UntilPart:                    "until-part",
	IdentityDeclaration:          "identity-declaration",
	VariableDeclaration:          "variable-declaration",
	ProcedureDeclaration:         "procedure-declaration",
	ProcedureVariableDeclaration: "procedure-variable-declaration",
	BriefOperatorDeclaration:     "brief-operator-declaration",
	OperatorDeclaration:          "operator-declaration",
	ModeDeclaration:              "mode-declaration",
	PriorityDeclaration:          "priority-declaration",
	DefiningIdentifier:           "defining-identifier",
	DefiningOperator:             "defining-operator",
	Declarer:                     "declarer",
	Bounds:                       "bounds",
	Indicant:                     "indicant",
	RefSymbol:                    "ref-symbol",
	ProcSymbol:                   "proc-symbol",
	UnionSymbol:                  "union-symbol",
	ParameterPack:                "parameter-pack",
	Voiding:                      "voiding",
	Dereferencing:                "dereferencing",
	Deproceduring:                "deproceduring",
	Uniting:                      "uniting",
	Rowing:                       "rowing",
	Widening:                     "widening",
	Proceduring:                  "proceduring",
	Nihil:                        "nihil",
	Denotation:                   "denotation",
	Identifier:                   "identifier",
	Operator:                     "operator",
	Call:                         "call",
	Slice:                        "slice",
	Assignation:                  "assignation",
	RoutineText:                  "routine-text",
	Generator:                    "generator",
	LocSymbol:                    "loc-symbol",
	HeapSymbol:                   "heap-symbol",
	Formula:                      "formula",
	MonadicFormula:               "monadic-formula",
	Selection:                    "selection",
	DiagonalFunction:             "diagonal-function",
	TransposeFunction:            "transpose-function",
	RowFunction:                  "row-function",
	ColumnFunction:               "column-function",
	Cast:                         "cast",
	FormatText:                   "format-text",
	FormatPattern:                "format-pattern",
	FormatItemG:                  "format-item-g",
	DynamicReplicator:            "dynamic-replicator",
	Assertion:                    "assertion",
	IdentityRelation:             "identity-relation",
	AndFunction:                  "and-function",
	OrFunction:                   "or-function",
	Jump:                         "jump",
	Skip:                         "skip",
	GotoSymbol:                   "goto-symbol",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown-kind"
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// KindByName is the inverse of Kind.String, used by fixture loaders that
// read a tree back from a textual description.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// IsCoercion reports whether k is one of the implicit-conversion kinds a
// mode equivalencer inserts to make an expression's mode match its context.
func (k Kind) IsCoercion() bool {
	switch k {
	case Voiding, Dereferencing, Deproceduring, Uniting, Rowing, Widening, Proceduring:
		return true
	default:
		return false
	}
}
