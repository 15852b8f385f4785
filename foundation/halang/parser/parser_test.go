// File: parser_test.go
// Title: halang Parser Unit Tests
// Description: Tests for statement and expression grammar, precedence
//              climbing, call chains, diagnostics, session limits and
//              arena ownership of the produced trees.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	mdwlog "github.com/msto63/halang/foundation/core/log"
	"github.com/msto63/halang/foundation/halang/ast"
	"github.com/msto63/halang/foundation/halang/lexer"
	"github.com/msto63/halang/foundation/halang/token"
)

func quiet() Options {
	return Options{Logger: mdwlog.Discard()}
}

func parse(t *testing.T, input string) *Result {
	t.Helper()
	result := Parse(input, quiet())
	t.Cleanup(result.Close)
	return result
}

// statements renders the top-level statements of a successful parse
func statements(t *testing.T, input string) []string {
	t.Helper()
	result := parse(t, input)
	if !result.OK {
		t.Fatalf("parse %q failed: %v", input, result.Messages)
	}
	out := make([]string, len(result.Root.Statements))
	for i, s := range result.Root.Statements {
		out[i] = s.String()
	}
	return out
}

func TestParser_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"product binds tighter", "1+2*3", "BinaryExpr(+, Number(1), BinaryExpr(*, Number(2), Number(3)))"},
		{"product first", "1*2+3", "BinaryExpr(+, BinaryExpr(*, Number(1), Number(2)), Number(3))"},
		{"left associative sum", "1+2+3", "BinaryExpr(+, BinaryExpr(+, Number(1), Number(2)), Number(3))"},
		{"left associative power", "2 ** 3 ** 2", "BinaryExpr(**, BinaryExpr(**, Number(2), Number(3)), Number(2))"},
		{
			"mixed levels",
			"1+2*3-4",
			"BinaryExpr(-, BinaryExpr(+, Number(1), BinaryExpr(*, Number(2), Number(3))), Number(4))",
		},
		{
			"comparison and logic",
			"a < 1 && b == 2 || c",
			"BinaryExpr(||, BinaryExpr(&&, BinaryExpr(<, Identifier(a), Number(1)), " +
				"BinaryExpr(==, Identifier(b), Number(2))), Identifier(c))",
		},
		{
			"sum inside comparison",
			"1 < 2 * 3 + 4",
			"BinaryExpr(<, Number(1), BinaryExpr(+, BinaryExpr(*, Number(2), Number(3)), Number(4)))",
		},
		{
			"modulo over product",
			"a * b % c",
			"BinaryExpr(*, Identifier(a), BinaryExpr(%, Identifier(b), Identifier(c)))",
		},
		{
			"identifier lead-in",
			"a*b+c",
			"BinaryExpr(+, BinaryExpr(*, Identifier(a), Identifier(b)), Identifier(c))",
		},
		{"unary minus", "-a*b", "BinaryExpr(*, UnaryExpr(-, Identifier(a)), Identifier(b))"},
		{"double negation", "1 - -2", "BinaryExpr(-, Number(1), UnaryExpr(-, Number(2)))"},
		{"not", "!a && b", "BinaryExpr(&&, UnaryExpr(!, Identifier(a)), Identifier(b))"},
		{"unary plus", "+1.5", "UnaryExpr(+, Number(1.5))"},
		{"parentheses", "(1+2)*3", "BinaryExpr(*, BinaryExpr(+, Number(1), Number(2)), Number(3))"},
		{"assignment", "x = 1", "Assignment(Identifier(x), Number(1))"},
		{"chained assignment", "x = y = 1", "Assignment(Identifier(x), Assignment(Identifier(y), Number(1)))"},
		{
			"assignment of expression",
			"x = a + b * 2",
			"Assignment(Identifier(x), BinaryExpr(+, Identifier(a), BinaryExpr(*, Identifier(b), Number(2))))",
		},
		{"call", "f(1, 2)", "FuncCall(Identifier(f), [Number(1), Number(2)])"},
		{"call without args", "f()", "FuncCall(Identifier(f), [])"},
		{"curried call", "f(1)(2)", "FuncCall(FuncCall(Identifier(f), [Number(1)]), [Number(2)])"},
		{
			"parenthesized callee",
			"(f)(1)(2)",
			"FuncCall(FuncCall(Identifier(f), [Number(1)]), [Number(2)])",
		},
		{
			"call in binary expression",
			"f(1) + 2 * g(x)",
			"BinaryExpr(+, FuncCall(Identifier(f), [Number(1)]), " +
				"BinaryExpr(*, Number(2), FuncCall(Identifier(g), [Identifier(x)])))",
		},
		{
			"call product lead-in",
			"f(1) * 2 + 3",
			"BinaryExpr(+, BinaryExpr(*, FuncCall(Identifier(f), [Number(1)]), Number(2)), Number(3))",
		},
		{
			"nested call arguments",
			"f(g(1), a = 2)",
			"FuncCall(Identifier(f), [FuncCall(Identifier(g), [Number(1)]), Assignment(Identifier(a), Number(2))])",
		},
		{"negated call", "-f(1)", "UnaryExpr(-, FuncCall(Identifier(f), [Number(1)]))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statements(t, tt.input)
			if len(got) != 1 {
				t.Fatalf("expected 1 statement, got %d: %v", len(got), got)
			}
			if got[0] != tt.expected {
				t.Errorf("parse %q\n got: %s\nwant: %s", tt.input, got[0], tt.expected)
			}
		})
	}
}

func TestParser_Statements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			"var with two assignments",
			"var a = 1, b = 2;",
			[]string{"VarStmt[Assignment(Identifier(a), Number(1)), Assignment(Identifier(b), Number(2))]"},
		},
		{
			"var with expression",
			"var x = 1 + 2 * 3;",
			[]string{"VarStmt[Assignment(Identifier(x), BinaryExpr(+, Number(1), BinaryExpr(*, Number(2), Number(3))))]"},
		},
		{
			"if",
			"if (a < b) { a = b; }",
			[]string{"IfStmt(BinaryExpr(<, Identifier(a), Identifier(b)), Block[Assignment(Identifier(a), Identifier(b))])"},
		},
		{
			"else if chain",
			"if (a) {} else if (b) {} else {}",
			[]string{"IfStmt(Identifier(a), Block[], IfStmt(Identifier(b), Block[], Block[]))"},
		},
		{
			"while with break",
			"while (i < 10) { i = i + 1; break; }",
			[]string{"WhileStmt(BinaryExpr(<, Identifier(i), Number(10)), " +
				"Block[Assignment(Identifier(i), BinaryExpr(+, Identifier(i), Number(1))), BreakStmt])"},
		},
		{
			"function definition",
			"func f(a, b) { }",
			[]string{"FuncDef(f, FuncDefParams[a, b], Block[])"},
		},
		{
			"function with body",
			"func add(a, b) { var s = a + b; s }",
			[]string{"FuncDef(add, FuncDefParams[a, b], Block[VarStmt[Assignment(Identifier(s), " +
				"BinaryExpr(+, Identifier(a), Identifier(b)))], Identifier(s)])"},
		},
		{
			"nested blocks",
			"{ 1; { 2 } }",
			[]string{"Block[Number(1), Block[Number(2)]]"},
		},
		{
			"empty statements",
			";;; x ;;",
			[]string{"Identifier(x)"},
		},
		{
			"statements without separators",
			"a b 3",
			[]string{"Identifier(a)", "Identifier(b)", "Number(3)"},
		},
		{"empty input", "", []string{}},
		{"comment only", "// nothing here", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statements(t, tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d statements, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("statement %d\n got: %s\nwant: %s", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParser_Return(t *testing.T) {
	result := parse(t, "return 1")

	if !result.OK {
		t.Fatalf("expected OK, got %v", result.Messages)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(result.Warnings))
	}
	if result.Warnings[0].Pos.Column != 1 {
		t.Errorf("warning column = %d, expected 1", result.Warnings[0].Pos.Column)
	}
	if got := result.Root.String(); got != "Block[Number(1)]" {
		t.Errorf("root = %s", got)
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  mdwerror.Code
		check func(t *testing.T, result *Result)
	}{
		{
			name:  "missing closing parenthesis",
			input: "if (1 2) { }",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if got := result.Root.String(); got != "Block[IfStmt(Number(1), Block[])]" {
					t.Errorf("partial tree = %s", got)
				}
				if !strings.Contains(result.Messages[0], "expected ')'") {
					t.Errorf("message = %q", result.Messages[0])
				}
			},
		},
		{
			name:  "extra tokens in condition",
			input: "while (a b c) { d; }",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if len(result.Diagnostics) != 1 {
					t.Errorf("expected 1 diagnostic, got %v", result.Messages)
				}
				if got := result.Root.String(); got != "Block[WhileStmt(Identifier(a), Block[Identifier(d)])]" {
					t.Errorf("body lost: %s", got)
				}
			},
		},
		{
			name:  "condition runs into body",
			input: "if (a { b; } c;",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if len(result.Diagnostics) != 1 {
					t.Errorf("expected 1 diagnostic, got %v", result.Messages)
				}
				if got := result.Root.String(); got != "Block[IfStmt(Identifier(a), Block[Identifier(b)]), Identifier(c)]" {
					t.Errorf("root = %s", got)
				}
			},
		},
		{
			name:  "empty parameter list",
			input: "func f() {}",
			code:  mdwerror.CodeMissingIdentifier,
		},
		{
			name:  "missing function name",
			input: "func (a) {}",
			code:  mdwerror.CodeMissingIdentifier,
		},
		{
			name:  "missing parameter separator",
			input: "func f(a b) {}",
			code:  mdwerror.CodeMalformedParameterList,
		},
		{
			name:  "trailing comma in parameters",
			input: "func f(a,) {}",
			code:  mdwerror.CodeMalformedParameterList,
			check: func(t *testing.T, result *Result) {
				if !strings.Contains(result.Messages[0], "after ','") {
					t.Errorf("message = %q", result.Messages[0])
				}
			},
		},
		{
			name:  "var without name",
			input: "var = 1;",
			code:  mdwerror.CodeMissingIdentifier,
		},
		{
			name:  "var without value",
			input: "var a = ;",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if len(result.Root.Statements) != 0 {
					t.Errorf("expected declaration to be dropped, got %s", result.Root)
				}
			},
		},
		{
			name:  "stray operator",
			input: "* 1",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if len(result.Diagnostics) != 1 {
					t.Errorf("expected 1 diagnostic, got %v", result.Messages)
				}
				if got := result.Root.String(); got != "Block[Number(1)]" {
					t.Errorf("root = %s", got)
				}
			},
		},
		{
			name:  "dangling operator",
			input: "1 +",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if !strings.Contains(result.Messages[0], "end of input") {
					t.Errorf("message = %q", result.Messages[0])
				}
			},
		},
		{
			name:  "unclosed call",
			input: "f(1",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if got := result.Root.String(); got != "Block[FuncCall(Identifier(f), [Number(1)])]" {
					t.Errorf("root = %s", got)
				}
			},
		},
		{
			name:  "stray closing brace",
			input: "a; } b",
			code:  mdwerror.CodeUnexpectedToken,
			check: func(t *testing.T, result *Result) {
				if got := result.Root.String(); got != "Block[Identifier(a), Identifier(b)]" {
					t.Errorf("parsing did not resume: %s", got)
				}
			},
		},
		{
			name:  "illegal character",
			input: "a $ b",
			code:  mdwerror.CodeIllegalCharacter,
			check: func(t *testing.T, result *Result) {
				if len(result.Root.Statements) != 2 {
					t.Errorf("root = %s", result.Root)
				}
			},
		},
		{
			name:  "continue is not a statement",
			input: "while (1) { continue; }",
			code:  mdwerror.CodeUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parse(t, tt.input)
			if result.OK {
				t.Fatalf("expected parse of %q to fail", tt.input)
			}
			if result.Root == nil {
				t.Fatal("root must be present after errors")
			}
			if len(result.Messages) != len(result.Diagnostics) {
				t.Errorf("messages and diagnostics differ: %d vs %d", len(result.Messages), len(result.Diagnostics))
			}
			if got := result.Diagnostics[0].Code; got != tt.code {
				t.Errorf("first code = %s, expected %s (%v)", got, tt.code, result.Messages)
			}
			if err := result.Err(); !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Err() = %v, expected code %s", err, tt.code)
			}
			if err := result.Arena.Verify(result.Root); err != nil {
				t.Errorf("Verify() error: %v", err)
			}
			if errs := ast.ValidateAST(result.Root); len(errs) != 0 {
				t.Errorf("partial tree is structurally invalid: %v", errs)
			}
			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestParser_MessagePositions(t *testing.T) {
	result := parse(t, "var x = 1;\nif (x 2) {}")
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", result.Messages)
	}
	d := result.Diagnostics[0]
	if d.Pos.Line != 2 || d.Pos.Column != 7 {
		t.Errorf("position = %s, expected 2:7", d.Pos)
	}
	if d.Token.Kind != token.Number {
		t.Errorf("token = %s", d.Token)
	}
	if result.Messages[0] != "2:7: expected ')', found number 2" {
		t.Errorf("message = %q", result.Messages[0])
	}
}

func TestParser_Idempotence(t *testing.T) {
	inputs := []string{
		"var a = 1, b = 2; func f(x, y) { while (x < y) { x = x + 1; } } f(a)(b);",
		"if (a == 1) { b = -c ** 2 % 3; } else if (a) { } else { break; }",
		"if (1 2) { } * 1 f(1",
	}

	for _, input := range inputs {
		tokens, err := lexer.New(input).Tokenize()
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", input, err)
		}

		first := NewSession(lexer.NewReplay(tokens), quiet()).Parse()
		second := NewSession(lexer.NewReplay(tokens), quiet()).Parse()
		direct := Parse(input, quiet())

		want := ast.TreeString(first.Root, true)
		if got := ast.TreeString(second.Root, true); got != want {
			t.Errorf("second parse differs:\n%s\nvs\n%s", got, want)
		}
		if got := ast.TreeString(direct.Root, true); got != want {
			t.Errorf("lexer parse differs from replay parse:\n%s\nvs\n%s", got, want)
		}
		if first.OK != second.OK || strings.Join(first.Messages, "|") != strings.Join(second.Messages, "|") {
			t.Errorf("diagnostics differ: %v vs %v", first.Messages, second.Messages)
		}
		if first.SessionID == second.SessionID {
			t.Error("sessions share an id")
		}
	}
}

func TestParser_ArenaOwnership(t *testing.T) {
	result := parse(t, "var a = f(1)(2) + -b; func g(x) { if (x) { return; } else { x = 1; } }")
	if !result.OK {
		t.Fatalf("unexpected errors: %v", result.Messages)
	}
	if err := result.Arena.Verify(result.Root); err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	reachable := 0
	ast.Inspect(result.Root, func(n ast.Node) bool {
		reachable++
		if n.ID() == 0 {
			t.Errorf("%s has no id", n.Kind())
		}
		return true
	})
	if reachable > result.Arena.Len() {
		t.Errorf("reachable %d > registered %d", reachable, result.Arena.Len())
	}

	result.Close()
	if !result.Arena.Released() {
		t.Error("Close() did not release the arena")
	}
	if _, err := result.Arena.Node(result.Root.ID()); !mdwerror.HasCode(err, mdwerror.CodeArenaReleased) {
		t.Errorf("expected ArenaReleased after Close, got %v", err)
	}
}

func TestSession_ParseOnce(t *testing.T) {
	s := NewSession(lexer.New("1 + 2"), quiet())
	defer s.Close()

	first := s.Parse()
	if second := s.Parse(); second != first {
		t.Error("Parse() returned a different result on the second call")
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Errorf("session id %q is not a UUID: %v", s.ID(), err)
	}
	if first.SessionID != s.ID() {
		t.Errorf("result id %q, session id %q", first.SessionID, s.ID())
	}
	if first.Err() != nil {
		t.Errorf("Err() = %v for a clean parse", first.Err())
	}
}

func TestSession_MaxDepth(t *testing.T) {
	input := strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20)

	opts := quiet()
	opts.MaxDepth = 10
	result := Parse(input, opts)
	defer result.Close()

	if result.OK {
		t.Fatal("expected nesting error")
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", result.Messages)
	}
	if result.Diagnostics[0].Code != mdwerror.CodeNestingTooDeep {
		t.Errorf("code = %s", result.Diagnostics[0].Code)
	}

	// the same input fits the default limit
	if ok := parse(t, input); !ok.OK {
		t.Errorf("default depth rejected input: %v", ok.Messages)
	}
}

func TestSession_MaxDepthNestedCalls(t *testing.T) {
	input := strings.Repeat("f(", 50) + "1" + strings.Repeat(")", 50)

	opts := quiet()
	opts.MaxDepth = 10
	result := Parse(input, opts)
	defer result.Close()

	if result.OK {
		t.Fatal("expected nesting error")
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", result.Messages)
	}
	if result.Diagnostics[0].Code != mdwerror.CodeNestingTooDeep {
		t.Errorf("code = %s", result.Diagnostics[0].Code)
	}

	ok := parse(t, input)
	if !ok.OK {
		t.Fatalf("default depth rejected input: %v", ok.Messages)
	}
	if got := ok.Root.Statements[0].String(); !strings.HasPrefix(got, "FuncCall(Identifier(f), [FuncCall(Identifier(f), [") {
		t.Errorf("root = %s", got)
	}
}

func TestSession_DeepInputDoesNotOverflow(t *testing.T) {
	deep := strings.Repeat("{", 100000) + strings.Repeat("}", 100000)
	result := parse(t, deep)
	if result.OK || result.Diagnostics[0].Code != mdwerror.CodeNestingTooDeep {
		t.Errorf("expected NESTING_TOO_DEEP, got %v", result.Messages)
	}

	unary := strings.Repeat("-", 100000) + "1"
	result = parse(t, unary)
	if result.OK {
		t.Error("expected deep unary chain to be rejected")
	}

	calls := strings.Repeat("f(", 100000) + "1" + strings.Repeat(")", 100000)
	result = parse(t, calls)
	if result.OK || result.Diagnostics[0].Code != mdwerror.CodeNestingTooDeep {
		t.Errorf("expected NESTING_TOO_DEEP for nested calls, got %v", result.Messages)
	}

	args := strings.Repeat("f(1, ", 100000) + "1" + strings.Repeat(")", 100000)
	result = parse(t, args)
	if result.OK || result.Diagnostics[0].Code != mdwerror.CodeNestingTooDeep {
		t.Errorf("expected NESTING_TOO_DEEP for nested arguments, got %v", result.Messages)
	}
}

func TestSession_LongChainsAreIterative(t *testing.T) {
	input := "1" + strings.Repeat(" + 1", 20000)
	result := parse(t, input)
	if !result.OK {
		t.Fatalf("long chain rejected: %v", result.Messages[0])
	}

	// left-associative: the root's left spine is as long as the chain
	depth := 0
	var n ast.Node = result.Root.Statements[0]
	for {
		bin, ok := n.(*ast.BinaryExpr)
		if !ok {
			break
		}
		depth++
		n = bin.Left
	}
	if depth != 20000 {
		t.Errorf("left spine = %d, expected 20000", depth)
	}
}

// groupChain groups a flat operand/operator chain with the operator table,
// all operators left-associative, and renders it like BinaryExpr.String
func groupChain(operands []string, ops []token.Op) string {
	pos := 0
	var group func(floor int) string
	group = func(floor int) string {
		left := operands[pos]
		for pos < len(ops) && token.Precedence(ops[pos]) >= floor {
			op := ops[pos]
			pos++
			right := group(token.Precedence(op) + 1)
			left = fmt.Sprintf("BinaryExpr(%s, %s, %s)", op.Symbol(), left, right)
		}
		return left
	}
	return group(1)
}

func TestParser_GeneratedChains(t *testing.T) {
	binaryOps := []token.Op{
		token.OpAdd, token.OpSub, token.OpMul, token.OpDiv, token.OpMod, token.OpPow,
		token.OpEq, token.OpGt, token.OpLt, token.OpGtEq, token.OpLtEq, token.OpAnd, token.OpOr,
	}
	rng := rand.New(rand.NewSource(20261018))

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(12)
		operands := make([]string, n+1)
		ops := make([]token.Op, n)
		var src strings.Builder

		for j := 0; j <= n; j++ {
			v := rng.Intn(100)
			operands[j] = fmt.Sprintf("Number(%d)", v)
			if j > 0 {
				ops[j-1] = binaryOps[rng.Intn(len(binaryOps))]
				src.WriteString(" " + ops[j-1].Symbol() + " ")
			}
			src.WriteString(strconv.Itoa(v))
		}

		input := src.String()
		result := parse(t, input)
		if !result.OK {
			t.Fatalf("parse %q failed: %v", input, result.Messages)
		}
		if len(result.Root.Statements) != 1 {
			t.Fatalf("parse %q: expected one statement, got %s", input, result.Root)
		}
		if got, want := result.Root.Statements[0].String(), groupChain(operands, ops); got != want {
			t.Fatalf("grouping of %q:\n got  %s\n want %s", input, got, want)
		}
	}
}

func TestSession_MaxErrors(t *testing.T) {
	opts := quiet()
	opts.MaxErrors = 2
	result := Parse("} } } } }", opts)
	defer result.Close()

	if len(result.Diagnostics) != 2 {
		t.Errorf("expected 2 diagnostics, got %d: %v", len(result.Diagnostics), result.Messages)
	}
	if result.OK {
		t.Error("expected OK = false")
	}

	unlimited := parse(t, "} } } } }")
	if len(unlimited.Diagnostics) != 5 {
		t.Errorf("expected 5 diagnostics without a limit, got %d", len(unlimited.Diagnostics))
	}
}

func TestStartsStatement(t *testing.T) {
	starts := []token.Kind{
		token.Identifier, token.Number, token.Var, token.LeftParen, token.While,
		token.If, token.Func, token.Semicolon, token.Break, token.Return, token.LeftBrace,
		token.Add, token.Mul, token.Not, token.Or,
	}
	for _, k := range starts {
		if !StartsStatement(k) {
			t.Errorf("StartsStatement(%s) = false", k)
		}
	}

	others := []token.Kind{
		token.RightBrace, token.RightParen, token.Comma, token.Else, token.Continue,
		token.Assign, token.EOF, token.Illegal, token.String, token.Kind(-1), token.Kind(1000),
	}
	for _, k := range others {
		if StartsStatement(k) {
			t.Errorf("StartsStatement(%s) = true", k)
		}
	}
}

func TestSession_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})

	s := NewSession(lexer.New("if (1 2) {}"), Options{Logger: logger})
	result := s.Parse()
	defer result.Close()

	out := buf.String()
	for _, want := range []string{`"component":"halang-parser"`, `"session":"` + s.ID() + `"`, "parse failed", "UNEXPECTED_TOKEN"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	input := strings.Repeat("var x = a * (b + c) - f(1, 2)(3); if (x >= 10 && y) { x = x % 3; } else { break; }\n", 50)
	opts := quiet()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := Parse(input, opts)
		if !result.OK {
			b.Fatal(result.Messages)
		}
		result.Close()
	}
}

func TestResult_Incomplete(t *testing.T) {
	tests := []struct {
		input      string
		incomplete bool
	}{
		{"x = 1", false},
		{"if (a) {", true},
		{"f(1,", true},
		{"func f(a", true},
		{"1 +", true},
		{"if (1 2) {", false},
		{"}", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parse(t, tt.input).Incomplete(); got != tt.incomplete {
				t.Errorf("Incomplete(%q) = %v, expected %v", tt.input, got, tt.incomplete)
			}
		})
	}
}
