package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/halang/foundation/core/error"
	mdwlog "github.com/msto63/halang/foundation/core/log"
)

// execute runs the root command with fresh flag values
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfgFile, verbose, outputFormat = "", false, formatTree
	parseExpr, parsePositions = "", false
	tokensExpr, checkStats = "", false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{
			name: "sexpr",
			args: []string{"parse", "--format", "sexpr", "-e", "a * b + c"},
			check: func(t *testing.T, out string) {
				want := "BinaryExpr(+, BinaryExpr(*, Identifier(a), Identifier(b)), Identifier(c))"
				if !strings.Contains(out, want) {
					t.Errorf("got %q, want it to contain %q", out, want)
				}
			},
		},
		{
			name: "tree",
			args: []string{"parse", "-e", "while (a) { b; }"},
			check: func(t *testing.T, out string) {
				for _, want := range []string{"Block", "WhileStmt", "cond: Identifier a", "body: Block"} {
					if !strings.Contains(out, want) {
						t.Errorf("tree missing %q:\n%s", want, out)
					}
				}
			},
		},
		{
			name: "tree with positions",
			args: []string{"parse", "--positions", "-e", "a;"},
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "Identifier a @1:1") {
					t.Errorf("positions missing:\n%s", out)
				}
			},
		},
		{
			name: "json",
			args: []string{"parse", "--format", "json", "-e", "x = 1;"},
			check: func(t *testing.T, out string) {
				var tree map[string]interface{}
				if err := json.Unmarshal([]byte(out), &tree); err != nil {
					t.Fatalf("invalid JSON: %v\n%s", err, out)
				}
				if tree["kind"] != "Block" {
					t.Errorf("root kind = %v, want Block", tree["kind"])
				}
			},
		},
		{
			name: "yaml",
			args: []string{"parse", "--format", "yaml", "-e", "f(1);"},
			check: func(t *testing.T, out string) {
				var tree map[string]interface{}
				if err := yaml.Unmarshal([]byte(out), &tree); err != nil {
					t.Fatalf("invalid YAML: %v\n%s", err, out)
				}
				if tree["kind"] != "Block" {
					t.Errorf("root kind = %v, want Block", tree["kind"])
				}
				if !strings.Contains(out, "FuncCall") {
					t.Errorf("call missing:\n%s", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, out)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	path := writeFile(t, "bad.ha", "var = 1;\n")

	out, errOut, err := execute(t, "parse", path)
	if !errors.Is(err, errSyntax) {
		t.Fatalf("err = %v, want errSyntax", err)
	}
	if !strings.Contains(errOut, path+":1:5:") {
		t.Errorf("diagnostic position missing:\n%s", errOut)
	}
	if !strings.Contains(errOut, "expected variable name") {
		t.Errorf("diagnostic message missing:\n%s", errOut)
	}
	if !strings.Contains(errOut, string(mdwerror.CodeMissingIdentifier)) {
		t.Errorf("diagnostic code missing:\n%s", errOut)
	}
	if !strings.Contains(out, "Block") {
		t.Errorf("partial tree not printed:\n%s", out)
	}
}

func TestParse_MissingFile(t *testing.T) {
	_, _, err := execute(t, "parse", filepath.Join(t.TempDir(), "none.ha"))
	if mdwerror.GetCode(err) != mdwerror.CodeNotFound {
		t.Errorf("code = %v, want %v (err %v)", mdwerror.GetCode(err), mdwerror.CodeNotFound, err)
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, "parse", "--format", "xml", "-e", "a;")
	if mdwerror.GetCode(err) != mdwerror.CodeInvalidInput {
		t.Errorf("code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
	}
}

func TestTokens(t *testing.T) {
	out, _, err := execute(t, "tokens", "-e", "var x = 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d tokens, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "IDENTIFIER") || !strings.Contains(lines[1], "x") {
		t.Errorf("second token = %q", lines[1])
	}

	out, _, err = execute(t, "tokens", "--format", "json", "-e", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var records []tokenRecord
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != 2 || records[0].Literal != "a" || records[0].Line != 1 {
		t.Errorf("records = %+v", records)
	}
}

func TestTokens_IllegalCharacter(t *testing.T) {
	_, errOut, err := execute(t, "tokens", "-e", "a $ b")
	if !errors.Is(err, errSyntax) {
		t.Fatalf("err = %v, want errSyntax", err)
	}
	if !strings.Contains(errOut, "illegal character") {
		t.Errorf("lexical error missing:\n%s", errOut)
	}
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.ha", "func f(a) { g(a); }\n")
	bad := writeFile(t, "bad.ha", "if (a { }\n")

	out, _, err := execute(t, "check", "--stats", good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"ok", "functions: f", "names: a, g", "calls: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "check", good, bad)
	if !errors.Is(err, errSyntax) {
		t.Fatalf("err = %v, want errSyntax", err)
	}
	if !strings.Contains(out, "FAIL "+bad) {
		t.Errorf("failing file not reported:\n%s", out)
	}
}

func TestConfig(t *testing.T) {
	path := writeFile(t, "halang.toml", "[parser]\nmax_depth = 64\n\n[log]\nlevel = \"error\"\n")

	out, _, err := execute(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"loaded from " + path, "max_depth = 64", `level = "error"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if engine.Settings().MaxDepth != 64 {
		t.Errorf("engine MaxDepth = %d, want 64", engine.Settings().MaxDepth)
	}
}

func TestConfig_Defaults(t *testing.T) {
	out, _, err := execute(t, "config", "--format", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var cfg effectiveConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}
	if cfg.Parser.MaxDepth != 512 || cfg.Log.Level != "warn" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestConfig_Invalid(t *testing.T) {
	path := writeFile(t, "halang.toml", "[parser]\nmax_depth = 0\n")

	_, _, err := execute(t, "--config", path, "config")
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	if _, _, err := execute(t, "-v", "parse", "-e", "a;"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.LogLevel != mdwlog.LevelDebug {
		t.Errorf("log level = %v, want debug", settings.LogLevel)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "halang v") {
		t.Errorf("got %q", out)
	}
}

func TestExploreConfig(t *testing.T) {
	if _, _, err := execute(t, "version"); err != nil {
		t.Fatal(err)
	}
	exploreExpr, exploreWatch = "", true
	cfg := exploreConfig([]string{"main.ha"})
	if cfg.Path != "main.ha" || !cfg.Watch || cfg.Engine == nil {
		t.Errorf("config = %+v", cfg)
	}
}

// scripted feeds prepared lines to the repl
type scripted struct {
	lines   []string
	prompts []string
}

func (s *scripted) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newTestRepl(t *testing.T, lines ...string) (*repl, *scripted, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if _, _, err := execute(t, "--format", "sexpr", "version"); err != nil {
		t.Fatal(err)
	}
	in := &scripted{lines: lines}
	var out, errOut bytes.Buffer
	return &repl{in: in, out: &out, errOut: &errOut, probe: quietEngine()}, in, &out, &errOut
}

func TestRepl_Continuation(t *testing.T) {
	r, in, out, _ := newTestRepl(t, "func f(a) {", "a + 1;", "}", ":quit")
	r.loop()

	want := []string{promptMain, promptCont, promptCont, promptMain}
	if strings.Join(in.prompts, "|") != strings.Join(want, "|") {
		t.Errorf("prompts = %q, want %q", in.prompts, want)
	}
	if !strings.Contains(out.String(), "FuncDef(f") {
		t.Errorf("function not printed:\n%s", out.String())
	}
}

func TestRepl_ErrorsAndCommands(t *testing.T) {
	r, _, out, errOut := newTestRepl(t, "x = ;", ":positions", ":bogus", "")
	var history []string
	r.history = func(s string) { history = append(history, s) }
	r.loop()

	if !strings.Contains(errOut.String(), "<repl>:1:5:") {
		t.Errorf("diagnostic missing:\n%s", errOut.String())
	}
	if !r.positions {
		t.Error(":positions did not toggle")
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("unknown command not reported:\n%s", out.String())
	}
	if len(history) != 1 || history[0] != "x = ;" {
		t.Errorf("history = %q", history)
	}
}

func TestCheck_Directory(t *testing.T) {
	dir := t.TempDir()
	for name, src := range map[string]string{"a.ha": "a;\n", "b.ha": "b;\n", "readme.txt": "{{{"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, _, err := execute(t, "check", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, "ok ") != 2 || strings.Contains(out, "readme") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
