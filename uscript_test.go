package uscript_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/uscript"
)

func TestRunHello(t *testing.T) {
	output, err := uscript.Run(`print("hello");`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", output)
}

func TestRunLen(t *testing.T) {
	output, err := uscript.Run(`print(len("hello"));`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "5\n", output)
}

func TestRunClosure(t *testing.T) {
	output, err := uscript.Run(`
		fn makeAdder(n) {
			fn (x) { x + n }
		}
		let add2 = makeAdder(2);
		print(add2(40));
	`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "42\n", output)
}

func TestRunShadowing(t *testing.T) {
	output, err := uscript.Run(`
		let a = 1;
		{
			let a = 2;
			print(a);
		}
		print(a);
	`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", output)
}

func TestRunWithInput(t *testing.T) {
	output, err := uscript.Run(`
		let name = input();
		print("hi " + name);
	`, strings.NewReader("ada\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "hi ada\n", output)
}

func TestRunCommentsIgnored(t *testing.T) {
	output, err := uscript.Run(`
		// line comment
		let x = 1; /* block
		comment */ print(x + 1);
	`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2\n", output)
}

func TestRunToConfiguredOutput(t *testing.T) {
	var sb strings.Builder
	output, err := uscript.Run(`print("direct");`, nil, &uscript.Config{Output: &sb})
	require.NoError(t, err)
	assert.Empty(t, output)
	assert.Equal(t, "direct\n", sb.String())
}

func TestExec(t *testing.T) {
	var sb strings.Builder
	err := uscript.Exec(`print(input());`, strings.NewReader("echo\n"), &sb, nil)
	require.NoError(t, err)
	assert.Equal(t, "echo\n", sb.String())
}

func TestCollectWhileValues(t *testing.T) {
	src := `
		let i = 0;
		let squares = while (i < 4) {
			i = i + 1;
			i * i
		};
		print(squares);
	`
	output, err := uscript.Run(src, nil, &uscript.Config{CollectWhileValues: true})
	require.NoError(t, err)
	assert.Equal(t, "[1, 4, 9, 16]\n", output)

	output, err = uscript.Run(src, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", output)
}

func TestParseRunMany(t *testing.T) {
	prog, err := uscript.Parse(`print("hi " + input());`)
	require.NoError(t, err)

	out1, err := prog.Run(strings.NewReader("ada\n"), nil)
	require.NoError(t, err)
	out2, err := prog.Run(strings.NewReader("grace\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, "hi ada\n", out1)
	assert.Equal(t, "hi grace\n", out2)
}

func TestParseRunsAreIndependent(t *testing.T) {
	prog, err := uscript.Parse(`
		let n = 0;
		n = n + 1;
		print(n);
	`)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		out, err := prog.Run(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.NotPanics(t, func() { uscript.MustParse(`print(1);`) })
	assert.Panics(t, func() { uscript.MustParse(`let = ;`) })
}

func TestLexError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated string", `let s = "abc`},
		{"invalid escape", `let s = "a\q";`},
		{"invalid number", `let n = 1.2.3;`},
		{"unterminated comment", `/* no end`},
		{"stray character", `let x = 1 ? 2;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uscript.Parse(tt.src)
			require.Error(t, err)

			var lexErr *uscript.LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Greater(t, lexErr.Line, 0)
			assert.Greater(t, lexErr.Column, 0)
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing semicolon", `let x = 1 let y = 2;`},
		{"missing close paren", `print(1;`},
		{"missing if parens", `if true { 1 }`},
		{"let without value", `let x;`},
		{"dangling operator", `1 +`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uscript.Parse(tt.src)
			require.Error(t, err)

			var parseErr *uscript.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Greater(t, parseErr.Line, 0)
		})
	}
}

func TestCompileError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"duplicate parameter", `fn f(a, a) { a }`, "duplicate parameter"},
		{"assign to builtin", `print = 1;`, "cannot assign to builtin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uscript.Parse(tt.src)
			require.Error(t, err)

			var compileErr *uscript.CompileError
			require.ErrorAs(t, err, &compileErr)
			assert.Contains(t, compileErr.Message, tt.want)
		})
	}
}

func TestShadowedBuiltinIsAssignable(t *testing.T) {
	output, err := uscript.Run(`
		let print = 1;
		print = 2;
		let f = len;
	`, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestRuntimeError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind uscript.ErrorKind
	}{
		{"undefined variable", `print(nope);`, uscript.NameError},
		{"type mismatch", `print(1 + "a");`, uscript.TypeError},
		{"wrong arity", `fn f(a) { a } f();`, uscript.ArityError},
		{"division by zero", `print(1 / 0);`, uscript.ArithmeticError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uscript.Run(tt.src, nil, nil)
			require.Error(t, err)

			var runtimeErr *uscript.RuntimeError
			require.ErrorAs(t, err, &runtimeErr)
			assert.Equal(t, tt.kind, runtimeErr.Kind)
			assert.Greater(t, runtimeErr.Line, 0)
		})
	}
}

func TestOutputBeforeErrorIsKept(t *testing.T) {
	var sb strings.Builder
	_, err := uscript.Run(`
		print("first");
		print(nope);
	`, nil, &uscript.Config{Output: &sb})
	require.Error(t, err)
	assert.Equal(t, "first\n", sb.String())
}

// Formatting a program and re-parsing the result must preserve behavior.
func TestFormatRoundTrip(t *testing.T) {
	src := `
		// squares below a limit
		fn square(n) { n * n }
		let limit = 30;
		let i = 1;
		while (square(i) < limit) {
			print(square(i));
			i = i + 1;
		}
		if (i > 1) { print("done"); } else { print("empty"); }
	`
	prog, err := uscript.Parse(src)
	require.NoError(t, err)

	want, err := prog.Run(nil, nil)
	require.NoError(t, err)

	formatted := prog.Format()
	reparsed, err := uscript.Parse(formatted)
	require.NoError(t, err, "formatted source must parse:\n%s", formatted)

	got, err := reparsed.Run(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Formatting is a fixed point after one pass.
	assert.Equal(t, formatted, reparsed.Format())
}

func TestSource(t *testing.T) {
	src := `print(1);`
	prog, err := uscript.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, src, prog.Source())
}
