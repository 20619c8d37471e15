package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"altkey/internal/config"
	"altkey/internal/lint"
)

// testGlobals returns Globals writing into buffers
func testGlobals() (*Globals, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Globals{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

// isolate points settings and logging at a scratch home
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("ALTKEY_HOME", t.TempDir())
	t.Setenv("ALTKEY_SETTINGS", "")
	t.Setenv("ALTKEY_DEBUG", "")
	t.Setenv("ALTKEY_DEBUG_FILE", "")
}

func newParser(t *testing.T, target any) *kong.Kong {
	t.Helper()
	parser, err := kong.New(target, append(Options("test", "test"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))...)
	require.NoError(t, err)
	return parser
}

const unannotated = `[
  {
    "key": "ctrl+k",
    "command": "editor.action.deleteLines"
  }
]
`

var placeholderLine = regexp.MustCompile(`(?m)^    // "command": "ctrl\+k [0-9a-f]{4}"\n    "command": "editor\.action\.deleteLines"$`)

func TestModelCmdStdout(t *testing.T) {
	g, stdout, _ := testGlobals()

	require.NoError(t, (&ModelCmd{}).Run(g))

	out := stdout.String()
	require.True(t, gjson.Valid(out))
	items := gjson.Parse(out).Array()
	require.Len(t, items, 21*9)

	hex := regexp.MustCompile(`^[0-9a-f]{4}$`)
	for _, item := range items {
		key := item.Get("key").String()
		command := item.Get("command").String()
		require.True(t, strings.HasPrefix(command, key+" "), command)
		assert.Regexp(t, hex, strings.TrimPrefix(command, key+" "))
	}
	assert.Equal(t, "altKey.enabled && altKey.vi", gjson.Get(out, `#(key=="ctrl+alt+h").when`).String())
	assert.Equal(t, "altKey.enabled && altKey.arrows", gjson.Get(out, `#(key=="alt+pagedown").when`).String())
	assert.Equal(t, "altKey.enabled", gjson.Get(out, `#(key=="shift+alt+;").when`).String())
}

func TestModelCmdSeededIsReproducible(t *testing.T) {
	run := func() string {
		g, stdout, _ := testGlobals()
		require.NoError(t, (&ModelCmd{Seeded: true, Seed: seedOf(7)}).Run(g))
		return stdout.String()
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Contains(t, first, "    // (left) (vi) - alt+h\n    \"key\": \"alt+h\",\n")
	assert.Empty(t, lint.Lint(first))
}

func TestModelCmdSeedFromSettings(t *testing.T) {
	seed := int64(7)
	withSettings := func(s *config.Settings) string {
		g, stdout, _ := testGlobals()
		g.settings = s
		require.NoError(t, (&ModelCmd{Seeded: true}).Run(g))
		return stdout.String()
	}

	fromSettings := withSettings(&config.Settings{Seed: &seed})

	g, stdout, _ := testGlobals()
	require.NoError(t, (&ModelCmd{Seeded: true, Seed: seedOf(7)}).Run(g))
	assert.Equal(t, stdout.String(), fromSettings)
	assert.NotEqual(t, withSettings(nil), fromSettings)
}

func TestModelCmdExplicitSeedBeatsSettings(t *testing.T) {
	settingsSeed := int64(7)
	run := func(cmd *ModelCmd, s *config.Settings) string {
		g, stdout, _ := testGlobals()
		g.settings = s
		require.NoError(t, cmd.Run(g))
		return stdout.String()
	}

	defaultOut := run(&ModelCmd{Seeded: true}, nil)
	explicit := run(&ModelCmd{Seeded: true, Seed: seedOf(defaultSeed)}, &config.Settings{Seed: &settingsSeed})
	assert.Equal(t, defaultOut, explicit)
}

func TestModelCmdWhenIsNotEscaped(t *testing.T) {
	for _, seeded := range []bool{false, true} {
		g, stdout, _ := testGlobals()
		require.NoError(t, (&ModelCmd{Seeded: seeded}).Run(g))

		out := stdout.String()
		assert.Contains(t, out, `"when": "altKey.enabled && altKey.vi"`, "seeded=%v", seeded)
		assert.Contains(t, out, `"when": "altKey.enabled && altKey.arrows"`, "seeded=%v", seeded)
		assert.NotContains(t, out, `\u0026`, "seeded=%v", seeded)
	}
}

func TestModelCmdTablesFromSettings(t *testing.T) {
	g, stdout, _ := testGlobals()
	g.settings = &config.Settings{
		Modifiers: config.StringArray{"ctrl+"},
		Keys:      config.StringArray{"x", "y"},
	}

	require.NoError(t, (&ModelCmd{}).Run(g))

	keys := gjson.Get(stdout.String(), "#.key").Array()
	require.Len(t, keys, 2)
	assert.Equal(t, "ctrl+x", keys[0].String())
	assert.Equal(t, "ctrl+y", keys[1].String())
}

func TestModelCmdOut(t *testing.T) {
	g, stdout, _ := testGlobals()
	path := filepath.Join(t.TempDir(), "model.json")

	require.NoError(t, (&ModelCmd{Out: path}).Run(g))

	assert.Equal(t, "Wrote "+path+"\n", stdout.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, gjson.ValidBytes(data))
	assert.True(t, strings.HasSuffix(string(data), "]\n"))
}

func TestCommentsCmdInPlace(t *testing.T) {
	g, stdout, _ := testGlobals()
	path := filepath.Join(t.TempDir(), "keybindings.json")
	require.NoError(t, os.WriteFile(path, []byte(unannotated), 0644))

	c := &CommentsCmd{Path: path}
	require.NoError(t, c.Run(g))

	assert.Equal(t, "Wrote "+path+" (backup at "+path+".bak)\n", stdout.String())

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, unannotated, string(backup))

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, placeholderLine, string(first))
	assert.Equal(t, len(strings.Split(unannotated, "\n"))+1, len(strings.Split(string(first), "\n")))

	// second run finds the placeholder and changes nothing
	require.NoError(t, c.Run(g))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	backup, err = os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, string(first), string(backup))
}

func TestCommentsCmdNoInplace(t *testing.T) {
	g, stdout, _ := testGlobals()
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.json")
	require.NoError(t, os.WriteFile(path, []byte(unannotated), 0644))

	c := &CommentsCmd{Path: path, NoInplace: true, ids: fixedIDs("c0de")}
	require.NoError(t, c.Run(g))

	assert.Equal(t, strings.Replace(unannotated,
		`    "command"`, "    // \"command\": \"ctrl+k c0de\"\n    \"command\"", 1), stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, unannotated, string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCommentsCmdMissingFile(t *testing.T) {
	g, _, _ := testGlobals()
	path := filepath.Join(t.TempDir(), "missing.json")

	assert.Error(t, (&CommentsCmd{Path: path}).Run(g))
	assert.Error(t, (&CommentsCmd{Path: path, NoInplace: true}).Run(g))
}

func TestLintCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.json")
	require.NoError(t, os.WriteFile(path, []byte(unannotated), 0644))

	t.Run("reports issues without failing", func(t *testing.T) {
		g, stdout, _ := testGlobals()
		require.NoError(t, (&LintCmd{Path: path}).Run(g))
		assert.Contains(t, stdout.String(), "Found 1 issue(s):")
		assert.Contains(t, stdout.String(), " - line 3: "+lint.MsgMissing)
	})

	t.Run("strict fails", func(t *testing.T) {
		g, _, _ := testGlobals()
		err := (&LintCmd{Path: path, Strict: true}).Run(g)
		assert.ErrorIs(t, err, lint.ErrIssuesFound)
	})

	t.Run("details", func(t *testing.T) {
		g, stdout, _ := testGlobals()
		require.NoError(t, (&LintCmd{Path: path, Details: true}).Run(g))
		assert.Contains(t, stdout.String(), `>     3:     "key": "ctrl+k",`)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		g, stdout, stderr := testGlobals()
		missing := filepath.Join(dir, "nope.json")
		require.NoError(t, (&LintCmd{Path: missing, Strict: true}).Run(g))
		assert.Equal(t, "ERROR: file not found: "+missing+"\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("unreadable path is not an error", func(t *testing.T) {
		g, _, stderr := testGlobals()
		require.NoError(t, (&LintCmd{Path: dir}).Run(g))
		assert.True(t, strings.HasPrefix(stderr.String(), "ERROR: failed to lint "+dir+": "))
	})

	t.Run("settings replace the default path", func(t *testing.T) {
		g, stdout, _ := testGlobals()
		g.settings = &config.Settings{LintPath: path}
		require.NoError(t, (&LintCmd{Path: lint.DefaultPath}).Run(g))
		assert.Contains(t, stdout.String(), "Found 1 issue(s):")
	})

	t.Run("file is untouched", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, unannotated, string(data))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestStripCmd(t *testing.T) {
	in := "// header\n[\n  {\n    /* note */ \"key\": \"ctrl+k\" // trailing\n  }\n]\n\n"

	t.Run("default", func(t *testing.T) {
		g, stdout, _ := testGlobals()
		g.Stdin = strings.NewReader(in)
		require.NoError(t, (&StripCmd{}).Run(g))
		assert.Equal(t, "[\n  {\n     \"key\": \"ctrl+k\" \n  }\n]\n", stdout.String())
	})

	t.Run("validate passes", func(t *testing.T) {
		g, stdout, _ := testGlobals()
		g.Stdin = strings.NewReader(in)
		require.NoError(t, (&StripCmd{Validate: true}).Run(g))
		assert.True(t, gjson.Valid(stdout.String()))
	})

	t.Run("validate fails", func(t *testing.T) {
		g, stdout, _ := testGlobals()
		g.Stdin = strings.NewReader(`{"url": "https://example.com"}`)
		assert.ErrorIs(t, (&StripCmd{Validate: true}).Run(g), ErrInvalidJSON)
		assert.Empty(t, stdout.String())
	})

	t.Run("string aware", func(t *testing.T) {
		g, stdout, _ := testGlobals()
		g.Stdin = strings.NewReader(`{"url": "https://example.com"} // site`)
		require.NoError(t, (&StripCmd{StringAware: true, Validate: true}).Run(g))
		assert.Equal(t, "https://example.com", gjson.Get(stdout.String(), "url").String())
	})
}

func TestToolParsing(t *testing.T) {
	isolate(t)

	t.Run("comments", func(t *testing.T) {
		var tool CommentsTool
		_, err := newParser(t, &tool).Parse([]string{"--no-inplace", "refs/keybindings.json"})
		require.NoError(t, err)
		assert.True(t, tool.NoInplace)
		assert.Equal(t, "refs/keybindings.json", tool.Path)
	})

	t.Run("comments requires a path", func(t *testing.T) {
		var tool CommentsTool
		_, err := newParser(t, &tool).Parse(nil)
		assert.Error(t, err)
	})

	t.Run("lint defaults", func(t *testing.T) {
		var tool LintTool
		_, err := newParser(t, &tool).Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, lint.DefaultPath, tool.Path)
		assert.False(t, tool.Details)
		assert.NotNil(t, tool.settings)
	})

	t.Run("lint flags", func(t *testing.T) {
		var tool LintTool
		_, err := newParser(t, &tool).Parse([]string{"other.json", "--details", "--strict"})
		require.NoError(t, err)
		assert.Equal(t, "other.json", tool.Path)
		assert.True(t, tool.Details)
		assert.True(t, tool.Strict)
	})

	t.Run("model", func(t *testing.T) {
		var tool ModelTool
		_, err := newParser(t, &tool).Parse([]string{"--seeded"})
		require.NoError(t, err)
		assert.True(t, tool.Seeded)
		assert.Nil(t, tool.Seed)
		assert.Empty(t, tool.Out)
	})

	t.Run("model out is kept as given", func(t *testing.T) {
		var tool ModelTool
		_, err := newParser(t, &tool).Parse([]string{"--out", "out/model.json"})
		require.NoError(t, err)
		assert.Equal(t, "out/model.json", tool.Out)
	})

	t.Run("model explicit seed", func(t *testing.T) {
		var tool ModelTool
		_, err := newParser(t, &tool).Parse([]string{"--seeded", "--seed", "42"})
		require.NoError(t, err)
		require.NotNil(t, tool.Seed)
		assert.Equal(t, int64(42), *tool.Seed)
	})

	t.Run("strip rejects unknown flags", func(t *testing.T) {
		var tool StripTool
		_, err := newParser(t, &tool).Parse([]string{"--bogus"})
		assert.Error(t, err)
	})

	t.Run("umbrella", func(t *testing.T) {
		var cli CLI
		ctx, err := newParser(t, &cli).Parse([]string{"lint", "--details"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ctx.Command(), "lint"), ctx.Command())
		assert.True(t, cli.Lint.Details)
		assert.Equal(t, lint.DefaultPath, cli.Lint.Path)
	})
}

func TestGlobalsSettingsPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("ALTKEY_MAX_LOG_FILES", "")
	os.Unsetenv("ALTKEY_MAX_LOG_FILES")
	os.Unsetenv("ALTKEY_DEBUG")

	settingsPath := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`{
  // comments are allowed
  "max_log_files": 5,
  "lint_path": "custom.json",
  "keys": "a, b"
}`), 0644))

	g, _, _ := testGlobals()
	g.Settings = settingsPath
	g.MaxLogFiles = 1000
	require.NoError(t, g.initialize())

	assert.Equal(t, 5, g.MaxLogFiles)
	assert.Equal(t, "custom.json", g.settings.LintPath)
	assert.Equal(t, config.StringArray{"a", "b"}, g.settings.Keys)
	assert.False(t, g.Debug)

	g2, _, _ := testGlobals()
	g2.Settings = settingsPath
	g2.MaxLogFiles = 10
	require.NoError(t, g2.initialize())
	assert.Equal(t, 10, g2.MaxLogFiles)
}

func TestGlobalsBadSettingsWarns(t *testing.T) {
	isolate(t)
	settingsPath := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`{"keys": 3}`), 0644))

	g, _, stderr := testGlobals()
	g.Settings = settingsPath
	require.NoError(t, g.initialize())

	assert.Contains(t, stderr.String(), "Warning: failed to load settings")
	assert.NotNil(t, g.settings)
}

func seedOf(n int64) *int64 { return &n }

type fixedIDs string

func (f fixedIDs) NewID() string { return string(f) }
