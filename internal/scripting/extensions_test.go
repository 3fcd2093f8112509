package scripting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap/zaptest"

	"github.com/kperrault/ganksense/internal/refdata"
	"github.com/kperrault/ganksense/internal/scripting"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadComboExtensionsRegistersCombo(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "ahri.lua", `
register_combo{
    champion   = "Ahri",
    label      = "Charm burst",
    cast_order = "E > Q > W > R",
    components = {
        { label = "Q", base = {40, 65, 90, 115, 140}, ap_ratio = 0.45, type = "magic", rank = "q" },
        { label = "AA", base = 0, ad_ratio = 1.0, type = "physical" },
    },
}
`)

	combos, err := scripting.LoadComboExtensions(dir, 0, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, combos, 1)

	combo, ok := combos["ahri"]
	require.True(t, ok, "champion name is canonicalized")
	assert.Equal(t, "Charm burst", combo.Label)
	assert.Equal(t, "E > Q > W > R", combo.CastOrder)
	require.Len(t, combo.Components, 2)

	q := combo.Components[0]
	assert.Equal(t, []float64{40, 65, 90, 115, 140}, q.Base)
	assert.Equal(t, 0.45, q.APRatio)
	assert.Equal(t, refdata.DamageMagic, q.Type)
	assert.Equal(t, refdata.RankQ, q.Rank)

	aa := combo.Components[1]
	assert.Equal(t, []float64{0}, aa.Base, "a bare number becomes a single-entry base")
	assert.Equal(t, refdata.RankNone, aa.Rank)
}

func TestLoadComboExtensionsCanonicalizesApostrophes(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "khazix.lua", `
register_combo{
    champion   = "Kha'Zix",
    components = {{ label = "Q", base = 70, ad_ratio = 1.1, type = "physical", rank = "q" }},
}
`)

	combos, err := scripting.LoadComboExtensions(dir, 0, zaptest.NewLogger(t))
	require.NoError(t, err)
	_, ok := combos["khazix"]
	assert.True(t, ok)
}

func TestLoadComboExtensionsRejectsInvalidCombo(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing champion", `register_combo{components = {{label = "Q", type = "physical"}}}`},
		{"no components", `register_combo{champion = "Ahri", components = {}}`},
		{"bad damage type", `register_combo{champion = "Ahri", components = {{label = "Q", type = "chaos"}}}`},
		{"components not a table", `register_combo{champion = "Ahri", components = "Q"}`},
		{"base not numeric", `register_combo{champion = "Ahri", components = {{label = "Q", base = {"x"}, type = "magic"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeScript(t, dir, "bad.lua", tt.script)

			_, err := scripting.LoadComboExtensions(dir, 0, zaptest.NewLogger(t))
			assert.Error(t, err)
		})
	}
}

func TestLoadComboExtensionsLaterScriptOverrides(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "01_first.lua", `
register_combo{champion = "Ahri", label = "first",
    components = {{label = "Q", base = 40, type = "magic", rank = "q"}}}
`)
	writeScript(t, dir, "02_second.lua", `
register_combo{champion = "Ahri", label = "second",
    components = {{label = "Q", base = 60, type = "magic", rank = "q"}}}
`)

	combos, err := scripting.LoadComboExtensions(dir, 0, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, combos, 1)
	assert.Equal(t, "second", combos["ahri"].Label)
}

func TestLoadComboExtensionsLuaError(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "broken.lua", `this is not lua`)

	_, err := scripting.LoadComboExtensions(dir, 0, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.lua")
}

func TestLoadComboExtensionsMissingDir(t *testing.T) {
	_, err := scripting.LoadComboExtensions(filepath.Join(t.TempDir(), "nope"), 0, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestLoadComboExtensionsEmptyDir(t *testing.T) {
	combos, err := scripting.LoadComboExtensions(t.TempDir(), 0, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Empty(t, combos)
}

func TestSandboxedStateStripsDangerousGlobals(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "collectgarbage", "require"} {
		assert.Equal(t, lua.LNil, L.GetGlobal(name), name)
	}
	// os and io are never opened.
	assert.Equal(t, lua.LNil, L.GetGlobal("os"))
	assert.Equal(t, lua.LNil, L.GetGlobal("io"))

	// Safe libraries stay available.
	assert.NotEqual(t, lua.LNil, L.GetGlobal("math"))
	assert.NotEqual(t, lua.LNil, L.GetGlobal("string"))
}

func TestSandboxedStateInstructionLimit(t *testing.T) {
	L := scripting.NewSandboxedState(1000)
	defer L.Close()

	err := L.DoString(`while true do end`)
	assert.Error(t, err, "an infinite loop must be terminated by the opcode budget")
}

func TestSandboxedStateRunsPlainScripts(t *testing.T) {
	L := scripting.NewSandboxedState(0)
	defer L.Close()

	require.NoError(t, L.DoString(`x = 2 + 3`))
	assert.Equal(t, lua.LNumber(5), L.GetGlobal("x"))
}

func TestInfiniteLoopInScriptFileFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "spin.lua", `while true do end`)

	_, err := scripting.LoadComboExtensions(dir, 5000, zaptest.NewLogger(t))
	assert.Error(t, err)
}
