package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/refdata"
)

// LoadComboExtensions executes every *.lua file in scriptDir (lexicographic
// order) inside one sandboxed VM and collects the combos the scripts
// register. A script registers a combo by calling the injected global:
//
//	register_combo{
//	    champion   = "Ahri",
//	    label      = "Charm burst",
//	    cast_order = "E > Q > W > R",
//	    components = {
//	        { label = "Q", base = {40, 65, 90, 115, 140},
//	          ap_ratio = 0.45, type = "magic", rank = "q" },
//	    },
//	}
//
// Champion names are canonicalized, so scripts may use display names.
// Every registered combo is validated; one invalid combo fails the whole
// load so a typo cannot silently vanish.
//
// Precondition: scriptDir must be a readable directory; logger must be
// non-nil.
// Postcondition: Returns the registered combos keyed by canonical champion
// key, or an error naming the offending script.
func LoadComboExtensions(scriptDir string, instLimit int, logger *zap.Logger) (map[string]refdata.ComboDefinition, error) {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return nil, fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	combos := make(map[string]refdata.ComboDefinition)

	L := NewSandboxedState(instLimit)
	defer L.Close()

	var regErr error
	L.SetGlobal("register_combo", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		key, combo, err := comboFromTable(tbl)
		if err != nil {
			if regErr == nil {
				regErr = err
			}
			L.RaiseError("%v", err)
			return 0
		}
		if _, exists := combos[key]; exists {
			logger.Warn("combo extension overrides earlier registration",
				zap.String("champion", key),
			)
		}
		combos[key] = combo
		return 0
	}))

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			if regErr != nil {
				return nil, fmt.Errorf("scripting: loading %q: %w", path, regErr)
			}
			return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	logger.Info("combo extensions loaded",
		zap.Int("scripts", len(luaFiles)),
		zap.Int("combos", len(combos)),
	)
	return combos, nil
}

func comboFromTable(tbl *lua.LTable) (string, refdata.ComboDefinition, error) {
	champion := stringField(tbl, "champion")
	if champion == "" {
		return "", refdata.ComboDefinition{}, fmt.Errorf("register_combo: champion is required")
	}
	key := snapshot.CanonicalKey(champion)

	combo := refdata.ComboDefinition{
		Label:     stringField(tbl, "label"),
		CastOrder: stringField(tbl, "cast_order"),
	}

	compsVal := tbl.RawGetString("components")
	compsTbl, ok := compsVal.(*lua.LTable)
	if !ok {
		return "", refdata.ComboDefinition{}, fmt.Errorf("register_combo %q: components must be a table", champion)
	}

	var convErr error
	compsTbl.ForEach(func(_, v lua.LValue) {
		if convErr != nil {
			return
		}
		compTbl, ok := v.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("register_combo %q: component entries must be tables", champion)
			return
		}
		comp, err := componentFromTable(compTbl)
		if err != nil {
			convErr = fmt.Errorf("register_combo %q: %w", champion, err)
			return
		}
		combo.Components = append(combo.Components, comp)
	})
	if convErr != nil {
		return "", refdata.ComboDefinition{}, convErr
	}

	if err := combo.Validate(); err != nil {
		return "", refdata.ComboDefinition{}, fmt.Errorf("register_combo %q: %w", champion, err)
	}
	return key, combo, nil
}

func componentFromTable(tbl *lua.LTable) (refdata.DamageComponent, error) {
	comp := refdata.DamageComponent{
		Label:      stringField(tbl, "label"),
		ADRatio:    floatField(tbl, "ad_ratio"),
		APRatio:    floatField(tbl, "ap_ratio"),
		MaxHPRatio: floatField(tbl, "max_hp_ratio"),
		Type:       refdata.DamageType(stringField(tbl, "type")),
		Rank:       refdata.RankSlot(stringField(tbl, "rank")),
	}

	baseVal := tbl.RawGetString("base")
	switch base := baseVal.(type) {
	case *lua.LTable:
		var convErr error
		base.ForEach(func(_, v lua.LValue) {
			n, ok := v.(lua.LNumber)
			if !ok {
				convErr = fmt.Errorf("component %q: base entries must be numbers", comp.Label)
				return
			}
			comp.Base = append(comp.Base, float64(n))
		})
		if convErr != nil {
			return refdata.DamageComponent{}, convErr
		}
	case lua.LNumber:
		comp.Base = []float64{float64(base)}
	case *lua.LNilType:
	default:
		return refdata.DamageComponent{}, fmt.Errorf("component %q: base must be a number or table", comp.Label)
	}

	return comp, nil
}

func stringField(tbl *lua.LTable, name string) string {
	if s, ok := tbl.RawGetString(name).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func floatField(tbl *lua.LTable, name string) float64 {
	if n, ok := tbl.RawGetString(name).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}
