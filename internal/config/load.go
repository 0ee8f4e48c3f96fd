package config

import (
	"errors"
	"fmt"

	"github.com/lc/hudconf/internal/hud"
	"github.com/lc/hudconf/internal/record"
)

// loadLegacyModules applies the legacy "modules" map to the kind instances
// of the state. Every known kind is visited; ids in the file that no kind
// claims are ignored.
func loadLegacyModules(st *State, doc record.Record, rep *Report) {
	modules, ok := doc.Sub(KeyModules)
	if !ok {
		rep.issue(fmt.Errorf("%s is not a table", KeyModules))
		return
	}
	for _, m := range st.Kinds() {
		v, ok := modules[m.ID()]
		if !ok {
			continue
		}
		r, ok := record.AsRecord(v)
		if !ok {
			rep.drop(fmt.Errorf("%s.%s is not a table", KeyModules, m.ID()))
			continue
		}
		m.ApplyOverrides(r, hud.Legacy)
	}
}

// loadLegacyOrder rebuilds the columns from the legacy order lists. A list
// that resolves to nothing keeps the current column.
func loadLegacyOrder(st *State, general record.Record) {
	if left := st.Resolve(general.Strings(KeyModulesLeftOrder)); len(left) > 0 {
		st.Left = left
	}
	if right := st.Resolve(general.Strings(KeyModulesRightOrder)); len(right) > 0 {
		st.Right = right
	}
}

// loadColumns reads the current-schema module lists. Each column is only
// replaced when at least one record survived.
func loadColumns(st *State, doc record.Record, rep *Report) {
	if left := loadColumn(st.Registry(), doc, KeyModulesLeft, rep); len(left) > 0 {
		st.Left = left
	}
	if right := loadColumn(st.Registry(), doc, KeyModulesRight, rep); len(right) > 0 {
		st.Right = right
	}
}

func loadColumn(reg *hud.Registry, doc record.Record, key string, rep *Report) []hud.Module {
	items, ok := doc.Items(key)
	if !ok {
		if doc.Has(key) {
			rep.issue(fmt.Errorf("%s is not a list", key))
		}
		return nil
	}
	out := make([]hud.Module, 0, len(items))
	for i, it := range items {
		r, ok := record.AsRecord(it)
		if !ok {
			rep.drop(fmt.Errorf("%s[%d] is not a table", key, i))
			continue
		}
		name, ok := r.String(hud.KeyName)
		if !ok || name == "" {
			rep.drop(fmt.Errorf("%s[%d] has no %s", key, i, hud.KeyName))
			continue
		}
		m, err := reg.New(name)
		switch {
		case errors.Is(err, hud.ErrUnknownModule):
			rep.drop(fmt.Errorf("%s[%d]: %w", key, i, err))
			continue
		case err != nil:
			rep.Placeholders++
			rep.issue(fmt.Errorf("%s[%d]: %w, using a spacer", key, i, err))
			m = hud.NewPlaceholder()
		}
		m.ApplyOverrides(r, hud.Current)
		out = append(out, m)
	}
	return out
}
