package engine

import (
	"fmt"

	"go.xesthora.dev/xesthora/internal/index"
	"go.xesthora.dev/xesthora/internal/model"
)

// Deterministic variable-name construction for every decision/slack
// variable the model builder declares. Names double as the join key between
// internal/ilp.Model and internal/solve's backend-specific rendering.

func XName(a index.AKey) string {
	return fmt.Sprintf("x#%s#%s#%s#%s#%s", a.Teacher, a.Calendar, a.Task, a.Day, a.Time)
}

func YName(b index.BKey) string {
	return fmt.Sprintf("y#%s#%s#%s#%s", b.Calendar, b.Task, b.Day, b.Time)
}

const MGardaName = "M_garda"

func Sp1Name(p model.Teacher, d model.Day, h model.Time) string {
	return fmt.Sprintf("sp1#%s#%s#%s", p, d, h)
}

func Sn1Name(p model.Teacher, d model.Day, h model.Time) string {
	return fmt.Sprintf("sn1#%s#%s#%s", p, d, h)
}

func Sp2Name(c model.Calendar, t model.Task) string {
	return fmt.Sprintf("sp2#%s#%s", c, t)
}

func Sn2Name(c model.Calendar, t model.Task) string {
	return fmt.Sprintf("sn2#%s#%s", c, t)
}
