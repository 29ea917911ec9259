// Package decode implements §4.6: turning a solved model's primal values
// back into per-class and per-teacher day×time calendars with
// human-readable cell labels.
package decode

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"go.xesthora.dev/xesthora/internal/engine"
	"go.xesthora.dev/xesthora/internal/index"
	"go.xesthora.dev/xesthora/internal/model"
	"go.xesthora.dev/xesthora/internal/solve"
)

// Decoder turns a solve.Result back into the output calendars named by
// §6's process surface: class calendars (class order) followed by teacher
// calendars (teacher order).
type Decoder struct {
	data *model.InputData
	idx  *index.Indexes
	log  *zap.Logger
}

func New(data *model.InputData, idx *index.Indexes, log *zap.Logger) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decoder{data: data, idx: idx, log: log}
}

// Decode returns every calendar in the order the process surface defines:
// one per class, in class order, then one per teacher, in teacher order.
func (dec *Decoder) Decode(result solve.Result) []*model.OutputCalendar {
	out := make([]*model.OutputCalendar, 0, len(dec.data.Classes)+len(dec.data.Teachers()))
	for _, c := range dec.data.Classes {
		out = append(out, dec.decodeClass(c, result))
	}
	for _, p := range dec.data.Teachers() {
		out = append(out, dec.decodeTeacher(p, result))
	}
	return out
}

// decodeClass builds class c's calendar per §4.6's first rule: pre-seed
// playtime slots, then for every (c,t,d,h) ∈ B with y>0, label the cell
// with t alone (playtime) or "t (p1, p2, …)" using x>0 teachers in A's
// declared order.
func (dec *Decoder) decodeClass(c model.Calendar, result solve.Result) *model.OutputCalendar {
	cal := model.NewOutputCalendar(string(c), dec.data.Days, dec.data.Times, dec.log)
	dec.preseedPlaytime(cal, c)

	for _, d := range dec.data.Days {
		for _, h := range dec.data.Times {
			for _, b := range dec.idx.ForCalendarSlot(c, d, h) {
				if result.Value(engine.YName(b)) <= 0 {
					continue
				}
				t := b.Task
				if string(t) == dec.data.PlaytimeName {
					cal.Set(d, h, string(t))
					continue
				}
				var teachers []string
				for _, a := range dec.idx.ForCalendarTaskSlot(c, t, d, h) {
					if result.Value(engine.XName(a)) > 0 {
						teachers = append(teachers, string(a.Teacher))
					}
				}
				if len(teachers) == 0 {
					continue
				}
				cal.Set(d, h, fmt.Sprintf("%s (%s)", t, strings.Join(teachers, ", ")))
			}
		}
	}
	return cal
}

// decodeTeacher builds teacher p's personal calendar per §4.6's second
// rule: pre-seed playtime slots, then for every (p,c,t,d,h) ∈ A with x>0,
// label the cell t alone when t is playtime or c is p's own personal
// calendar, else "t (c)".
func (dec *Decoder) decodeTeacher(p model.Teacher, result solve.Result) *model.OutputCalendar {
	cal := model.NewOutputCalendar(string(p), dec.data.Days, dec.data.Times, dec.log)
	dec.preseedPlaytime(cal, model.Calendar(p))

	for _, a := range dec.idx.ForTeacher(p) {
		if result.Value(engine.XName(a)) <= 0 {
			continue
		}
		if string(a.Task) == dec.data.PlaytimeName || a.Calendar == model.Calendar(p) {
			cal.Set(a.Day, a.Time, string(a.Task))
			continue
		}
		cal.Set(a.Day, a.Time, fmt.Sprintf("%s (%s)", a.Task, a.Calendar))
	}
	return cal
}

// preseedPlaytime applies §4.6's pre-seeding rule: every (calendar,day,
// time) present in Playtime.keys defaults to the playtime label before
// any decoded cell overwrites it.
func (dec *Decoder) preseedPlaytime(cal *model.OutputCalendar, calendar model.Calendar) {
	for _, k := range dec.data.Playtime.Keys() {
		if k.Calendar != calendar {
			continue
		}
		cal.Set(k.Day, k.Time, dec.data.PlaytimeName)
	}
}
