package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.xesthora.dev/xesthora/internal/model"
)

func TestNewOutputCalendar_PreSeedsEveryCellBlank(t *testing.T) {
	cal := model.NewOutputCalendar("X", []model.Day{"Mo", "Tu"}, []model.Time{"t1", "t2"}, nil)
	assert.Equal(t, "", cal.Get("Mo", "t1"))
	assert.Equal(t, "", cal.Get("Tu", "t2"))
	assert.Len(t, cal.Rows(), 4)
}

func TestOutputCalendar_SetOverwritesCell(t *testing.T) {
	cal := model.NewOutputCalendar("X", []model.Day{"Mo"}, []model.Time{"t1"}, nil)
	cal.Set("Mo", "t1", "recreo")
	assert.Equal(t, "recreo", cal.Get("Mo", "t1"))
}

func TestOutputCalendar_GetUnknownSlotIsBlank(t *testing.T) {
	cal := model.NewOutputCalendar("X", []model.Day{"Mo"}, []model.Time{"t1"}, nil)
	assert.Equal(t, "", cal.Get("Tu", "t9"))
}
