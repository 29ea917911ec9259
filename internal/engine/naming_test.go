package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.xesthora.dev/xesthora/internal/engine"
	"go.xesthora.dev/xesthora/internal/index"
)

func TestXName_Format(t *testing.T) {
	name := engine.XName(index.AKey{Teacher: "T1", Calendar: "X", Task: "a", Day: "Mo", Time: "t1"})
	assert.Equal(t, "x#T1#X#a#Mo#t1", name)
}

func TestYName_Format(t *testing.T) {
	name := engine.YName(index.BKey{Calendar: "X", Task: "a", Day: "Mo", Time: "t1"})
	assert.Equal(t, "y#X#a#Mo#t1", name)
}

func TestSlackNames_Format(t *testing.T) {
	assert.Equal(t, "sp1#T1#Mo#t1", engine.Sp1Name("T1", "Mo", "t1"))
	assert.Equal(t, "sn1#T1#Mo#t1", engine.Sn1Name("T1", "Mo", "t1"))
	assert.Equal(t, "sp2#X#a", engine.Sp2Name("X", "a"))
	assert.Equal(t, "sn2#X#a", engine.Sn2Name("X", "a"))
}
