package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCBCHeader(t *testing.T) {
	cases := []struct {
		line   string
		status Status
		obj    float64
	}{
		{"Optimal - objective value 5.00000000", StatusOptimal, 5},
		{"Infeasible - objective value 0", StatusInfeasible, 0},
		{"Unbounded", StatusUnbounded, 0},
		{"Stopped on time - objective value 12.5", StatusTimeLimit, 12.5},
		{"Feasible - objective value 7", StatusFeasible, 7},
		{"gibberish", StatusOther, 0},
	}
	for _, tc := range cases {
		status, obj := parseCBCHeader(tc.line)
		assert.Equal(t, tc.status, status, tc.line)
		assert.Equal(t, tc.obj, obj, tc.line)
	}
}

func TestParseCBCSolution(t *testing.T) {
	data := []byte(
		"Optimal - objective value 5.00000000\n" +
			"   0 x#T1#X#a#Mo#t1              1              0\n" +
			"   1 y#X#a#Mo#t1                 1              0\n" +
			"   2 sp1#T1#Mo#t1                0              0\n",
	)
	status, values, objective := parseCBCSolution(data)
	assert.Equal(t, StatusOptimal, status)
	assert.Equal(t, 5.0, objective)
	assert.Equal(t, 1.0, values["x#T1#X#a#Mo#t1"])
	assert.Equal(t, 1.0, values["y#X#a#Mo#t1"])
	assert.Equal(t, 0.0, values["sp1#T1#Mo#t1"])
}

func TestParseCBCSolution_IgnoresMalformedRows(t *testing.T) {
	data := []byte("Optimal - objective value 0\n   only two fields\n")
	status, values, _ := parseCBCSolution(data)
	assert.Equal(t, StatusOptimal, status)
	assert.Empty(t, values)
}
