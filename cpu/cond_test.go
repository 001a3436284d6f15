package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondPredicates(t *testing.T) {
	p := &PSW{N: true, Z: false, C: true, V: false}
	assert.False(t, p.cond(0))  // EQ: Z
	assert.True(t, p.cond(1))   // NE
	assert.True(t, p.cond(2))   // CS
	assert.False(t, p.cond(3))  // CC
	assert.True(t, p.cond(4))   // MI
	assert.False(t, p.cond(5))  // PL
	assert.False(t, p.cond(6))  // VS
	assert.True(t, p.cond(7))   // VC
	assert.True(t, p.cond(8))   // HI: C && !Z
	assert.False(t, p.cond(9))  // LS
	assert.False(t, p.cond(10)) // GE: N==V -> true==false -> false
	assert.True(t, p.cond(11))  // LT
	assert.False(t, p.cond(12)) // GT
	assert.True(t, p.cond(13))  // LE
	assert.True(t, p.cond(14))  // AL
	assert.False(t, p.cond(15)) // reserved
}
