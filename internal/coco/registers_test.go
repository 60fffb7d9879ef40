package coco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Registers_D(t *testing.T) {
	var r Registers
	r.SetD(0xbeef)
	assert.Equal(t, uint8(0xbe), r.A)
	assert.Equal(t, uint8(0xef), r.B)

	r.A = 0x12
	assert.Equal(t, uint16(0x12ef), r.D(), "D follows A and B")
}

func Test_Registers_FlagsString(t *testing.T) {
	assert.Equal(t, "--------", Registers{}.FlagsString())
	assert.Equal(t, "EFHINZVC", Registers{CC: 0xff}.FlagsString())
	assert.Equal(t, "E--I---C", Registers{CC: flagE | flagI | flagC}.FlagsString())
}

func Test_Registers_Codes(t *testing.T) {
	r := Registers{A: 0x12, B: 0x34, X: 0x5678, DP: 0x9a, CC: 0x01}

	t.Run("8-bit registers read as 0xFF00 plus value", func(t *testing.T) {
		assert.Equal(t, uint16(0xff12), r.get(regA))
		assert.Equal(t, uint16(0xff9a), r.get(regDP))
		assert.Equal(t, uint16(0xff01), r.get(regCC))
	})

	t.Run("undefined codes read all ones", func(t *testing.T) {
		assert.Equal(t, uint16(0xffff), r.get(0x6))
		assert.Equal(t, uint16(0xffff), r.get(0xf))
	})

	t.Run("writes to undefined codes are ignored", func(t *testing.T) {
		before := r
		r.set(0x7, 0x1234)
		r.set(0xc, 0x1234)
		assert.Equal(t, before, r)
	})

	t.Run("8-bit destination keeps the low byte", func(t *testing.T) {
		r := r
		r.set(regB, 0x5678)
		assert.Equal(t, uint8(0x78), r.B)
	})
}

func Test_Registers_Conditions(t *testing.T) {
	type testArgs struct {
		cc       uint8
		cond     condition
		expected bool
	}

	testDo := func(t *testing.T, in testArgs) {
		assert.Equal(t, in.expected, Registers{CC: in.cc}.test(in.cond))
	}

	t.Run("always and never", func(t *testing.T) {
		testDo(t, testArgs{cc: 0xff, cond: condAlways, expected: true})
		testDo(t, testArgs{cc: 0x00, cond: condNever, expected: false})
	})

	t.Run("unsigned", func(t *testing.T) {
		testDo(t, testArgs{cc: 0, cond: condHigher, expected: true})
		testDo(t, testArgs{cc: flagZ, cond: condHigher, expected: false})
		testDo(t, testArgs{cc: flagC, cond: condLowerOrSame, expected: true})
		testDo(t, testArgs{cc: 0, cond: condLowerOrSame, expected: false})
		testDo(t, testArgs{cc: flagC, cond: condCarrySet, expected: true})
		testDo(t, testArgs{cc: flagC, cond: condCarryClear, expected: false})
	})

	t.Run("signed", func(t *testing.T) {
		testDo(t, testArgs{cc: flagN | flagV, cond: condGreaterOrEqual, expected: true})
		testDo(t, testArgs{cc: flagN, cond: condLess, expected: true})
		testDo(t, testArgs{cc: flagV, cond: condLess, expected: true})
		testDo(t, testArgs{cc: 0, cond: condGreater, expected: true})
		testDo(t, testArgs{cc: flagZ, cond: condGreater, expected: false})
		testDo(t, testArgs{cc: flagZ, cond: condLessOrEqual, expected: true})
		testDo(t, testArgs{cc: 0, cond: condLessOrEqual, expected: false})
	})

	t.Run("single flags", func(t *testing.T) {
		testDo(t, testArgs{cc: flagZ, cond: condEqual, expected: true})
		testDo(t, testArgs{cc: flagZ, cond: condNotEqual, expected: false})
		testDo(t, testArgs{cc: flagV, cond: condOverflowSet, expected: true})
		testDo(t, testArgs{cc: 0, cond: condOverflowClear, expected: true})
		testDo(t, testArgs{cc: flagN, cond: condMinus, expected: true})
		testDo(t, testArgs{cc: flagN, cond: condPlus, expected: false})
	})
}
