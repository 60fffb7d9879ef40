package coco

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Indexed(t *testing.T) {
	type testArgs struct {
		bytes          []uint8 // postbyte and trailing bytes at $1000
		initX          uint16
		expectedAddr   uint16
		expectedX      uint16
		expectedN      int
		expectedCycles int
	}

	testDo := func(t *testing.T, in testArgs) {
		cpu, mem := newTestCPU(0x1000, in.bytes...)
		mem.load(0xb000, 0x12, 0x34)
		cpu.reg.X = in.initX
		cpu.reg.A = 0xfe
		cpu.reg.B = 0x10

		addr, n, cycles, err := cpu.indexed()
		require.NoError(t, err)

		assert.Equal(t, in.expectedAddr, addr, "effective address")
		assert.Equal(t, in.expectedX, cpu.reg.X, "X register")
		assert.Equal(t, in.expectedN, n, "bytes consumed")
		assert.Equal(t, uint16(0x1000+in.expectedN), cpu.reg.PC, "PC")
		assert.Equal(t, in.expectedCycles, cycles, "extra cycles")
	}

	t.Run("0,R", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x84}, initX: 0xb000, expectedAddr: 0xb000, expectedX: 0xb000, expectedN: 1})
	})

	t.Run("post-increment by two", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x81}, initX: 0xb000, expectedAddr: 0xb000, expectedX: 0xb002, expectedN: 1, expectedCycles: 3})
	})

	t.Run("post-increment by two, indirect", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x91}, initX: 0xb000, expectedAddr: 0x1234, expectedX: 0xb002, expectedN: 1, expectedCycles: 6})
	})

	t.Run("post-increment by one", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x80}, initX: 0xb000, expectedAddr: 0xb000, expectedX: 0xb001, expectedN: 1, expectedCycles: 2})
	})

	t.Run("pre-decrement by one", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x82}, initX: 0xb001, expectedAddr: 0xb000, expectedX: 0xb000, expectedN: 1, expectedCycles: 2})
	})

	t.Run("pre-decrement by two", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x83}, initX: 0xb002, expectedAddr: 0xb000, expectedX: 0xb000, expectedN: 1, expectedCycles: 3})
	})

	t.Run("5-bit negative offset", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x1f}, initX: 0xb000, expectedAddr: 0xafff, expectedX: 0xb000, expectedN: 1, expectedCycles: 1})
	})

	t.Run("5-bit positive offset", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x0f}, initX: 0xb000, expectedAddr: 0xb00f, expectedX: 0xb000, expectedN: 1, expectedCycles: 1})
	})

	t.Run("B,R", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x85}, initX: 0xb000, expectedAddr: 0xb010, expectedX: 0xb000, expectedN: 1, expectedCycles: 1})
	})

	t.Run("A,R is signed", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x86}, initX: 0xb000, expectedAddr: 0xaffe, expectedX: 0xb000, expectedN: 1, expectedCycles: 1})
	})

	t.Run("D,R", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x8b}, initX: 0x0001, expectedAddr: 0xfe11, expectedX: 0x0001, expectedN: 1, expectedCycles: 4})
	})

	t.Run("8-bit offset", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x88, 0x80}, initX: 0xb000, expectedAddr: 0xaf80, expectedX: 0xb000, expectedN: 2, expectedCycles: 1})
	})

	t.Run("16-bit offset wraps", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x89, 0x60, 0x00}, initX: 0xb000, expectedAddr: 0x1000, expectedX: 0xb000, expectedN: 3, expectedCycles: 4})
	})

	t.Run("8-bit PC relative", func(t *testing.T) {
		// PC is $1002 after the offset byte
		testDo(t, testArgs{bytes: []uint8{0x8c, 0x10}, expectedAddr: 0x1012, expectedN: 2, expectedCycles: 1})
	})

	t.Run("16-bit PC relative", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x8d, 0xff, 0xfd}, expectedAddr: 0x1000, expectedN: 3, expectedCycles: 5})
	})

	t.Run("extended indirect", func(t *testing.T) {
		testDo(t, testArgs{bytes: []uint8{0x9f, 0xb0, 0x00}, expectedAddr: 0x1234, expectedN: 3, expectedCycles: 5})
	})
}

func Test_Indexed_Registers(t *testing.T) {
	cpu, _ := newTestCPU(0x1000, 0xa0, 0xc1)
	cpu.reg.Y = 0x2000
	cpu.reg.S = 0x3000

	// ,Y+
	addr, _, _, err := cpu.indexed()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x2000), addr)
	assert.Equal(t, uint16(0x2001), cpu.reg.Y)

	// ,U++
	cpu.reg.U = 0x4000
	addr, _, _, err = cpu.indexed()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x4000), addr)
	assert.Equal(t, uint16(0x4002), cpu.reg.U)
	assert.Equal(t, uint16(0x3000), cpu.reg.S)
}

func Test_Indexed_Illegal(t *testing.T) {
	for _, postbyte := range []uint8{0x90, 0x92, 0x87, 0x8a, 0x8e, 0x8f, 0x97, 0x9a, 0x9e, 0xf0} {
		cpu, _ := newTestCPU(0x1000, 0xa6, postbyte)
		cpu.reg.X = 0xb000
		cpu.reg.U = 0xb000
		cpu.reg.S = 0xb000
		before := cpu.reg

		n, err := cpu.Step()
		require.Error(t, err, "postbyte %02X", postbyte)
		assert.True(t, errors.Is(err, ErrMalformedInstruction))
		assert.Equal(t, 0, n)

		var mi *MalformedInstruction
		require.True(t, errors.As(err, &mi))
		assert.True(t, mi.Indexed)
		assert.Equal(t, postbyte, mi.Postbyte)
		assert.Equal(t, uint16(0x1000), mi.PC)
		assert.Equal(t, uint8(0xa6), mi.Opcode)

		before.PC = 0x1002
		assert.Equal(t, before, cpu.reg, "only the consumed bytes move PC")
	}
}

func Test_Resolve(t *testing.T) {
	t.Run("direct uses DP", func(t *testing.T) {
		cpu, mem := newTestCPU(0x1000, 0x34)
		mem.load(0x1234, 0x99)
		cpu.reg.DP = 0x12
		op, err := cpu.resolve(addrModeDIR, widthByte)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x1234), op.addr)
		assert.Equal(t, uint8(0x99), op.value8)
		assert.Equal(t, 1, op.n)
	})

	t.Run("extended word", func(t *testing.T) {
		cpu, mem := newTestCPU(0x1000, 0x20, 0x00)
		mem.load(0x2000, 0xca, 0xfe)
		op, err := cpu.resolve(addrModeEXT, widthWord)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x2000), op.addr)
		assert.Equal(t, uint16(0xcafe), op.value16)
		assert.Equal(t, uint16(0x1002), cpu.reg.PC)
	})

	t.Run("immediate word", func(t *testing.T) {
		cpu, _ := newTestCPU(0x1000, 0xbe, 0xef)
		op, err := cpu.resolve(addrModeIMM, widthWord)
		require.NoError(t, err)
		assert.Equal(t, uint16(0xbeef), op.value16)
		assert.Equal(t, 2, op.n)
	})

	t.Run("address only operands don't read memory", func(t *testing.T) {
		mem := &memMock{}
		mem.On("Read8", uint16(0x1000)).Return(uint8(0x20)).Once()
		mem.On("Read8", uint16(0x1001)).Return(uint8(0x00)).Once()

		cpu := NewCPU(mem)
		cpu.reg.PC = 0x1000
		op, err := cpu.resolve(addrModeEXT, widthNone)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x2000), op.addr)
		mem.AssertExpectations(t)
	})

	t.Run("indexed cycles reach Step", func(t *testing.T) {
		// LDA ,X+
		cpu, _ := newTestCPU(0x1000, 0xa6, 0x80)
		n, err := cpu.Step()
		require.NoError(t, err)
		assert.Equal(t, 6, n)
	})
}
