package coco

// Timer is the GIME 12-bit countdown timer. It counts CPU cycles; when the
// counter reaches zero it reloads and fires. A reload value of zero stops it.
type Timer struct {
	reload  uint16
	counter uint16
}

func (t *Timer) Reset() {
	t.reload = 0
	t.counter = 0
}

func (t *Timer) setMSB(v uint8) {
	t.reload = (t.reload & 0x00ff) | uint16(v&0x0f)<<8
	t.counter = t.reload
}

func (t *Timer) setLSB(v uint8) {
	t.reload = (t.reload & 0x0f00) | uint16(v)
	t.counter = t.reload
}

func (t Timer) Reload() uint16 {
	return t.reload
}

func (t Timer) Counter() uint16 {
	return t.counter
}

// Tick advances the timer by the given number of cycles and returns how many
// times it fired.
func (t *Timer) Tick(cycles int) int {
	if t.reload == 0 || cycles <= 0 {
		return 0
	}

	fired := 0
	for cycles > 0 {
		if cycles < int(t.counter) {
			t.counter -= uint16(cycles)
			break
		}
		cycles -= int(t.counter)
		t.counter = t.reload
		fired++
	}
	return fired
}
