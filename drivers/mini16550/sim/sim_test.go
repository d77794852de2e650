package sim

import "testing"

const base = uintptr(0x1000)

func reg(r uintptr) uintptr { return base + r*4 }

func TestDivisorLatchSwitchesRegisterZeroAndOne(t *testing.T) {
	m := New(base, 4)
	m.Write8(reg(3), 0x80) // open the latch
	m.Write8(reg(0), 0x1F)
	m.Write8(reg(1), 0x02)
	m.Write8(reg(3), 0x03) // close it

	if got := m.Divisor(); got != 0x021F {
		t.Fatalf("divisor = %#x, want 0x021F", got)
	}
	if len(m.TxBytes()) != 0 {
		t.Fatalf("latched writes leaked to the transmitter: %q", m.TxBytes())
	}

	m.Write8(reg(0), 'A')
	m.Write8(reg(1), 0x05)
	if string(m.TxBytes()) != "A" {
		t.Errorf("transmitted %q, want \"A\"", m.TxBytes())
	}
	if m.IER() != 0x05 {
		t.Errorf("IER = %#x, want 0x05", m.IER())
	}
}

func TestLineStatusTracksReceiveQueue(t *testing.T) {
	m := New(base, 4)
	if lsr := m.Read8(reg(5)); lsr != 0x60 {
		t.Fatalf("idle LSR = %#x, want 0x60", lsr)
	}
	m.PushRx('a')
	if lsr := m.Read8(reg(5)); lsr&0x01 == 0 {
		t.Fatal("receive-ready not reported")
	}
	if b := m.Read8(reg(0)); b != 'a' {
		t.Fatalf("RBR = %q, want \"a\"", b)
	}
	if lsr := m.Read8(reg(5)); lsr&0x01 != 0 {
		t.Fatal("receive-ready stuck after the queue drained")
	}
}

func TestDeferredReceiveMaterializesAfterPolls(t *testing.T) {
	m := New(base, 4)
	m.DeferRx('x', 2)
	if m.Read8(reg(5))&0x01 != 0 {
		t.Fatal("byte visible one poll early")
	}
	if m.Read8(reg(5))&0x01 == 0 {
		t.Fatal("byte not delivered after the scripted polls")
	}
}

func TestFifoControlResetBitsSelfClear(t *testing.T) {
	m := New(base, 4)
	m.PushRx('a', 'b')
	m.Write8(reg(2), 0x07) // enable + both resets
	if m.FCR() != 0x01 {
		t.Errorf("FCR = %#x, want reset bits stripped (0x01)", m.FCR())
	}
	if m.Read8(reg(5))&0x01 != 0 {
		t.Error("receive FIFO survived its reset")
	}
}

func TestAddressesOutsideWindowHitBackingMemory(t *testing.T) {
	m := New(base, 4)
	m.Write32(0x4000, 0x12345678)
	if got := m.Read32(0x4000); got != 0x12345678 {
		t.Fatalf("backing read = %#x", got)
	}
	if len(m.Log) != 0 {
		t.Errorf("backing traffic logged as register writes: %v", m.Log)
	}
}
