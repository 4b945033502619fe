package boxarena

import (
	"errors"
	"testing"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestNewBox(t *testing.T) {
	b := NewBox(testStruct{a: 1, d: 4})
	if !b.Live() {
		t.Fatal("NewBox should be live")
	}
	if got := b.Get(); got.a != 1 || got.d != 4 {
		t.Errorf("NewBox holds %+v", got)
	}
}

func TestBoxValueIsStable(t *testing.T) {
	p := New[testStruct]()
	b := p.Acquire(testStruct{a: 100})

	ptr := b.Value()
	ptr.b = 7
	if b.Value() != ptr {
		t.Error("Value() address changed between calls")
	}
	if got := b.Get(); got.a != 100 || got.b != 7 {
		t.Errorf("write through Value() lost: %+v", got)
	}
}

func TestBoxSet(t *testing.T) {
	b := NewBox(1)
	b.Set(2)
	if b.Get() != 2 {
		t.Errorf("Set(2) then Get = %d", b.Get())
	}
}

func TestBoxLive(t *testing.T) {
	var nilBox *Box[int]
	if nilBox.Live() {
		t.Error("nil box reported live")
	}
	if (&Box[int]{}).Live() {
		t.Error("zero box reported live")
	}

	p := New[int]()
	b := p.Acquire(1)
	if !b.Live() {
		t.Error("acquired box not live")
	}
	p.Release(b)
	if b.Live() {
		t.Error("released box still live")
	}
}

func TestBoxUseAfterRelease(t *testing.T) {
	p := New[int]()
	b := p.Acquire(1)
	p.Release(b)

	ops := map[string]func(){
		"Value": func() { b.Value() },
		"Get":   func() { b.Get() },
		"Set":   func() { b.Set(3) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := expectPanic(t, op)
			if !errors.Is(err, ErrReleased) {
				t.Errorf("%s after Release panic = %v, want %v", name, err, ErrReleased)
			}
		})
	}
}

func TestBoxNilUse(t *testing.T) {
	var b *Box[int]
	err := expectPanic(t, func() { b.Get() })
	if !errors.Is(err, ErrNilBox) {
		t.Errorf("Get on nil box panic = %v, want %v", err, ErrNilBox)
	}
}
