package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps stored labels in bytes; course and club names fit comfortably
const MaxStringLen = 48

// AtomicString holds a short label readable from any goroutine
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store truncates at a rune boundary before MaxStringLen
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
