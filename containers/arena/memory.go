package arena

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	KiB float64 = 1 << (10 * iota)
	MiB
	GiB
)

// Represents computer memory
type Memory uint64

func (m Memory) Bytes() uint64 {
	return uint64(m)
}

func (m Memory) KiB() float64 {
	return float64(m) / KiB
}

func (m Memory) MiB() float64 {
	return float64(m) / MiB
}

func (m Memory) GiB() float64 {
	return float64(m) / GiB
}

// String renders m in the largest binary unit it fills, e.g. "1.50 KiB".
func (m Memory) String() string {
	p := message.NewPrinter(language.English)
	switch {
	case float64(m) >= GiB:
		return p.Sprintf("%.2f GiB", m.GiB())
	case float64(m) >= MiB:
		return p.Sprintf("%.2f MiB", m.MiB())
	case float64(m) >= KiB:
		return p.Sprintf("%.2f KiB", m.KiB())
	}
	return p.Sprintf("%d Bytes", m.Bytes())
}
