package board

import "fmt"

type Color byte

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "B"
	case White:
		return "W"
	case Empty:
		return "."
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	case Empty:
		return Empty
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}
