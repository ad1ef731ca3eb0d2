//go:build ignore

// This program generates tables.go.
// Run with: go run gen_tables.go
package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
)

func main() {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by gen_tables.go; DO NOT EDIT.\n\n")
	buf.WriteString("package fixed\n\n")

	// Quarter-turn of sine plus the 90° entry, rounded to nearest.
	buf.WriteString("// sineTable holds one quadrant of sin(θ)·4096 for θ = i·2π/4096, i = 0..0x400.\n")
	buf.WriteString("var sineTable = [1025]int16{\n")
	for i := 0; i < 1025; i += 16 {
		buf.WriteString("\t")
		for j := i; j < i+16 && j < 1025; j++ {
			if j > i {
				buf.WriteString(" ")
			}
			v := math.Round(4096 * math.Sin(float64(j)*2*math.Pi/4096))
			fmt.Fprintf(&buf, "%d,", int16(v))
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n\n")

	// Square roots of the normalized mantissa range, truncated like the libgte table.
	buf.WriteString("// sqrtTable holds √i·512 for the normalized indices 64..255; lower entries are unused.\n")
	buf.WriteString("var sqrtTable = [256]uint16{\n")
	for i := 0; i < 256; i += 16 {
		buf.WriteString("\t")
		for j := i; j < i+16; j++ {
			if j > i {
				buf.WriteString(" ")
			}
			v := 0
			if j >= 64 {
				v = int(math.Sqrt(float64(j)) * 512)
			}
			fmt.Fprintf(&buf, "0x%04x,", v)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	if err := os.WriteFile("tables.go", buf.Bytes(), 0644); err != nil {
		panic(err)
	}
}
