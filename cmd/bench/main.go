// Command bench times the enumerator against a curated table of
// pattern/input cases at increasing text sizes and reports the ratio
// between runs, the informal check behind SPEC_FULL.md's "preprocessing
// time grows ~linearly, time-per-output is roughly constant" performance
// property. The curated-table idea is ported from the teacher's
// cmd/curated_generator/main.go; timing a fixed operation across scale
// factors instead of generating per-pattern test files.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/varspan/varspan/pkg/varspan"
)

type bench struct {
	name    string
	pattern string
	text    func(scale int) string
}

var cases = []bench{
	{
		name:    "DotStar",
		pattern: `.*`,
		text:    func(scale int) string { return strings.Repeat("ab", 50*scale) },
	},
	{
		name:    "EmailCapture",
		pattern: `(?P<user>\w+)@(?P<domain>\w+\.\w+)`,
		text: func(scale int) string {
			return strings.Repeat("noise ", 20*scale) + "user@example.com " + strings.Repeat("more noise ", 20*scale)
		},
	},
	{
		name:    "BlockA",
		pattern: `^(.*[^a])?(?P<block_a>a+)([^a].*)?$`,
		text:    func(scale int) string { return strings.Repeat("aaaabb", 10*scale) },
	},
}

const (
	scale1x   = 1
	scale10x  = 10
	scale100x = 100
)

func main() {
	for _, c := range cases {
		fmt.Printf("=== %s ===\n", c.name)
		var base time.Duration
		for i, scale := range []int{scale1x, scale10x, scale100x} {
			d, count, err := run(c, scale)
			if err != nil {
				fmt.Printf("  scale %d: error: %v\n", scale, err)
				continue
			}
			if i == 0 {
				base = d
			}
			ratio := float64(d) / float64(base)
			fmt.Printf("  scale %3dx: %10v total, %8d mappings, ratio-to-1x=%.2f\n", scale, d, count, ratio)
		}
	}
}

func run(c bench, scale int) (time.Duration, int, error) {
	text := c.text(scale)

	start := time.Now()
	spanner, err := varspan.Compile(varspan.Options{Pattern: c.pattern})
	if err != nil {
		return 0, 0, err
	}
	it := spanner.Enumerate(text)

	count := 0
	for {
		_, ok, err := it.Next()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		count++
	}
	return time.Since(start), count, nil
}
