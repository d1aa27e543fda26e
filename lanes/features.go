package lanes

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features lists the vector extensions reported by the CPU. Lane math is
// written as plain loops over Width values; the report tells callers whether
// the compiler has wide registers available to keep those loops in.
func Features() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE41 {
			out = append(out, "sse4.1")
		}
		if cpu.X86.HasAVX {
			out = append(out, "avx")
		}
		if cpu.X86.HasAVX2 {
			out = append(out, "avx2")
		}
		if cpu.X86.HasFMA {
			out = append(out, "fma")
		}
		if cpu.X86.HasAVX512F {
			out = append(out, "avx512f")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			out = append(out, "asimd")
		}
		if cpu.ARM64.HasSVE {
			out = append(out, "sve")
		}
	}
	return out
}

// Describe is a one-line summary of the lane layout for logs.
func Describe() string {
	feats := Features()
	if len(feats) == 0 {
		return runtime.GOARCH + " (no vector extensions detected)"
	}
	return runtime.GOARCH + " " + strings.Join(feats, ",")
}
