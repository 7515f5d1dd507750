//go:build !386 && !amd64 && !arm && !arm64 && !loong64 && !mips && !mipsle && !mips64 && !mips64le && !ppc64 && !ppc64le && !riscv64 && !s390x && !wasm

package cell

// Cell needs a native pointer-width compare-and-swap. Architectures missing
// from the build constraint above have not been checked for one, so the
// package refuses to build there instead of degrading to a lock.
var _ = cellNeedsPointerCompareAndSwapOnThisArch
