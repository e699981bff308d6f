package consts

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

var (
	// HasSHANI reports the x86 SHA extensions plus the SSE levels the
	// assembly shuffles with.
	HasSHANI = cpuid.CPU.Supports(cpuid.SHA, cpuid.SSE4, cpuid.SSSE3)

	HasARMSHA2 = cpu.ARM64.HasSHA2
)
