//go:build !amd64 && !arm64 && !purego

package log2f

import (
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/scalar" // register scalar fallback
)
