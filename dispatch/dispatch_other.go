//go:build !amd64 && !arm64

package dispatch

func detect() {
	// Other architectures only run the portable kernels for now.
}
