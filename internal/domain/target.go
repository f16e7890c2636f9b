package domain

import "fmt"

type OS string
type Arch string

const (
	OSLinux   OS = "linux"
	OSAndroid OS = "android"
	OSDarwin  OS = "darwin"
	OSWindows OS = "windows"

	ArchAMD64 Arch = "amd64"
	ArchARM64 Arch = "arm64"
)

// Target identifies the prebuilt executable for one (OS, Arch) pair.
type Target struct {
	Triple string
	Suffix string
}

func (t Target) BinaryName(prefix string) string {
	return fmt.Sprintf("%s-%s%s", prefix, t.Triple, t.Suffix)
}

type UnsupportedPlatformError struct {
	OS   OS
	Arch Arch
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s (%s)", e.OS, e.Arch)
}

func (e *UnsupportedPlatformError) Unwrap() error {
	return ErrUnsupportedPlatform
}

func ResolveTarget(os OS, arch Arch) (Target, error) {
	cpu, ok := cpuNames[arch]
	if !ok {
		return Target{}, &UnsupportedPlatformError{OS: os, Arch: arch}
	}

	switch os {
	case OSLinux, OSAndroid:
		return Target{Triple: cpu + "-unknown-linux-musl"}, nil
	case OSDarwin:
		return Target{Triple: cpu + "-apple-darwin"}, nil
	case OSWindows:
		return Target{Triple: cpu + "-pc-windows-msvc", Suffix: ".exe"}, nil
	default:
		return Target{}, &UnsupportedPlatformError{OS: os, Arch: arch}
	}
}

var cpuNames = map[Arch]string{
	ArchAMD64: "x86_64",
	ArchARM64: "aarch64",
}

func (o OS) PathListSeparator() string {
	if o == OSWindows {
		return ";"
	}
	return ":"
}
