package java

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// One pinned Temurin release. 21 runs everything from 1.20.5 upwards
// and is still fine for most older versions.
const (
	temurinTag     = "jdk-21.0.4+7"
	temurinVersion = "21.0.4_7"
)

func archiveExt() string {
	if runtime.GOOS == "windows" {
		return ".zip"
	}
	return ".tar.gz"
}

// archMap translates go arch names to the ones temurin assets use
func archMap(arch string) string {
	theMap := map[string]string{
		"amd64": "x64",
		"arm64": "aarch64",
		"386":   "x86-32",
		// other "common" ones have the same name (for example arm)
	}

	mapped, ok := theMap[arch]
	if !ok {
		return arch
	}
	return mapped
}

func osMap(osName string) string {
	switch osName {
	case "darwin":
		return "mac"
	case "linux":
		// alpine needs a different jdk build
		if _, err := os.Stat("/etc/alpine-release"); !os.IsNotExist(err) {
			return "alpine-linux"
		}
	}
	return osName
}

// archiveURL returns the download url of the pinned portable JDK for
// the current platform
func archiveURL() string {
	return fmt.Sprintf(
		"https://github.com/adoptium/temurin21-binaries/releases/download/%s/OpenJDK21U-jdk_%s_%s_hotspot_%s%s",
		strings.ReplaceAll(temurinTag, "+", "%2B"),
		archMap(runtime.GOARCH),
		osMap(runtime.GOOS),
		temurinVersion,
		archiveExt(),
	)
}
