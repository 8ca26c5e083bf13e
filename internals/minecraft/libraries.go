package minecraft

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Libraries is a collection of minecraft libs
type Libraries []Lib

// Required returns only the required library files (matching rules)
func (l Libraries) Required() Libraries {
	required := make(Libraries, 0, len(l))

	osName := mojangName(osNames, runtime.GOOS)

	for _, lib := range l {
		include := true
		for _, rule := range lib.Rules {
			include = rule.Applies()
		}
		if !include {
			continue
		}

		// skip natives that are not available for this platform
		if len(lib.Natives) != 0 {
			if _, ok := lib.Natives[osName]; !ok {
				continue
			}
		}

		required = append(required, lib)
	}

	return required
}

// Lib is a single minecraft java library
type Lib struct {
	// Name is a maven-ish "group:name:version" identifier
	Name      string `json:"name"`
	Downloads struct {
		Artifact Artifact `json:"artifact"`
		// Classifiers hold additional artifacts, mainly the native
		// libraries. Not used after 1.19
		Classifiers map[string]Artifact `json:"classifiers"`
	} `json:"downloads,omitempty"`
	URL   string `json:"url"`
	Rules []Rule `json:"rules"`
	// Natives maps OS names to native classifier ids. Not used after 1.19
	Natives map[string]string `json:"natives"`
}

func (l *Lib) native() (Artifact, bool) {
	osName := mojangName(osNames, runtime.GOOS)
	nativeID, ok := l.Natives[osName]
	if !ok {
		return Artifact{}, false
	}
	return l.Downloads.Classifiers[nativeID], true
}

// Filepath returns the target filepath for this library relative
// to the libraries folder
func (l *Lib) Filepath() string {
	if native, ok := l.native(); ok {
		return native.Path
	}

	if l.Downloads.Artifact.Path != "" {
		return l.Downloads.Artifact.Path
	}

	// no explicit path. derive it from the maven name
	grouped := strings.SplitN(l.Name, ":", 3)
	if len(grouped) != 3 {
		return ""
	}
	basePath := filepath.Join(strings.Split(grouped[0], ".")...)
	name, version := grouped[1], grouped[2]

	return filepath.Join(basePath, name, version, name+"-"+version+".jar")
}

// DownloadURL returns the download URL for this library
func (l *Lib) DownloadURL() string {
	native, isNative := l.native()

	switch {
	case isNative:
		return native.URL
	case l.Downloads.Artifact.URL != "":
		return l.Downloads.Artifact.URL
	case l.URL != "":
		return strings.TrimSuffix(l.URL, "/") + "/" + filepath.ToSlash(l.Filepath())
	default:
		return "https://libraries.minecraft.net/" + filepath.ToSlash(l.Filepath())
	}
}

// Sha1 returns the expected checksum, if the manifest contains one
func (l *Lib) Sha1() string {
	if native, ok := l.native(); ok {
		return native.Sha1
	}
	return l.Downloads.Artifact.Sha1
}
